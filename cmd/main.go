package main

import (
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/config"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/data"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/routes"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/services"

	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()
	config.InitDB()

	if n, err := data.SeedBuiltin(config.DB); err != nil {
		log.Warn().Err(err).Msg("seeding builtin meals failed")
	} else if n > 0 {
		log.Info().Int("meals", n).Msg("seeded builtin meal catalog")
	}

	rt := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, rt)

	classifier := services.NewDietClassifier(config.ModelPath())
	classifier.LoadFromDisk()

	sim := services.NewSimilarityService()

	r := routes.SetupRouter(rt, classifier, sim)
	if err := r.Run(config.ServerAddr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
