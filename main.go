package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mongodb/grip"

	"github.com/genialityco/events-api/config"
	"github.com/genialityco/events-api/middleware"
	"github.com/genialityco/events-api/models"
	"github.com/genialityco/events-api/routes"
	"github.com/genialityco/events-api/scheduler"
	"github.com/genialityco/events-api/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		grip.EmergencyFatal(err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := cfg.Close(ctx); err != nil {
			grip.Errorf("disconnecting mongo: %v", err)
		}
	}()

	cfg.Tokens = middleware.JWTVerifier{Secret: cfg.JWTSecret}
	cfg.Push = utils.NewExpoPush()

	files, err := utils.NewCloudinaryStorage()
	if err != nil {
		grip.EmergencyFatal(err)
	}
	cfg.Files = files

	if err := models.ValidateRelations(); err != nil {
		grip.EmergencyFatal(err)
	}

	sched := scheduler.New(cfg)
	if err := sched.Start(); err != nil {
		grip.EmergencyFatal(err)
	}
	defer sched.Stop()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "If-None-Match")
	r.Use(cors.New(corsConfig))

	routes.SetupRoutes(r, cfg)

	grip.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		grip.EmergencyFatal(err)
	}
}
