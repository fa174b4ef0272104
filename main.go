package main

import (
	"fmt"
	"log"

	"github.com/anantkataria/Anant-Restaurant-API/configs"
	"github.com/anantkataria/Anant-Restaurant-API/middlewares"
	"github.com/anantkataria/Anant-Restaurant-API/pkg/logger"
	"github.com/anantkataria/Anant-Restaurant-API/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	appLog := logger.New(logger.Options{
		Service: "restaurant-api",
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
	})

	// DB
	db, err := configs.Connect(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(db); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(middlewares.RequestLogger(appLog))
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	appLog.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
