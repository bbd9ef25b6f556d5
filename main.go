package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsurePersonalDetailsIndexes(db); err != nil {
		log.Printf("personal details index warning: %v", err)
	}
	if err := database.EnsureBodyDetailsIndexes(db); err != nil {
		log.Printf("body details index warning: %v", err)
	}
	if err := database.EnsureOTPIndexes(db); err != nil {
		log.Printf("otp index warning: %v", err)
	}

	r := gin.Default()

	r.POST("/auth/register", handlers.Register(db))
	r.POST("/auth/login", handlers.Login(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/refresh", handlers.Refresh(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/logout", handlers.Logout(db))

	personal := r.Group("/personal")
	personal.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		personal.POST("/create", handlers.CreatePersonalDetails(db))
		personal.GET("/", handlers.GetPersonalDetails(db))
		personal.PUT("/", handlers.UpdatePersonalDetails(db))
	}

	body := r.Group("/body")
	body.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
	{
		body.GET("/", handlers.ListBodyDetails(db))
		body.POST("/", handlers.CreateBodyDetails(db))
		body.GET("/:id", handlers.GetBodyDetail(db))
		body.PUT("/:id", handlers.UpdateBodyDetail(db))
		body.DELETE("/:id", handlers.DeleteBodyDetail(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
