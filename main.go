package main

import (
	"context"
	"log"
	"time"

	"gallery-app/config"
	"gallery-app/database"
	authapi "gallery-app/internal/api/auth"
	paintingsapi "gallery-app/internal/api/paintings"
	routes "gallery-app/internal/app/http"
	"gallery-app/internal/gallery"
	"gallery-app/internal/inquiry"
	"gallery-app/internal/pricing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db, err := database.Connect(config.DB_URL)
	if err != nil {
		log.Fatal("❌ ", err)
	}

	if err := authapi.EnsureSeedAdmin(db); err != nil {
		log.Fatal("❌ Failed to seed admin account:", err)
	}

	store := gallery.NewStore(gallery.NewRepository(db), gallery.LogNotifier{})
	if err := store.Refresh(context.Background()); err != nil {
		// keep serving; the snapshot stays empty until a later refresh succeeds
		log.Println("Initial painting load failed:", err)
	}

	prices := pricing.NewFormatter(config.PRICE_LOCALE, config.PRICE_SYMBOL)
	links := inquiry.LinkBuilder{
		Number:      config.WHATSAPP_NUMBER,
		FormatPrice: prices.Format,
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Paintings: paintingsapi.NewHandler(store, prices, links),
		Auth:      authapi.NewHandler(db),
	})

	r.Run(":" + config.PORT)
}
