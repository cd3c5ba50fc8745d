package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/redis/v3"
	"github.com/joho/godotenv"

	"songbook/config"
	"songbook/database"
	"songbook/handlers"
	"songbook/helpers"
	"songbook/middleware"
	"songbook/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}

	cfg := config.Load()
	helpers.SetSecret(cfg.Secret)

	// Şema migration'ları uygulama bağlantısından önce çalışır.
	if err := database.Migrate(cfg.Database.ConnString()); err != nil {
		log.Fatalf("Migration çalıştırılamadı: %v\n", err)
	}

	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.Database.ConnString())
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v\n", err)
	}
	defer db.Close(ctx)

	// Redis, şarkı sözü aramaları için önbellek olarak kullanılır.
	redisStore := redis.New(redis.Config{
		Host: cfg.Redis.Host,
		Port: cfg.Redis.Port,
	})

	// Handler'lara veritabanı ve servis nesnelerini aktar
	handlers.DB = db
	handlers.Lyrics = services.NewLyricsClient(cfg.LyricsAPI, nil, redisStore, cfg.CacheTTL)
	middleware.DB = db

	app := fiber.New()

	// Kimlik Doğrulama (Authentication) rotaları
	app.Post("/register", handlers.RegisterUser)
	app.Post("/login", handlers.LoginUser)

	// Şarkı rotaları token kontrolünün arkasındadır
	songAPI := app.Group("/songs", middleware.IsLogin)
	songAPI.Post("/", handlers.CreateSong)
	songAPI.Get("/", handlers.GetSongs)
	songAPI.Get("/:id", handlers.GetSongByID)
	songAPI.Put("/:id", handlers.UpdateSong)
	songAPI.Delete("/:id", handlers.DeleteSong)

	log.Fatal(app.Listen(":" + cfg.Port))
}
