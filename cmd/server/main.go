package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"contacts_backend/internal/app/router"
	authadapters "contacts_backend/internal/feature/auth/adapters"
	authhandler "contacts_backend/internal/feature/auth/transport/handler"
	authusecase "contacts_backend/internal/feature/auth/usecase"
	contactadapters "contacts_backend/internal/feature/contacts/adapters"
	contacthandler "contacts_backend/internal/feature/contacts/transport/handler"
	contactusecase "contacts_backend/internal/feature/contacts/usecase"
	userhandler "contacts_backend/internal/feature/users/transport/handler"
	userusecase "contacts_backend/internal/feature/users/usecase"
	"contacts_backend/internal/platform/avatar"
	"contacts_backend/internal/platform/config"
	infradb "contacts_backend/internal/platform/db"
	infrahttp "contacts_backend/internal/platform/http"
	"contacts_backend/internal/platform/imagestore"
	jwtmw "contacts_backend/internal/platform/jwt"
	"contacts_backend/internal/platform/mail"
	"contacts_backend/internal/platform/ratelimit"
	infraredis "contacts_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	db := infradb.OpenDB(cfg.DSN())

	// Redis backs the rate limiter; the API runs without it.
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisAddr(), cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	contactRepo := contactadapters.NewContactRepository(db)

	// Collaborators
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, cfg.EmailTokenTTL)
	avatars := avatar.NewGravatar(250)
	mailer := mail.NewMailer(mail.Config{
		Host:     cfg.MailHost,
		Port:     cfg.MailPort,
		Username: cfg.MailUsername,
		Password: cfg.MailPassword,
		From:     cfg.MailFrom,
		BaseURL:  cfg.BaseURL,
	})
	images := imagestore.NewClient(imagestore.Config{
		UploadURL: cfg.ImageStoreURL,
		APIKey:    cfg.ImageStoreKey,
		APISecret: cfg.ImageStoreSecret,
	}, infrahttp.NewHTTPClient(30*time.Second))

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, avatars, mailer)
	contactsUC := contactusecase.NewContactsUsecase(contactRepo)
	usersUC := userusecase.NewUsersUsecase(userRepo, images)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	contactsH := contacthandler.NewContactHandler(contactsUC)
	usersH := userhandler.NewUserHandler(usersUC)

	// Contact creation is capped at 4 requests per 10 seconds per user.
	createLimiter := ratelimit.NewLimiter(rdb, "ratelimit:contacts:create", 4, 10*time.Second)

	r := router.NewRouter(db, cfg.JWTSecret, authH, contactsH, usersH, createLimiter)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
