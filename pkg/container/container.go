// Package container wires the application together: configuration,
// connections, repositories, services and handlers, in that order.
package container

import (
	"context"
	"fmt"
	"time"

	"yamdb-backend/internal/config"
	categoryhandler "yamdb-backend/internal/domains/category/handler"
	categoryrepo "yamdb-backend/internal/domains/category/repository"
	categoryservice "yamdb-backend/internal/domains/category/service"
	genrehandler "yamdb-backend/internal/domains/genre/handler"
	genrerepo "yamdb-backend/internal/domains/genre/repository"
	genreservice "yamdb-backend/internal/domains/genre/service"
	reviewhandler "yamdb-backend/internal/domains/review/handler"
	reviewrepo "yamdb-backend/internal/domains/review/repository"
	reviewservice "yamdb-backend/internal/domains/review/service"
	titlehandler "yamdb-backend/internal/domains/title/handler"
	titlerepo "yamdb-backend/internal/domains/title/repository"
	titleservice "yamdb-backend/internal/domains/title/service"
	userhandler "yamdb-backend/internal/domains/user/handler"
	userrepo "yamdb-backend/internal/domains/user/repository"
	userservice "yamdb-backend/internal/domains/user/service"
	"yamdb-backend/internal/infrastructure/cache"
	"yamdb-backend/internal/infrastructure/database"
	"yamdb-backend/internal/infrastructure/email"
	"yamdb-backend/pkg/jwt"
)

type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Redis  *cache.RedisClient
	Tokens *jwt.Manager

	UserHandler     *userhandler.UserHandler
	CategoryHandler *categoryhandler.CategoryHandler
	GenreHandler    *genrehandler.GenreHandler
	TitleHandler    *titlehandler.TitleHandler
	ReviewHandler   *reviewhandler.ReviewHandler
}

func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	redis := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redis.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	tokens := jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Hour,
		time.Duration(cfg.JWT.ConfirmationCodeExpiry)*time.Hour,
	)
	mail := email.NewSMTPEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)
	codeStore := cache.NewRedisCodeStore(redis)
	codeTTL := time.Duration(cfg.JWT.ConfirmationCodeExpiry) * time.Hour

	// Repositories
	userRepository := userrepo.NewPostgresUserRepository(db.Pool)
	categoryRepository := categoryrepo.NewPostgresCategoryRepository(db.Pool)
	genreRepository := genrerepo.NewPostgresGenreRepository(db.Pool)
	titleRepository := titlerepo.NewPostgresTitleRepository(db.Pool)
	reviewRepository := reviewrepo.NewPostgresReviewRepository(db.Pool)

	// Services
	userService := userservice.NewUserService(userRepository, codeStore, tokens, mail, codeTTL)
	categoryService := categoryservice.NewCategoryService(categoryRepository)
	genreService := genreservice.NewGenreService(genreRepository)
	titleService := titleservice.NewTitleService(titleRepository, categoryRepository, genreRepository)
	reviewService := reviewservice.NewReviewService(reviewRepository, titleRepository)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redis,
		Tokens: tokens,

		UserHandler:     userhandler.NewUserHandler(userService),
		CategoryHandler: categoryhandler.NewCategoryHandler(categoryService),
		GenreHandler:    genrehandler.NewGenreHandler(genreService),
		TitleHandler:    titlehandler.NewTitleHandler(titleService),
		ReviewHandler:   reviewhandler.NewReviewHandler(reviewService),
	}, nil
}

func (c *Container) Cleanup() {
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
