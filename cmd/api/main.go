// @title EcoSaver API
// @description API for household electricity and water usage analytics "EcoSaver"
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	_ "github.com/limbo/ecosaver/docs"
	"github.com/limbo/ecosaver/internal/api"
	"github.com/limbo/ecosaver/internal/extraction"
	"github.com/limbo/ecosaver/internal/repository"
	"github.com/limbo/ecosaver/internal/service"
	"github.com/limbo/ecosaver/pkg/config"
	jwtservice "github.com/limbo/ecosaver/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {
	cfg := config.New()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.GetString("LOG_LEVEL")),
	})))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.MustConnect(&dbCfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	usageRepo := repository.NewUsageRepoWithConn(pool)

	extractor := extraction.NewClient(extraction.Config{
		URL:     cfg.GetString("EXTRACTOR_URL"),
		APIKey:  cfg.GetString("EXTRACTOR_API_KEY"),
		Timeout: cfg.GetDuration("EXTRACTOR_TIMEOUT", 30*time.Second),
	})

	if cfg.GetBool("SEED_DEMO", false) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		seeded, err := service.NewDemoSeeder(usersRepo, usageRepo).Seed(ctx)
		cancel()
		if err != nil {
			log.Fatal("seeding demo data error: " + err.Error())
		}
		slog.Info("demo data", slog.Bool("seeded", seeded))
	}

	serv := api.New(&api.ServicesList{
		UserService:       service.NewUserService(usersRepo),
		UsageService:      service.NewUsageService(usageRepo),
		AnalyticsService:  service.NewAnalyticsService(usageRepo),
		EstimationService: service.NewEstimationService(usageRepo, extractor),
		JwtService:        jwtservice.NewWithTTL(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", jwtservice.DefaultTokenTTL)),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
