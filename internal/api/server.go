package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/ecosaver/internal/service"
	"github.com/limbo/ecosaver/pkg/cleanup"
	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	usageService      service.UsageServiceI
	analyticsService  service.AnalyticsServiceI
	estimationService service.EstimationServiceI
	jwtService        JWTServiceI
}

type ServicesList struct {
	UserService       service.UserServiceI
	UsageService      service.UsageServiceI
	AnalyticsService  service.AnalyticsServiceI
	EstimationService service.EstimationServiceI
	JwtService        JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		usageService:      servicesOptions.UsageService,
		analyticsService:  servicesOptions.AnalyticsService,
		estimationService: servicesOptions.EstimationService,
		jwtService:        servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.AccessLogMiddleware)
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Get("/forecast", s.Forecast)
		r.Get("/leaderboard", s.Leaderboard)
		r.Get("/stats", s.Stats)
		r.Post("/savings", s.Savings)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/usage", s.AddUsage)
			r.Get("/usage", s.GetUsage)
			r.Post("/usage/estimate", s.EstimateUsage)
			r.Get("/insights", s.Insights)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then shuts down and runs cleanup jobs.
func (s *Server) Run(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      time.Minute,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		slog.Info("shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err = srv.Shutdown(shutdownCtx)
		cancel()
	}
	if cerr := cleanup.CleanUp(); cerr != nil {
		slog.Error("cleanup finished with errors", slog.String("error", cerr.Error()))
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
