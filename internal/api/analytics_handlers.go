package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/ecosaver/internal/analytics"
	errorvalues "github.com/limbo/ecosaver/internal/error_values"
	"github.com/limbo/ecosaver/pkg/httputil"
)

type LeaderboardResponse struct {
	WindowDays int                          `json:"window_days"`
	Entries    []analytics.LeaderboardEntry `json:"entries"`
}

type StatsResponse struct {
	HistoryDays int                  `json:"history_days"`
	Users       []analytics.UserStat `json:"users"`
}

// @Summary Prediction, eco score and suggestions for the caller
// @Tags analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.Insights
// @Failure 404 {object} httputil.ErrorResponse
// @Router /insights [get]
func (s *Server) Insights(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("insights error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	insights, err := s.analyticsService.Insights(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoUsageRecords) {
			logger.Info("insights: user has no records")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no usage records yet", nil)
			return
		}
		logger.Error("insights error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing insights", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, insights)
	logger.Info("insights provided", slog.String("source", string(insights.Prediction.Source)))
}

// @Summary Next-day electricity forecast over all users
// @Tags analytics
// @Produce json
// @Success 200 {object} service.Forecast
// @Router /forecast [get]
func (s *Server) Forecast(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	forecast, err := s.analyticsService.Forecast(ctx)
	if err != nil {
		logger.Error("forecast error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing forecast", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, forecast)
	logger.Info("forecast provided")
}

// @Summary Users ranked by eco score over the trailing window
// @Tags analytics
// @Produce json
// @Success 200 {object} LeaderboardResponse
// @Router /leaderboard [get]
func (s *Server) Leaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	entries, err := s.analyticsService.Leaderboard(ctx)
	if err != nil {
		logger.Error("leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while ranking users", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LeaderboardResponse{
		WindowDays: analytics.LeaderboardWindowDays,
		Entries:    entries,
	})
	logger.Info("leaderboard provided", slog.Int("entries", len(entries)))
}

// @Summary Per-user averages over the recent history
// @Tags analytics
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /stats [get]
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	stats, err := s.analyticsService.Stats(ctx)
	if err != nil {
		logger.Error("stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, StatsResponse{
		HistoryDays: analytics.HistoryDays,
		Users:       stats,
	})
	logger.Info("stats provided")
}

// @Summary Estimate daily savings of behavior changes
// @Tags analytics
// @Accept json
// @Produce json
// @Param request body analytics.WhatIf true "scenario"
// @Success 200 {object} analytics.Savings
// @Failure 400 {object} httputil.ErrorResponse
// @Router /savings [post]
func (s *Server) Savings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req analytics.WhatIf
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("savings error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	savings, err := s.analyticsService.Savings(req)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidScenario) {
			logger.Error("savings error: invalid scenario")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid what-if scenario", err)
			return
		}
		logger.Error("savings error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while estimating savings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, savings)
	logger.Info("savings estimated")
}
