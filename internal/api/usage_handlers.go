package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/ecosaver/internal/error_values"
	"github.com/limbo/ecosaver/internal/service"
	"github.com/limbo/ecosaver/pkg/entity"
	"github.com/limbo/ecosaver/pkg/httputil"
)

const DateLayout = "2006-01-02"

type AddUsageRequest struct {
	Date             string  `json:"date"`
	ElectricityUnits float64 `json:"electricity_units"`
	WaterLiters      int     `json:"water_liters"`
	HouseholdSize    int     `json:"household_size"`
}

type EstimateUsageRequest struct {
	Text          string `json:"text"`
	Date          string `json:"date"`
	HouseholdSize int    `json:"household_size"`
}

type GetUsageResponse struct {
	UserID  string               `json:"uid"`
	Records []entity.UsageRecord `json:"records"`
}

// parseDay reads a DateLayout date. An empty value means today.
func parseDay(value string) (time.Time, error) {
	if value == "" {
		return entity.Day(time.Now()), nil
	}
	return time.Parse(DateLayout, value)
}

func parseOptionalDay(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// @Summary Record a day of usage
// @Tags usage
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddUsageRequest true "usage"
// @Success 201 {object} entity.UsageRecord
// @Failure 400 {object} httputil.ErrorResponse
// @Router /usage [post]
func (s *Server) AddUsage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add usage error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddUsageRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add usage error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		logger.Error("add usage error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as "+DateLayout, nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	record, err := s.usageService.AddUsage(ctx, uid, &service.AddUsageRequest{
		Date:             date,
		ElectricityUnits: req.ElectricityUnits,
		WaterLiters:      req.WaterLiters,
		HouseholdSize:    req.HouseholdSize,
	})
	if err != nil {
		writeUsageError(w, logger, "add usage error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, record)
	logger.Info("usage record added", slog.Int64("record_id", record.ID))
}

// @Summary List the caller's usage records
// @Tags usage
// @Security BearerAuth
// @Produce json
// @Param from query string false "first day, YYYY-MM-DD"
// @Param to query string false "last day, YYYY-MM-DD"
// @Success 200 {object} GetUsageResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Router /usage [get]
func (s *Server) GetUsage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get usage error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, err := parseOptionalDay(r.URL.Query().Get("from"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from must be formatted as "+DateLayout, nil)
		return
	}
	to, err := parseOptionalDay(r.URL.Query().Get("to"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "to must be formatted as "+DateLayout, nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	records, err := s.usageService.GetUsage(ctx, uid, from, to)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDateSpan) {
			logger.Error("get usage error: reversed range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "from must not be after to", nil)
			return
		}
		logger.Error("getting usage records error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting usage records", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetUsageResponse{
		UserID:  uid.String(),
		Records: records,
	})
	logger.Info("usage records provided", slog.Int("count", len(records)))
}

// @Summary Estimate a day of usage from a text description and record it
// @Tags usage
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EstimateUsageRequest true "description"
// @Success 201 {object} service.EstimateResult
// @Failure 400 {object} httputil.ErrorResponse
// @Failure 502 {object} httputil.ErrorResponse
// @Router /usage/estimate [post]
func (s *Server) EstimateUsage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("estimate usage error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req EstimateUsageRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("estimate usage error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		logger.Error("estimate usage error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be formatted as "+DateLayout, nil)
		return
	}
	// The extraction call dominates the latency.
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*45)
	defer cancel()
	result, err := s.estimationService.EstimateAndSave(ctx, uid, &service.EstimateRequest{
		Text:          req.Text,
		Date:          date,
		HouseholdSize: req.HouseholdSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyActivityText):
			logger.Error("estimate usage error: empty text")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "activity description is empty", nil)
		case errors.Is(err, errorvalues.ErrExtractionFailed):
			logger.Error("estimate usage error: extraction failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadGateway, "couldn't estimate usage from description", nil)
		default:
			writeUsageError(w, logger, "estimate usage error", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
	logger.Info("estimated usage saved", slog.Int64("record_id", result.Record.ID))
}

func writeUsageError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidUsage):
		logger.Error(msg+": invalid values", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid usage values", err)
	case errors.Is(err, errorvalues.ErrDateNotAllowed):
		logger.Error(msg + ": date in future")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "usage date can't be in the future", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(msg + ": unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	default:
		logger.Error(msg+": service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving usage", nil)
	}
}
