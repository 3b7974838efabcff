package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Gthulhu/schedsim/config"
	"github.com/Gthulhu/schedsim/pkg/logger"
	"github.com/Gthulhu/schedsim/pkg/scheduler"
	"github.com/Gthulhu/schedsim/simulator/domain"
	"github.com/Gthulhu/schedsim/simulator/errs"
	"go.uber.org/fx"
)

const (
	serviceName = "schedsim"
	apiVersion  = "1.0.0"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse wraps the payload of every successful API call
type SuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      *T     `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

type EmptyResponse struct{}

func NewSuccessResponse[T any](data *T) SuccessResponse[T] {
	return SuccessResponse[T]{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

type Params struct {
	fx.In
	Svc         domain.Service
	TokenConfig config.TokenConfig
}

func NewHandler(params Params) (*Handler, error) {
	return &Handler{
		Svc:         params.Svc,
		tokenConfig: params.TokenConfig,
	}, nil
}

type Handler struct {
	Svc         domain.Service
	tokenConfig config.TokenConfig
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		errMsg = errMsg + ": " + err.Error()
		logger.Logger(ctx).Debug().Err(err).Int("status", status).Msg(errMsg)
	}
	h.JSONResponse(ctx, w, status, ErrorResponse{
		Success: false,
		Error:   errMsg,
	})
}

// HandleError maps service errors onto HTTP status codes.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	if httpErr, ok := errs.IsHTTPStatusError(err); ok {
		h.ErrorResponse(ctx, w, httpErr.StatusCode, httpErr.Message, httpErr.OriginalErr)
		return
	}
	switch {
	case errors.Is(err, scheduler.ErrConfiguration),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrTooManyProcesses),
		errors.Is(err, domain.ErrWorkloadTooLong):
		h.ErrorResponse(ctx, w, http.StatusBadRequest, "Invalid simulation request", err)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrTokenDisabled):
		h.ErrorResponse(ctx, w, http.StatusNotFound, "Not found", err)
	default:
		logger.Logger(ctx).Error().Err(err).Msg("unexpected error")
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "CPU scheduling simulator API",
		"version": apiVersion,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
