package commons

import (
	"encoding/json"
	"net/http"

	apperrors "mirador/internal/errors"

	"go.uber.org/zap"
)

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	TraceID string                       `json:"traceId"`
	Details []apperrors.ValidationDetail `json:"details"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	TraceID string `json:"traceId"`
}

func WriteJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, logger *zap.Logger, traceID, message string, details ...apperrors.ValidationDetail) {
	WriteJSON(w, logger, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		TraceID: traceID,
		Details: details,
	})
}

// WriteUseCaseError maps the error taxonomy to HTTP statuses: empty-result
// degeneracies are 200 "no data" payloads handled by callers, not-found is
// 404, anything else is an opaque 500.
func WriteUseCaseError(w http.ResponseWriter, logger *zap.Logger, traceID string, err error) {
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		WriteJSON(w, logger, http.StatusNotFound, errorResponse{
			Error:   "NOT_FOUND",
			Message: nfe.Message,
			TraceID: traceID,
		})
		return
	}

	logger.Error("use case failed", zap.String("traceId", traceID), zap.Error(err))
	WriteJSON(w, logger, http.StatusInternalServerError, errorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
		TraceID: traceID,
	})
}
