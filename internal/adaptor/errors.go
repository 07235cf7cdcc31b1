package adaptor

import (
	"errors"
	"net/http"

	"shareit/pkg/apperror"
	"shareit/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps error kinds onto HTTP statuses. Unclassified errors
// are logged in full and answered with a generic message.
func handleServiceError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	fields := []zap.Field{
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("request_id", utils.GetRequestIDFromContext(r.Context())),
	}

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		log.Warn(operation+" failed - not found", fields...)
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperror.ErrValidation):
		log.Warn(operation+" validation failed", fields...)
		utils.ResponseBadRequest(w, err.Error(), apperror.FieldsOf(err))

	case errors.Is(err, apperror.ErrInvalidOperation):
		log.Warn(operation+" failed - invalid operation", fields...)
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, apperror.ErrConflict):
		log.Warn(operation+" failed - conflict", fields...)
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, fields...)
		utils.ResponseInternalError(w, "Internal server error")
	}
}
