package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
	"github.com/KasumiMercury/primind-timetable/internal/service/reminder"
)

const (
	errTypeValidation      = "validation_error"
	errTypeIndexResolution = "index_resolution_error"
	errTypeNotFound        = "not_found"
	errTypeStateConflict   = "state_conflict"
	errTypeInternal        = "internal_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, ErrorResponse{
		Error:   errType,
		Message: message,
	})
}

// respondDomainError maps session and poller errors onto HTTP statuses.
func respondDomainError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
	case errors.Is(err, domain.ErrIndexResolution):
		respondError(c, http.StatusNotFound, errTypeIndexResolution, err.Error())
	case errors.Is(err, domain.ErrCourseNotFound), errors.Is(err, domain.ErrHomeworkNotFound):
		respondError(c, http.StatusNotFound, errTypeNotFound, err.Error())
	case errors.Is(err, reminder.ErrAlreadyRunning), errors.Is(err, reminder.ErrNotRunning):
		respondError(c, http.StatusConflict, errTypeStateConflict, err.Error())
	default:
		slog.ErrorContext(ctx, "unhandled request error",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, errTypeInternal, "internal server error")
	}
}

// respondBindError reports request decoding failures as validation errors,
// naming each rejected field when the validator produced them.
func respondBindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed",
		slog.String("error", err.Error()),
		slog.String("path", c.Request.URL.Path),
	)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
		respondError(c, http.StatusBadRequest, errTypeValidation, strings.Join(msgs, "; "))
		return
	}

	respondError(c, http.StatusBadRequest, errTypeValidation, err.Error())
}
