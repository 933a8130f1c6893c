package v1

import (
	"errors"
	"net/http"

	"github.com/MatheusVicenteSantosSilva/MoneyMind-2/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, models.ErrWriteFailed) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Entry errors
var (
	errEntryKindInvalid = errors.New("the specified entry kind is invalid")
)
