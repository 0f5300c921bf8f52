package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirematch/backend/lifecycle"
	"github.com/hirematch/backend/matching"
	"github.com/hirematch/backend/models"
	"github.com/hirematch/backend/storage"
)

// respondError maps domain errors 1:1 onto the HTTP error taxonomy:
// validation and bad arguments are 400, illegal transitions 409, missing
// references 404, everything else 500.
func respondError(c *gin.Context, msg string, err error) {
	code := http.StatusInternalServerError

	var (
		validationErr *models.ValidationError
		argumentErr   *matching.InvalidArgumentError
		transitionErr *lifecycle.InvalidTransitionError
	)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		code = http.StatusNotFound
	case errors.As(err, &validationErr), errors.As(err, &argumentErr):
		code = http.StatusBadRequest
	case errors.As(err, &transitionErr):
		code = http.StatusConflict
	}

	c.JSON(code, models.ErrorResponse{
		Error:   msg,
		Code:    code,
		Details: err.Error(),
	})
}
