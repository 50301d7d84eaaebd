// Package web has small helpers shared by the HTTP handlers.
package web

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/quillpad-dev/quillpad/internal/errors"
	"github.com/quillpad-dev/quillpad/internal/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*internal_errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs validator tags over a form struct and folds failures
// into a single 400-class error the handlers can flash back at the form.
func ValidateStruct(form any) error {
	if err := validate.Struct(form); err != nil {
		logger.Log.Debug("form validation failed", "error", err)
		return &internal_errors.ErrorWithStatusCode{Message: "Please fill in all fields correctly", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// ParseId parses a positive integer URL parameter.
func ParseId(param string) (int64, error) {
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		return 0, internal_errors.NotFound("Page not found")
	}
	return id, nil
}
