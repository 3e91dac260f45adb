package handler

import (
	"errors"
	"net/http"

	"assetdesk/internal/assetdesk/directory"
	"assetdesk/internal/assetdesk/model"
	"assetdesk/internal/assetdesk/service"
)

// httpError maps service errors to HTTP status and body.
func httpError(err error) (int, interface{}) {
	var code string
	var status int

	switch {
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "unauthorized"
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		code = "forbidden"
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
		code = "bad_request"
	case errors.Is(err, service.ErrNotFound), errors.Is(err, directory.ErrEmployeeNotFound):
		status = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: err.Error()},
	}
}

func validationError(err error) model.ErrorResponse {
	if e, ok := err.(*model.ErrorDetail); ok {
		return model.ErrorResponse{Error: *e}
	}
	return model.ErrorResponse{
		Error: model.ErrorDetail{Code: "bad_request", Message: err.Error()},
	}
}
