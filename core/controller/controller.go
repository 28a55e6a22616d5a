package controller

import (
	"net/http"

	"github.com/prasen-shakya/Schedulify/core/errors"
	"github.com/prasen-shakya/Schedulify/core/logger"

	"github.com/labstack/echo/v4"
)

// Response bodies follow the original wire contract: successes carry either
// a plain payload or {"message": ...}, failures carry {"error": ...} with
// the reason surfaced verbatim.
type (
	MessageResponse struct {
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)

type BaseController interface {
	OK(c echo.Context, data any) error
	Created(c echo.Context, data any) error
	Message(c echo.Context, status int, message string) error

	BadRequest(c echo.Context, message string) error
	Unauthorized(c echo.Context, message string) error
	Forbidden(c echo.Context, message string) error
	NotFound(c echo.Context, message string) error
	InternalServerError(c echo.Context, message string) error

	AppError(c echo.Context, err *errors.AppError) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func (h *responseHandler) OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

func (h *responseHandler) Created(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

func (h *responseHandler) Message(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageResponse{Message: message})
}

func (h *responseHandler) BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func (h *responseHandler) Unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: message})
}

func (h *responseHandler) Forbidden(c echo.Context, message string) error {
	return c.JSON(http.StatusForbidden, ErrorResponse{Error: message})
}

func (h *responseHandler) NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

func (h *responseHandler) InternalServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// AppError maps a service error onto the HTTP status the original API used
// for that failure class.
func (h *responseHandler) AppError(c echo.Context, err *errors.AppError) error {
	status := http.StatusInternalServerError
	msg := "internal server error"
	code := errors.ErrInternalServer

	if err != nil {
		code = err.Code
		if err.Message != "" {
			msg = err.Message
		}
		switch err.Code {
		case errors.ErrInvalidInput, errors.ErrInvalidRequestData, errors.ErrAlreadyExists:
			// The original reports conflicts (duplicate email, duplicate
			// membership) as plain 400s rather than 409.
			status = http.StatusBadRequest
		case errors.ErrUnauthorized, errors.ErrMissingAuthorizationHeader:
			status = http.StatusUnauthorized
		case errors.ErrForbidden, errors.ErrTokenExpired, errors.ErrInvalidTokenFormat:
			status = http.StatusForbidden
		case errors.ErrNotFound:
			status = http.StatusNotFound
		default:
			status = http.StatusInternalServerError
		}
	}

	logger.Error("BaseController:AppError",
		"status", status,
		"code", string(code),
		"message", msg,
	)
	return c.JSON(status, ErrorResponse{Error: msg})
}
