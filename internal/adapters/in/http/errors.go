package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"ordertracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrorMessage = "internal server error"

// decodeStrict reads a JSON body into dst, rejecting unknown fields and
// trailing data, then runs the echo validator.
func decodeStrict(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errs.IsValidation(err) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return errs.NewValueIsRequiredError("body")
		}
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if dec.More() {
		return errs.NewValueIsInvalidErrorWithCause("body", errors.New("unexpected data after JSON object"))
	}
	return c.Validate(dst)
}

// statusFor maps an engine error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(c echo.Context, err error) error {
	status := statusFor(err)
	switch status {
	case http.StatusBadRequest:
		return c.JSON(status, ErrorResponse{Error: err.Error()})
	case http.StatusNotFound:
		return c.JSON(status, ErrorResponse{Error: "order not found"})
	default:
		s.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.JSON(status, ErrorResponse{Error: internalErrorMessage})
	}
}

// HTTPErrorHandler renders errors raised by echo itself (unknown route,
// wrong method, panics caught by Recover) with the {error} body.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := internalErrorMessage

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok && status < http.StatusInternalServerError {
				message = m
			}
		}
		if status >= http.StatusInternalServerError {
			logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, ErrorResponse{Error: message})
	}
}
