package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// requestError carries a status and a client-facing message chosen by a handler.
type requestError struct {
	status  int
	message string
	cause   error
}

func (e *requestError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *requestError) Unwrap() error {
	return e.cause
}

func badRequest(message string, cause error) error {
	return &requestError{status: http.StatusBadRequest, message: message, cause: cause}
}

// NewErrorHandler renders every error returned by a route or middleware as an
// envelope. Errors that map to 500 are logged with the request id; their
// detail never reaches the client.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			req := c.Request()
			logger.ErrorContext(req.Context(), "request failed",
				slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Any("error", err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, failure(message))
	}
}

func classify(err error) (int, string) {
	var (
		reqErr        *requestError
		httpErr       *echo.HTTPError
		transitionErr *order.InvalidTransitionError
		unavailable   *commands.MenuItemUnavailableError
		notFound      *errs.ObjectNotFoundError
	)

	switch {
	case errors.As(err, &reqErr):
		return reqErr.status, reqErr.message
	case errors.As(err, &httpErr):
		return httpErr.Code, echoMessage(httpErr)
	case errors.As(err, &transitionErr):
		return http.StatusBadRequest, transitionMessage(transitionErr)
	case errors.As(err, &unavailable):
		return http.StatusBadRequest, unavailable.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, validationMessage(err)
	case errors.As(err, &notFound):
		return http.StatusNotFound, capitalize(notFound.ParamName) + " not found"
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, conflictMessage(err)
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, "Order was modified by another request, please retry"
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}

func echoMessage(err *echo.HTTPError) string {
	switch err.Code {
	case http.StatusNotFound:
		return "Route not found"
	case http.StatusTooManyRequests:
		return "Too many requests"
	}
	if msg, ok := err.Message.(string); ok && msg != "" {
		return msg
	}
	return http.StatusText(err.Code)
}

func transitionMessage(err *order.InvalidTransitionError) string {
	allowed := err.From.AllowedNext()
	names := make([]string, 0, len(allowed))
	for _, s := range allowed {
		names = append(names, s.String())
	}
	valid := strings.Join(names, ", ")
	if valid == "" {
		valid = "none"
	}
	return fmt.Sprintf("Cannot transition from %q to %q. Valid transitions: %s", err.From, err.To, valid)
}

// validationMessage flattens joined validation errors into one line.
func validationMessage(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

func conflictMessage(err error) string {
	var exists *errs.ObjectAlreadyExistsError
	if errors.As(err, &exists) && exists.ParamName == "menu item name" {
		return "A menu item with this name already exists"
	}
	return "Resource already exists"
}

func capitalize(s string) string {
	if s == "" {
		return "Resource"
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
