package http

import (
	"log/slog"
	"net/http"

	"restaurant/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterConfig struct {
	AllowOrigins []string
	// RateLimit is the sustained number of requests per second per client IP.
	// Zero disables limiting.
	RateLimit float64
	RateBurst int
	// Doc enables request validation and the Swagger UI when set.
	Doc *openapi3.T
}

// NewRouter builds the echo instance with the middleware chain, the /api routes
// and the Swagger UI.
func NewRouter(cfg RouterConfig, logger *slog.Logger, server *Server) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
	}))
	e.Use(rateLimiter(cfg.RateLimit, cfg.RateBurst))

	group := e.Group("/api")
	if cfg.Doc != nil {
		validator, err := openAPIValidator(cfg.Doc)
		if err != nil {
			return nil, err
		}
		group.Use(validator)

		if err = api.RegisterSwagger(cfg.Doc); err != nil {
			return nil, err
		}
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
	server.Register(group)

	return e, nil
}
