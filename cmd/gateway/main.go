package main

import (
	"strconv"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"

	"shareit/config"
	"shareit/internal/gateway"
	"shareit/internal/logging"
	"shareit/internal/middleware"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, "shareit-gateway")

	client := gateway.NewClient(cfg.ServerURL)
	gw := gateway.New(client)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "shareit-gateway"})
	})

	gw.RegisterRoutes(e)

	log.Info().Int("port", cfg.GatewayPort).Str("server_url", cfg.ServerURL).Msg("gateway starting")
	if err := e.Start(":" + strconv.Itoa(cfg.GatewayPort)); err != nil {
		log.Fatal().Err(err).Msg("gateway stopped")
	}
}
