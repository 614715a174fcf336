package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/hosammostafait/AICareerAdvisor/logger"
	"github.com/hosammostafait/AICareerAdvisor/pkg/middleware"
	"github.com/hosammostafait/AICareerAdvisor/pkg/plan/controller"
)

func New(
	e *echo.Echo,
	log logger.Logger,
	planCtrl controller.PlanController,
	statsCtrl interface{ Stats(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
	metrics http.Handler,
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.AccessLog(log))

	e.GET("/", planCtrl.Form)
	e.POST("/report", planCtrl.Report)
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(metrics))

	api := e.Group("/api")
	api.POST("/plan", planCtrl.Generate)
	api.POST("/plan/text", planCtrl.Text)
	api.POST("/plan/xlsx", planCtrl.Export)
	api.GET("/stats", statsCtrl.Stats)
	return e
}
