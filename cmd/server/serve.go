package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/hosammostafait/AICareerAdvisor/logger"
	genCtrlImp "github.com/hosammostafait/AICareerAdvisor/pkg/generation/controllerImp"
	healthCtrlImp "github.com/hosammostafait/AICareerAdvisor/pkg/health/controllerImp"
	planCtrlImp "github.com/hosammostafait/AICareerAdvisor/pkg/plan/controllerImp"
	planSvc "github.com/hosammostafait/AICareerAdvisor/pkg/plan/serviceImp"
	"github.com/hosammostafait/AICareerAdvisor/router"
	"github.com/hosammostafait/AICareerAdvisor/web"
)

func newServeCmd(load loadConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(load)
			if err != nil {
				return err
			}
			defer a.Close()

			e, err := a.newEcho()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, e)
		},
	}
}

func (a *app) newEcho() (*echo.Echo, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	return router.New(
		e,
		a.log,
		planCtrlImp.NewPlanCtrl(a.plans),
		genCtrlImp.NewStatsCtrl(a.genRepo),
		healthCtrlImp.NewHealthCtrl(a.db, planSvc.CredentialConfigured(a.cfg.GeminiAPIKey)),
		a.metrics.Handler(),
	), nil
}

func (a *app) serve(ctx context.Context, e *echo.Echo) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", logger.String("addr", ":"+a.cfg.Port))
		errCh <- e.Start(":" + a.cfg.Port)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	// generations in flight may take up to the generate timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GenerateTimeout+5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
