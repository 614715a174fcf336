package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hosammostafait/AICareerAdvisor/logger"
)

const ContextKeyRequestID = "rid"

// RequestID keeps the caller's X-Request-Id or assigns a new one, echoes it
// on the response and stores it on the context under "rid".
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, rid)
			c.Set(ContextKeyRequestID, rid)
			return next(c)
		}
	}
}

// AccessLog writes one line per request. Request bodies are never logged.
func AccessLog(log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			rid, _ := c.Get(ContextKeyRequestID).(string)
			fields := []logger.Field{
				logger.String("rid", rid),
				logger.String("method", c.Request().Method),
				logger.String("path", c.Path()),
				logger.Int("status", c.Response().Status),
				logger.Int64("latency_ms", time.Since(start).Milliseconds()),
			}
			if c.Response().Status >= 500 {
				log.Warn("request", fields...)
			} else {
				log.Info("request", fields...)
			}
			return nil
		}
	}
}
