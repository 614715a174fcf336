package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db                   *gorm.DB
	credentialConfigured bool
}

func NewHealthCtrl(db *gorm.DB, credentialConfigured bool) *HealthCtrl {
	return &HealthCtrl{db: db, credentialConfigured: credentialConfigured}
}

// Health pings the database and reports whether an API key is set. A
// missing key fails the check since no plan can be generated without it.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK, dbErr := true, ""
	if h.db == nil {
		dbOK, dbErr = false, "gorm db is nil"
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbOK, dbErr = false, "db.DB(): "+err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbOK, dbErr = false, "ping: "+err.Error()
	}

	geminiErr := ""
	if !h.credentialConfigured {
		geminiErr = "API_KEY is not configured"
	}

	allOK := dbOK && h.credentialConfigured
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
			"gemini":   sub{OK: h.credentialConfigured, Err: geminiErr},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
