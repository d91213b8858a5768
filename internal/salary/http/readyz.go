package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/salary/pkg/httpx"
	"github.com/aussiebroadwan/salary/pkg/salarysdk"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint reporting whether the token store is reachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	salarysdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	salarysdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, p pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &salarysdk.HealthChecks{Store: "ok"}
		status, code := "ok", http.StatusOK

		if err := p.Ping(r.Context()); err != nil {
			checks.Store = "error: " + err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, salarysdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
