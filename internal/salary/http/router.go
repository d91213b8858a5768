package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/salary/internal/salary/domain"
	"github.com/aussiebroadwan/salary/internal/salary/metrics"
	"github.com/aussiebroadwan/salary/pkg/httpx"
	"github.com/aussiebroadwan/salary/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/aussiebroadwan/salary/api/salary" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Coordinator is the part of the session coordinator the gateway forwards to.
type Coordinator interface {
	Login(ctx context.Context, login, password string) (string, error)
	Salary(ctx context.Context, login, token string) (domain.SalaryInfo, error)
	Ping(ctx context.Context) error
}

// Limits holds the rate limit profile of each route group.
type Limits struct {
	Login  httpx.RateLimitConfig // per IP
	Lookup httpx.RateLimitConfig // per IP and login
	Public httpx.RateLimitConfig // per IP
}

// DefaultLimits is used unless the Router is given other limits.
var DefaultLimits = Limits{
	Login:  httpx.PerMinute(10),
	Lookup: httpx.PerMinute(60),
	Public: httpx.PerMinute(300),
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	// Limits are applied when RateLimit is set.
	RateLimit bool
	Limits    Limits

	// TrustProxyHeaders keys limits on X-Forwarded-For and X-Real-IP
	// instead of the connection address.
	TrustProxyHeaders bool

	coordinator  Coordinator
	metrics      *metrics.Metrics
	gatherer     prometheus.Gatherer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
}

// NewRouter builds a router around c. A nil gatherer leaves /metrics
// unregistered.
func NewRouter(
	c Coordinator,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	buildVersion string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		Limits:       DefaultLimits,
		coordinator:  c,
		metrics:      m,
		gatherer:     gatherer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSalary()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Salary Service API
//	@version		0.1.0
//	@description	Issues per-user tokens from login and password and returns the salary record of a user presenting a valid token.
//	@description
//	@description	Every failure of /login and /salary is reported as a JSON null body.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/salary
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8000
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// route registers h under pattern, instrumented with the route label and
// rate limited by limit when limiting is on.
func (r *Router) route(pattern, label string, h http.Handler, limit httpx.Middleware) {
	if r.RateLimit && limit != nil {
		h = httpx.Chain(h, limit)
	}
	r.Mux.Handle(pattern, r.metrics.Instrument(label, h))
}

func (r *Router) registerSalary() {
	r.route("GET /{$}", "/",
		http.HandlerFunc(RootHandler),
		httpx.RateLimitByIP(r.Limits.Public, r.TrustProxyHeaders),
	)

	// Strict limit by IP, logins are the brute-force surface
	r.route("POST /login", "/login",
		&LoginHandler{Coordinator: r.coordinator},
		httpx.RateLimitByIP(r.Limits.Login, r.TrustProxyHeaders),
	)

	r.route("GET /salary", "/salary",
		&SalaryHandler{Coordinator: r.coordinator},
		httpx.RateLimitByIPAndQuery(r.Limits.Lookup, "login", r.TrustProxyHeaders),
	)
}

func (r *Router) registerSystem() {
	r.route("GET /livez", "/livez",
		LivezHandler(r.startTime, r.buildVersion),
		httpx.RateLimitByIP(r.Limits.Public, r.TrustProxyHeaders),
	)
	r.route("GET /readyz", "/readyz",
		ReadyzHandler(r.startTime, r.buildVersion, r.coordinator),
		httpx.RateLimitByIP(r.Limits.Public, r.TrustProxyHeaders),
	)

	if r.gatherer != nil {
		r.Mux.Handle("GET /metrics", metrics.Handler(r.gatherer))
	}
}
