// Package health tracks dependency liveness and exposes it over gRPC and HTTP.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/sbilibin2017/poetree/internal/logger"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service name reported next to the overall "" entry.
const ServiceName = "poetree"

// CheckFunc probes one dependency.
type CheckFunc func(ctx context.Context) error

// Checker runs the registered checks periodically and publishes the result to a
// gRPC health server.
type Checker struct {
	checks  map[string]CheckFunc
	timeout time.Duration
	server  *health.Server

	mu     sync.RWMutex
	status map[string]string
}

func NewChecker(timeout time.Duration) *Checker {
	return &Checker{
		checks:  make(map[string]CheckFunc),
		timeout: timeout,
		server:  health.NewServer(),
		status:  make(map[string]string),
	}
}

// Register adds a named check. It must be called before Run.
func (c *Checker) Register(name string, fn CheckFunc) {
	c.checks[name] = fn
}

// Server returns the gRPC health service to register on a grpc.Server.
func (c *Checker) Server() healthpb.HealthServer {
	return c.server
}

// Check runs every probe once and reports whether all of them passed.
func (c *Checker) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	status := make(map[string]string, len(c.checks))
	healthy := true
	for name, fn := range c.checks {
		if err := fn(ctx); err != nil {
			logger.Log.Warnw("health check failed", "check", name, "error", err)
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	c.mu.Lock()
	c.status = status
	c.mu.Unlock()

	serving := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		serving = healthpb.HealthCheckResponse_NOT_SERVING
	}
	c.server.SetServingStatus("", serving)
	c.server.SetServingStatus(ServiceName, serving)
	return healthy
}

// Run checks immediately and then every interval until ctx is done.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	c.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			c.server.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

type report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Handler reports the last check result: 200 when every dependency is up, 503 otherwise.
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c.mu.RLock()
		rep := report{Status: "ok", Checks: make(map[string]string, len(c.status))}
		for name, s := range c.status {
			rep.Checks[name] = s
			if s != "ok" {
				rep.Status = "unavailable"
			}
		}
		c.mu.RUnlock()

		if len(rep.Checks) < len(c.checks) {
			rep.Status = "starting"
		}
		code := http.StatusOK
		if rep.Status != "ok" {
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(rep)
	}
}
