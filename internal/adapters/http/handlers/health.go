// Package handlers adapts HTTP requests to the quote service and the probes.
package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/quote-service/internal/ports"
)

// BuildInfo describes the running binary. Values come from ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// NewBuildInfo fills in the Go version of the running binary.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	metrics   http.Handler
}

// NewHealthHandler creates a health handler over registry.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		metrics:   MetricsHandler(),
	}
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness answers while the process runs. It never touches the quote store,
// so a store outage does not get the pod restarted.
func (h *HealthHandler) Liveness(c *gin.Context) {
	noStore(c)
	c.JSON(http.StatusOK, livenessResponse{Status: "ok"})
}

type readinessResponse struct {
	Status  string                        `json:"status"`
	Version string                        `json:"version,omitempty"`
	Checks  map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness runs every registered check, the quote store ping included,
// and answers 503 when any of them fails.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	noStore(c)
	c.JSON(status, readinessResponse{
		Status:  string(result.Status),
		Version: h.buildInfo.Version,
		Checks:  result.Checks,
	})
}

// BuildInfoHandler serves /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler exposes the default Prometheus registry, where the quote
// store and the HTTP middleware record their series.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

// RegisterRoutes mounts GET /health for frontends and load balancers, and
// the /-/live, /-/ready, /-/build and /-/metrics probes.
func (h *HealthHandler) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/health", h.Liveness)

	probes := engine.Group("/-")
	probes.GET("/live", h.Liveness)
	probes.GET("/ready", h.Readiness)
	probes.GET("/build", h.BuildInfoHandler)
	probes.GET("/metrics", gin.WrapH(h.metrics))
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}
