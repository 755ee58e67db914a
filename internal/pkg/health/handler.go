package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Check is a named readiness test against one backing dependency.
// Readiness fails while any check returns an error.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		buildInfo.Hostname = hostname
		buildInfo.ServerTime = time.Now()

		return c.JSON(http.StatusOK, buildInfo)
	}
}

// NewReadyHandler creates a handler that runs the dependency checks. Each
// check gets a bounded slice of the request context so one stuck dependency
// cannot hang the endpoint.
func NewReadyHandler(checks ...Check) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := map[string]string{}
		healthy := true

		for _, check := range checks {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			err := check.Run(ctx)
			cancel()

			if err != nil {
				status[check.Name] = err.Error()
				healthy = false
			} else {
				status[check.Name] = "ok"
			}
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, status)
	}
}

// RegisterHealthEndpoints registers the health check endpoints. Liveness
// endpoints always answer OK; /ready reflects the dependency checks.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checks ...Check) {
	e.GET("/ping", NewPingHandler(serviceName))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/ready", NewReadyHandler(checks...))
}
