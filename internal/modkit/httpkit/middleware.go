package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"titlesmith/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// SlowRequest marks slower requests as warn in the access log
	SlowRequest time.Duration
	// Timeout cancels request contexts, storefront fetches included
	Timeout time.Duration
	// Origins for CORS, empty means any
	Origins []string
}

// DefaultStackOptions suits a title API fronting one storefront
var DefaultStackOptions = StackOptions{SlowRequest: 500 * time.Millisecond, Timeout: 30 * time.Second}

// CommonStack returns the baseline middleware for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = DefaultStackOptions.Timeout
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability, outside recover so panics are logged with their 500
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest}),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
