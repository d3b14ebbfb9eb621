package obslog

import "go.uber.org/zap"

// NewLogger builds the module's production logger. verbose=true lowers the
// level to Debug (solver lifecycle, per-cluster sizes); verbose=false keeps
// Info and above.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

// NopLogger returns a logger that discards everything, for callers that
// don't want scheduler lifecycle logs (e.g. unit tests).
func NopLogger() *zap.Logger {
	return zap.NewNop()
}
