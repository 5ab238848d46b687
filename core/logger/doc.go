// Package logger provides a structured logging facility based on Zap.
//
// Level "debug" selects the development preset; any other level uses the
// production preset. Format chooses json or console encoding.
//
// WithRayID attaches the request ray ID set by the rayid middleware so all log
// lines from one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Sync failed", zap.Error(err))
package logger
