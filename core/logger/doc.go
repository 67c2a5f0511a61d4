// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework used
// by the reporting surface.
//
// # Context Awareness
//
// The WithRequestID helper extracts the request id from a Fiber context and
// attaches it to the log entry, ensuring that all logs related to a specific
// request can be correlated. Simulation runs carry a run_id field instead,
// attached by the cycle driver.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Run started")
//
//	// In a request handler:
//	l := logger.WithRequestID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
