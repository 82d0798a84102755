// Package logger provides the structured logger used across the client.
//
// It wraps Uber's zap with JSON output, ISO8601 timestamps and a fixed
// (msg, err, fields) call shape, and integrates with the fx dependency
// injection framework.
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Debug,
//		ServiceName: "search-api",
//	})
//
//	log.Info("filter built", nil, map[string]interface{}{
//		"collection": "documents",
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Supply(logger.Config{Level: logger.Info, ServiceName: "search-api"}),
//		// ... other modules
//	)
//
// # Configuration
//
// The logger can be configured via environment variables:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	LOGGER_SERVICE_NAME=search-api  # Value of the "service" field
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
