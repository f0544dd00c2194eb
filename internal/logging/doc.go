// Package logging provides structured logging for glimpse.
//
// This package wraps zap with convenience functions for the logging
// patterns used throughout the program. Logging is silent by default so
// that nothing interferes with the terminal UI; set GLIMPSE_LOG_LEVEL to
// "debug", "info", "warn", or "error" to enable output on stderr.
//
// All log functions use structured fields for queryability:
//
//	logging.Debug("Discovered LED",
//	    zap.String("file_name", "input4::capslock"),
//	    zap.Bool("on", true),
//	)
//
// Initialize logging once at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
