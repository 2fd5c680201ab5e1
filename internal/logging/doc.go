// Package logging provides structured logging for stepfield using zap.
//
// Logging is silent by default so log output never interferes with the
// TUI frame. Set the STEPFIELD_LOG_LEVEL environment variable to "debug",
// "info", "warn", or "error" to enable it; enabled output is written to a
// rotating file under the user's stepfield config directory, never to
// stdout.
//
// Commands call InitializeFromEnv once at startup and use the package
// level helpers:
//
//	logging.InitializeFromEnv()
//	defer logging.Sync()
//	logging.Info("editor committed", zap.Float64("value", v))
package logging
