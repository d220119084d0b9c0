// Package logging provides structured logging utilities for go-enums tools.
//
// # Overview
//
// This package wraps the standard library slog package with shared defaults
// and conventions for consistent logging across the library and the enumgen
// CLI. It supports environment-based log level configuration, module/version
// context injection, and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("enumgen", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("generating enums", "type", "Color")
//	    slog.Debug("discovered const block", "constants", 4)
//	    slog.Error("generation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("enumgen", "v2.0.0", "debug")
//	logger.Info("processing package", "dir", "./pkg/colors")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("enumgen", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug enumgen generate -type=Color ./...
//	LOG_LEVEL=error enumgen verify ./...
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "generation complete",
//	    "module": "enumgen",
//	    "version": "v1.0.0",
//	    "types": 3
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "generator.Discover",
//	        "file": "discover.go",
//	        "line": 45
//	    },
//	    "msg": "discovered const block",
//	    "module": "enumgen",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/generator - Discovery and emission logging
//   - pkg/serializer - Output writer logging
//
// All components share consistent logging format and configuration.
package logging
