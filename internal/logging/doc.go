// Package logging provides structured logging for sprout.
//
// This package wraps Go's log/slog to provide JSON-formatted logs. The
// terminal UI owns stdout, so the logger normally writes to a file in the
// configured log directory.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/dir", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("planting started", "total_days", 10)
//
// # Persistent Attributes
//
// Child loggers carry attributes into every entry:
//
//	plantLogger := logger.WithPlant("🥕 Cenoura").WithState("growing")
//	plantLogger.Info("phase changed", "phase", 2)
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"phase changed","plant":"🥕 Cenoura","state":"growing","phase":2}
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewWriterLogger] with a
// bytes.Buffer to assert on entries.
package logging
