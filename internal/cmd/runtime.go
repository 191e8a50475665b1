package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/sprout/internal/config"
	"github.com/Iron-Ham/sprout/internal/growth"
	"github.com/Iron-Ham/sprout/internal/logging"
)

// runtime is what every command builds from the loaded configuration.
type runtime struct {
	cfg        *config.Config
	logger     *logging.Logger
	controller *growth.Controller
}

// newRuntime loads and validates the configuration, opens the log file and
// builds the catalog and controller.
func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cat, err := cfg.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("invalid plant catalog: %w", err)
	}

	logger := newLogger(cfg)
	ctrl := growth.NewController(cat,
		growth.WithVirtualDay(cfg.Simulation.VirtualDay()),
		growth.WithThresholds(growth.Thresholds{
			Sprout:   cfg.Simulation.SproutThreshold,
			Ripening: cfg.Simulation.RipeningThreshold,
		}),
		growth.WithLogger(logger),
	)

	return &runtime{cfg: cfg, logger: logger, controller: ctrl}, nil
}

// newLogger opens the JSON log file. Logging problems never stop the
// program: it falls back to a no-op logger with a warning on stderr.
func newLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	logger, err := logging.NewLogger(cfg.Logging.LogDir(), cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return logging.NopLogger()
	}
	return logger
}

// Close flushes the log file.
func (r *runtime) Close() {
	if r == nil || r.logger == nil {
		return
	}
	_ = r.logger.Close()
}
