package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/Iron-Ham/sprout/internal/catalog"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "simulation.virtual_day_ms")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateSimulation()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateCatalog()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateSimulation validates the SimulationConfig
func (c *Config) validateSimulation() []ValidationError {
	var errors []ValidationError

	const maxVirtualDayMs = 86_400_000 // one real day
	if c.Simulation.VirtualDayMs < 1 {
		errors = append(errors, ValidationError{
			Field:   "simulation.virtual_day_ms",
			Value:   c.Simulation.VirtualDayMs,
			Message: "must be at least 1ms",
		})
	}
	if c.Simulation.VirtualDayMs > maxVirtualDayMs {
		errors = append(errors, ValidationError{
			Field:   "simulation.virtual_day_ms",
			Value:   c.Simulation.VirtualDayMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxVirtualDayMs),
		})
	}

	sprout, ripening := c.Simulation.SproutThreshold, c.Simulation.RipeningThreshold
	if !isUnitInterior(sprout) {
		errors = append(errors, ValidationError{
			Field:   "simulation.sprout_threshold",
			Value:   sprout,
			Message: "must be between 0 and 1 (exclusive)",
		})
	}
	if !isUnitInterior(ripening) {
		errors = append(errors, ValidationError{
			Field:   "simulation.ripening_threshold",
			Value:   ripening,
			Message: "must be between 0 and 1 (exclusive)",
		})
	}
	if isUnitInterior(sprout) && isUnitInterior(ripening) && sprout >= ripening {
		errors = append(errors, ValidationError{
			Field:   "simulation.ripening_threshold",
			Value:   ripening,
			Message: fmt.Sprintf("must be greater than simulation.sprout_threshold (%v)", sprout),
		})
	}

	return errors
}

func isUnitInterior(v float64) bool {
	return !math.IsNaN(v) && v > 0 && v < 1
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	const minRefresh = 10   // 10ms minimum
	const maxRefresh = 1000 // 1 second maximum
	if c.TUI.RefreshIntervalMs < minRefresh {
		errors = append(errors, ValidationError{
			Field:   "tui.refresh_interval_ms",
			Value:   c.TUI.RefreshIntervalMs,
			Message: fmt.Sprintf("must be at least %dms", minRefresh),
		})
	}
	if c.TUI.RefreshIntervalMs > maxRefresh {
		errors = append(errors, ValidationError{
			Field:   "tui.refresh_interval_ms",
			Value:   c.TUI.RefreshIntervalMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxRefresh),
		})
	}

	const minProgressWidth = 10
	const maxProgressWidth = 80
	if c.TUI.ProgressWidth < minProgressWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.progress_width",
			Value:   c.TUI.ProgressWidth,
			Message: fmt.Sprintf("must be at least %d columns", minProgressWidth),
		})
	}
	if c.TUI.ProgressWidth > maxProgressWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.progress_width",
			Value:   c.TUI.ProgressWidth,
			Message: fmt.Sprintf("exceeds maximum of %d columns", maxProgressWidth),
		})
	}

	return errors
}

// validateCatalog validates the CatalogConfig override, if any
func (c *Config) validateCatalog() []ValidationError {
	if len(c.Catalog.Plants) == 0 {
		return nil
	}
	if _, err := catalog.New(c.Catalog.Plants); err != nil {
		return []ValidationError{{
			Field:   "catalog.plants",
			Value:   len(c.Catalog.Plants),
			Message: err.Error(),
		}}
	}
	return nil
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
