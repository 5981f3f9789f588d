package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// scheduleParser accepts standard five-field expressions and descriptors
// such as "@every 1m" or "@hourly", matching what cron.New() schedules.
var scheduleParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateCronSchedule reports whether schedule can be run by robfig/cron.
//
// Examples of valid schedules:
//   - "@every 1m"
//   - "*/5 * * * *"
//   - "@hourly"
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("invalid cron schedule: cannot be empty")
	}
	if _, err := scheduleParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}

// ValidatePositive reports an error naming field when v is not positive.
func ValidatePositive[T int | float64](field string, v T) error {
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %v", field, v)
	}
	return nil
}
