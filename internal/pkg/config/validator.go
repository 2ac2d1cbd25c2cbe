// Package config holds the value checks used by the typed configuration
// loader and the cron parser shared with the scheduler.
package config

import (
	"cmp"
	"fmt"

	"github.com/robfig/cron/v3"
)

// cronParser accepts five-field expressions and descriptors such as "@every 1m" or "@hourly".
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ParseCronSchedule parses spec with the scheduler's parser.
func ParseCronSchedule(spec string) (cron.Schedule, error) {
	if spec == "" {
		return nil, fmt.Errorf("invalid cron schedule: cannot be empty")
	}
	sched, err := cronParser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid cron schedule '%s': %w", spec, err)
	}
	return sched, nil
}

// ValidateCronSchedule reports whether spec would be accepted by ParseCronSchedule.
func ValidateCronSchedule(spec string) error {
	_, err := ParseCronSchedule(spec)
	return err
}

// InRange checks lo <= v <= hi. It works for ints and time.Duration alike:
//
//	InRange(cost, bcrypt.MinCost, bcrypt.MaxCost)
//	InRange(ttl, time.Minute, 30*24*time.Hour)
func InRange[T cmp.Ordered](v, lo, hi T) error {
	switch {
	case lo > hi:
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", lo, hi)
	case v < lo:
		return fmt.Errorf("%v is below minimum %v", v, lo)
	case v > hi:
		return fmt.Errorf("%v exceeds maximum %v", v, hi)
	}
	return nil
}

// Positive checks v > 0.
func Positive[T cmp.Ordered](v T) error {
	var zero T
	if v <= zero {
		return fmt.Errorf("must be positive, got %v", v)
	}
	return nil
}
