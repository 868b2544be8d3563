package store

import (
	"errors"
	"time"

	. "github.com/go-ozzo/ozzo-validation"
)

type Config struct {
	// Latency is the simulated per-operation delay, kept to preserve
	// the asynchronous contract of the database the store stands in for.
	Latency time.Duration
}

func (c *Config) Validate() error {
	return ValidateStruct(c,
		Field(&c.Latency, By(nonNegativeDuration)),
	)
}

func nonNegativeDuration(value interface{}) error {
	d, ok := value.(time.Duration)
	if !ok {
		return errors.New("must be a duration")
	}
	if d < 0 {
		return errors.New("must not be negative")
	}
	return nil
}
