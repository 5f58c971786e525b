package sdn_advanced

import "time"

// OFACSourceURL is recorded verbatim on every emitted Party record.
const OFACSourceURL = "https://sanctionslistservice.ofac.treas.gov/api/PublicationPreview/exports/SDN_ADVANCED.XML"

// ingestionTimestampLayout is the UTC format required for Party.IngestionTimestamp
// when rendered as text: YYYY-MM-DDTHH:MM:SS.microsecondsZ.
const ingestionTimestampLayout = "2006-01-02T15:04:05.000000Z"

// Config holds configuration for a parse run.
type Config struct {
	// Concurrency is the number of goroutines used to emit party records
	// once the reference/location/id-doc/sanctions maps are frozen. 1
	// means the emitter runs sequentially. Default: 1.
	Concurrency int

	// Now, if set, is used as the ingestion timestamp instead of time.Now().
	// Primarily for deterministic tests.
	Now func() time.Time
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Concurrency: 1,
	}
}

func (c *Config) withDefaults() *Config {
	if c == nil {
		c = DefaultConfig()
	}
	out := *c
	if out.Concurrency < 1 {
		out.Concurrency = 1
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	return &out
}

func (c *Config) validate() error {
	if c == nil {
		return nil
	}
	if c.Concurrency < 0 {
		return &ConfigError{Message: "Concurrency must not be negative"}
	}
	return nil
}
