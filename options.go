package tinymat

import (
	"fmt"
	"time"
)

// config holds optional configuration for Create.
type config struct {
	producer        string
	userDescription string
	bufferHint      int
	directToFile    bool
}

// Option configures optional parameters for Create.
type Option func(*config)

// WithDescription appends a user description to the header text, as
// `": <user description>"` after the producer/timestamp line (spec.md
// §6.1). The full composed header text is truncated to 116 bytes.
func WithDescription(desc string) Option {
	return func(c *config) {
		c.userDescription = desc
	}
}

// WithProducer sets the `<producer>` token in the default header text
// ("MATLAB 5.0 MAT-file, written by <producer>, ... UTC", spec.md §6.1).
//
// Default producer: "tinymat"
func WithProducer(name string) Option {
	return func(c *config) {
		c.producer = name
	}
}

// WithBufferHint sets the initial capacity of the in-memory staging buffer
// used by the default buffer-all-then-flush sink (spec.md §4.1). Ignored
// when WithDirectToFile is also given. A value <= 0 falls back to the
// sink's own default.
//
// Default: 100 KiB
func WithBufferHint(bytes int) Option {
	return func(c *config) {
		c.bufferHint = bytes
	}
}

// WithDirectToFile switches the sink to write straight to the destination
// file using real seeks for the back-patch and struct-splice protocols,
// instead of staging the whole file in memory first. Use this for outputs
// too large to comfortably buffer.
//
// Default: off (buffer-all-then-flush)
func WithDirectToFile() Option {
	return func(c *config) {
		c.directToFile = true
	}
}

// defaultConfig returns configuration with default values.
func defaultConfig() *config {
	return &config{
		producer:        "tinymat",
		userDescription: "",
		bufferHint:      0,
		directToFile:    false,
	}
}

// applyOptions applies Option functions to config in order.
func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}

// buildDescription composes the 128-byte header's description field per
// spec.md §6.1: "MATLAB 5.0 MAT-file, written by <producer>, YYYY-MM-DD
// HH:MM:SS UTC" optionally suffixed ": <user description>", truncated to
// 116 bytes.
func buildDescription(cfg *config, now time.Time) string {
	desc := fmt.Sprintf("MATLAB 5.0 MAT-file, written by %s, %s UTC",
		cfg.producer, now.UTC().Format("2006-01-02 15:04:05"))
	if cfg.userDescription != "" {
		desc += ": " + cfg.userDescription
	}
	if len(desc) > 116 {
		desc = desc[:116]
	}
	return desc
}
