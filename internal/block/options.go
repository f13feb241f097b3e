package block

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/meigma/cmdat/internal/dattype"
)

// Option configures Build.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	name    string
	workers int // 0 = auto, <0 = serial, >0 = fixed count
	max     int // 0 = no limit
}

// WithLogger sets the logger used for load progress and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithName sets the label used in logs and warnings. It defaults to the
// file name of the block.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithWorkers sets the number of decode workers.
// Values < 0 force serial decoding. Zero uses automatic heuristics.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithMaxRecords caps the number of records decoded. Bytes past the last
// decoded record are reported as a SizeMismatchWarning.
func WithMaxRecords(n int) Option {
	return func(c *config) {
		c.max = n
	}
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

func (c *config) nameOr(fallback string) string {
	if c.name != "" {
		return c.name
	}
	return fallback
}

func (c *config) workerCount(records int) int {
	switch {
	case c.workers < 0:
		return 1
	case c.workers > 0:
		return min(c.workers, records)
	case records < parallelMinRecords:
		return 1
	default:
		return min(runtime.GOMAXPROCS(0), records/parallelMinRecords+1)
	}
}

// withOffset records the offset of a failed record relative to the block.
func withOffset(err error, off int64) error {
	var recErr *dattype.RecordError
	if errors.As(err, &recErr) {
		recErr.Offset = off
	}
	return err
}
