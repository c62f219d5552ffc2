package numbering

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"
)

// Document number prefixes.
const (
	InvoicePrefix = "INV"
	QuotePrefix   = "QUO"
)

// Sequencer hands out human-readable document numbers such as INV-1760000000000.
type Sequencer interface {
	Next(ctx context.Context, prefix string) (string, error)
}

// ClockSequencer derives the suffix from the wall clock in milliseconds. Two
// calls in the same millisecond get consecutive values, so numbers issued by
// one process never repeat.
type ClockSequencer struct {
	last atomic.Int64
	now  func() time.Time
}

// NewClockSequencer returns a sequencer reading time.Now.
func NewClockSequencer() *ClockSequencer {
	return &ClockSequencer{now: time.Now}
}

func (s *ClockSequencer) Next(_ context.Context, prefix string) (string, error) {
	return format(prefix, s.nextValue()), nil
}

func (s *ClockSequencer) nextValue() int64 {
	for {
		candidate := s.now().UnixMilli()
		prev := s.last.Load()
		if candidate <= prev {
			candidate = prev + 1
		}
		if s.last.CompareAndSwap(prev, candidate) {
			return candidate
		}
	}
}

func format(prefix string, n int64) string {
	return prefix + "-" + strconv.FormatInt(n, 10)
}
