// Package eventlog records dock interaction events and clusters similar
// ones with the Drain log parsing algorithm.
package eventlog

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/ivoronin/dockview/internal/types"
)

const (
	// DefaultLimit bounds the number of retained events.
	DefaultLimit = 500
	// DefaultSimilarityThreshold controls clustering aggressiveness (0.0-1.0).
	// 0.6 groups "Closed tab Files in output" with "Closed tab Help in output"
	// but keeps messages differing in two of five words apart.
	DefaultSimilarityThreshold = 0.6
)

// Config holds event log parameters.
type Config struct {
	Limit               int
	SimilarityThreshold float64
	Ignore              *regexp.Regexp // filters events by "Reason: Message"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Limit:               DefaultLimit,
		SimilarityThreshold: DefaultSimilarityThreshold,
	}
}

// Log is a bounded, concurrency-safe event log.
type Log struct {
	mu     sync.Mutex
	config Config
	events []types.Event
	total  int
	now    func() time.Time
	log    *slog.Logger
}

// New creates an event log. Recorded events are mirrored to log when it is
// not nil.
func New(config Config, log *slog.Logger) *Log {
	if config.Limit <= 0 {
		config.Limit = DefaultLimit
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Log{config: config, now: time.Now, log: log}
}

// Record appends an event, dropping the oldest one when the log is full.
func (l *Log) Record(eventType, reason, message string) {
	level := slog.LevelInfo
	if eventType == types.EventWarning {
		level = slog.LevelWarn
	}
	l.log.Log(context.Background(), level, message, "reason", reason)

	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.events) == l.config.Limit {
		copy(l.events, l.events[1:])
		l.events = l.events[:len(l.events)-1]
	}
	l.total++
	l.events = append(l.events, types.Event{
		Type:    eventType,
		Reason:  reason,
		Message: message,
		Time:    l.now(),
	})
}

// Events returns a copy of the retained events, oldest first.
func (l *Log) Events() []types.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]types.Event(nil), l.events...)
}

// Total returns the number of events recorded so far, including dropped ones.
func (l *Log) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.total
}

// Summary clusters the retained events.
func (l *Log) Summary() types.EventSummary {
	return Summarize(l.Events(), l.config.Ignore, l.config.SimilarityThreshold)
}
