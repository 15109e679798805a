// Package logger provides structured JSON logging for the scrape pipeline.
//
// Log entries are single-line JSON with a timestamp, level, message, and
// optional structured fields, so CI logs stay grep- and jq-friendly:
//
//	logger.Info("scraped venue", logger.Fields{
//	    "venue": "The Earl",
//	    "events": 42,
//	})
//
// The package also tracks per-run metrics (counters and durations) used for
// the end-of-run venue summary table.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Fields carries arbitrary structured log fields.
type Fields map[string]interface{}

// Entry is a single serialized log line.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Logger writes structured entries at or above a minimum level.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	output   io.Writer
}

var defaultLogger = New(LevelInfo, os.Stdout)

// New creates a logger. Messages below level are discarded.
func New(level Level, output io.Writer) *Logger {
	return &Logger{minLevel: level, output: output}
}

// SetDefault replaces the package-level logger used by the convenience
// functions, centralizing configuration in main.
func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)

	l.mu.Lock()
	defer l.mu.Unlock()
	if marshalErr != nil {
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, marshalErr)
		return
	}
	fmt.Fprintln(l.output, string(data))
}

// Debug logs diagnostic detail.
func (l *Logger) Debug(message string, fields Fields) { l.log(LevelDebug, message, fields, nil) }

// Info logs operational information.
func (l *Logger) Info(message string, fields Fields) { l.log(LevelInfo, message, fields, nil) }

// Warn logs a recoverable problem.
func (l *Logger) Warn(message string, fields Fields) { l.log(LevelWarn, message, fields, nil) }

// Error logs a failure with its error attached.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using the default logger.

func Debug(message string, fields Fields) { defaultLogger.Debug(message, fields) }
func Info(message string, fields Fields)  { defaultLogger.Info(message, fields) }
func Warn(message string, fields Fields)  { defaultLogger.Warn(message, fields) }
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Metrics tracks run counters and timing measurements. Thread-safe, though
// the pipeline itself is sequential; tests exercise it concurrently.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

// NewMetrics creates an empty metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// Incr adds n to a counter, initializing it when absent.
func (m *Metrics) Incr(name string, n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += n
}

// RecordTiming appends a duration measurement.
func (m *Metrics) RecordTiming(name string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], d)
}

// Counter returns a counter's current value.
func (m *Metrics) Counter(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[name]
}

// TimingStats summarizes recorded durations for one name.
type TimingStats struct {
	Count   int           `json:"count"`
	Total   time.Duration `json:"total"`
	Average time.Duration `json:"average"`
	Max     time.Duration `json:"max"`
}

// Timing returns statistics for a timing series; ok is false when nothing
// was recorded under that name.
func (m *Metrics) Timing(name string) (TimingStats, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	durations := m.timings[name]
	if len(durations) == 0 {
		return TimingStats{}, false
	}

	var total time.Duration
	max := durations[0]
	for _, d := range durations {
		total += d
		if d > max {
			max = d
		}
	}
	return TimingStats{
		Count:   len(durations),
		Total:   total,
		Average: total / time.Duration(len(durations)),
		Max:     max,
	}, true
}

var defaultMetrics = NewMetrics()

// DefaultMetrics returns the process-wide metrics tracker.
func DefaultMetrics() *Metrics {
	return defaultMetrics
}

// ResetMetrics replaces the process-wide tracker, clearing all counters.
func ResetMetrics() {
	defaultMetrics = NewMetrics()
}

// Incr adds n to a counter on the default tracker.
func Incr(name string, n int64) {
	defaultMetrics.Incr(name, n)
}

// Counter returns a counter's value from the default tracker.
func Counter(name string) int64 {
	return defaultMetrics.Counter(name)
}

// RecordTiming appends a duration on the default tracker.
func RecordTiming(name string, d time.Duration) {
	defaultMetrics.RecordTiming(name, d)
}
