package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// QueryLog represents a single SQL query log entry
type QueryLog struct {
	ID        int           `json:"id"`
	SQL       string        `json:"sql"`
	Duration  time.Duration `json:"duration"`
	Rows      int64         `json:"rows"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// QueryLogger is a fixed-size ring of the most recent SQL statements.
// Reads return newest first.
type QueryLogger struct {
	mu   sync.RWMutex
	ring []QueryLog
	head int // next slot to write
	size int
	seq  int
}

// SQLLogger records every statement run through a Connection
var SQLLogger = NewQueryLogger(100)

// NewQueryLogger creates a ring holding up to capacity statements
func NewQueryLogger(capacity int) *QueryLogger {
	if capacity < 1 {
		capacity = 1
	}
	return &QueryLogger{ring: make([]QueryLog, capacity)}
}

// LogQuery records a SQL statement, overwriting the oldest when full
func (ql *QueryLogger) LogQuery(sql string, duration time.Duration, rows int64, err error) {
	ql.mu.Lock()
	defer ql.mu.Unlock()

	ql.seq++
	entry := QueryLog{
		ID:        ql.seq,
		SQL:       sql,
		Duration:  duration,
		Rows:      rows,
		Timestamp: time.Now(),
	}
	if err != nil {
		entry.Error = err.Error()
	}

	ql.ring[ql.head] = entry
	ql.head = (ql.head + 1) % len(ql.ring)
	if ql.size < len(ql.ring) {
		ql.size++
	}
}

// GetQueries returns every retained statement
func (ql *QueryLogger) GetQueries() []QueryLog {
	return ql.GetRecentQueries(-1)
}

// GetRecentQueries returns up to n statements; n < 0 means all
func (ql *QueryLogger) GetRecentQueries(n int) []QueryLog {
	ql.mu.RLock()
	defer ql.mu.RUnlock()

	if n < 0 || n > ql.size {
		n = ql.size
	}
	return ql.newest(n)
}

// LastID returns the id of the latest statement, 0 before the first
func (ql *QueryLogger) LastID() int {
	ql.mu.RLock()
	defer ql.mu.RUnlock()
	return ql.seq
}

// QueriesSince returns the retained statements logged after id
func (ql *QueryLogger) QueriesSince(id int) []QueryLog {
	ql.mu.RLock()
	defer ql.mu.RUnlock()

	n := ql.seq - id
	if n < 0 {
		n = 0
	}
	if n > ql.size {
		n = ql.size
	}
	return ql.newest(n)
}

// Clear drops the retained statements; ids keep increasing
func (ql *QueryLogger) Clear() {
	ql.mu.Lock()
	defer ql.mu.Unlock()
	ql.head, ql.size = 0, 0
}

// newest copies the n latest entries; callers hold the lock
func (ql *QueryLogger) newest(n int) []QueryLog {
	out := make([]QueryLog, n)
	for k := 0; k < n; k++ {
		out[k] = ql.ring[(ql.head-1-k+len(ql.ring))%len(ql.ring)]
	}
	return out
}

// GormLogger sends gorm's output to zerolog and records every statement
// in a QueryLogger.
type GormLogger struct {
	level         logger.LogLevel
	slowThreshold time.Duration
	recorder      *QueryLogger
}

// NewGormLogger returns a logger at Info level when verbose, Warn otherwise
func NewGormLogger(verbose bool, recorder *QueryLogger) *GormLogger {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}
	return &GormLogger{
		level:         level,
		slowThreshold: 200 * time.Millisecond,
		recorder:      recorder,
	}
}

// LogMode implements logger.Interface
func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	nl := *l
	nl.level = level
	return &nl
}

// Info implements logger.Interface
func (l *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		log.Info().Msgf(msg, data...)
	}
}

// Warn implements logger.Interface
func (l *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		log.Warn().Msgf(msg, data...)
	}
}

// Error implements logger.Interface
func (l *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		log.Error().Msgf(msg, data...)
	}
}

// Trace implements logger.Interface
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	sql, rows := fc()
	elapsed := time.Since(begin)

	if l.recorder != nil {
		l.recorder.LogQuery(sql, elapsed, rows, err)
	}

	switch {
	case l.level <= logger.Silent:
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("Query failed")
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		log.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("Slow query")
	case l.level >= logger.Info:
		log.Debug().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("Query")
	}
}
