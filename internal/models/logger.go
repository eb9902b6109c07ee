package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration above which queries are logged as warnings.
const slowQuery = 200 * time.Millisecond

// logger sends gorm's log output to zerolog.
type logger struct {
	Logger zerolog.Logger
}

func (l *logger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *logger) Info(_ context.Context, s string, args ...interface{}) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *logger) Warn(_ context.Context, s string, args ...interface{}) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *logger) Error(_ context.Context, s string, args ...interface{}) {
	l.Logger.Error().Msgf(s, args...)
}

// Trace logs every statement at debug level. Failed statements are logged
// as errors, slow ones as warnings.
func (l *logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	// Building the SQL string is expensive, skip it when nothing is logged
	if err == nil && elapsed < slowQuery && max(l.Logger.GetLevel(), zerolog.GlobalLevel()) > zerolog.DebugLevel {
		return
	}

	sql, rows := fc()
	event := l.Logger.With().Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Logger()

	switch {
	// Missing records and constraint violations are reported to the user,
	// they are not server errors
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		event.Error().Err(err).Msg("[GORM] query error")
	case elapsed >= slowQuery:
		event.Warn().Msg("[GORM] slow query")
	default:
		event.Debug().Msg("[GORM] query")
	}
}
