package providers

import (
	"alarmclock/internal/structures"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeDelete
	TypeStore
	TypeClock
	TypeDevice
	TypeUI
)

const logFileName = "alarmclock.log"

func (t TypeEnum) String() string {
	switch t {
	case TypeGet:
		return "get"
	case TypePost:
		return "post"
	case TypeDelete:
		return "delete"
	case TypeStore:
		return "store"
	case TypeClock:
		return "clock"
	case TypeDevice:
		return "device"
	case TypeUI:
		return "ui"
	default:
		return "app"
	}
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

type LogProvider struct {
	file   *os.File
	logger zerolog.Logger
	once   sync.Once
}

func GetLogTypeByRequestType(method string) TypeEnum {
	switch method {
	case "POST", "PUT", "PATCH":
		return TypePost
	case "DELETE":
		return TypeDelete
	default:
		return TypeGet
	}
}

// NewLogProvider writes JSON lines to <logger.dir>/alarmclock.log. The terminal
// belongs to the alarm screen, so nothing is ever written to stdout.
func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}
	if conf.Debug {
		level = zerolog.DebugLevel
	}

	path := filepath.Join(conf.Logger.Dir, logFileName)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.FileMode(conf.Logger.Mode))
	if err != nil {
		return nil, fmt.Errorf("unable to open log file: %w", err)
	}

	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()

	return &LogProvider{file: file, logger: logger}, nil
}

func (l *LogProvider) event(ev *zerolog.Event, t TypeEnum, format string, args ...interface{}) {
	ev.Str("type", t.String()).Msgf(format, args...)
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.Error(), t, format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.Warn(), t, format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.Debug(), t, format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.Info(), t, format, args...)
}

// Fatalf logs at fatal level without exiting; callers decide how to stop.
func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.event(l.logger.WithLevel(zerolog.FatalLevel), t, format, args...)
}

func (l *LogProvider) Close() {
	l.once.Do(func() {
		_ = l.file.Sync()
		_ = l.file.Close()
	})
}
