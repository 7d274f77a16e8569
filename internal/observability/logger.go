package observability

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogLevel = "info"

// NewLogger constructs a zap logger emitting structured JSON at the given level.
// An empty level means info.
func NewLogger(level string) (*zap.Logger, error) {
	atom, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		EncodeDuration: zapcore.MillisDurationEncoder,
		CallerKey:      "caller",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		StacktraceKey:  "stacktrace",
	}

	cfg := zap.Config{
		Level:             atom,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     false,
		DisableStacktrace: true,
	}

	return cfg.Build()
}

// ErrInvalidLevel is returned for level names outside debug, info, warn and error.
var ErrInvalidLevel = errors.New("observability: invalid log level")

// ParseLevel converts a textual level into a zap atomic level. Only debug,
// info, warn and error are accepted; the panic and fatal levels
// are not configurable.
func ParseLevel(level string) (zap.AtomicLevel, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = defaultLogLevel
	}
	atom := zap.NewAtomicLevel()
	if err := atom.UnmarshalText([]byte(level)); err != nil {
		return atom, fmt.Errorf("%w %q: %v", ErrInvalidLevel, level, err)
	}
	if lvl := atom.Level(); lvl < zapcore.DebugLevel || lvl > zapcore.ErrorLevel {
		return atom, fmt.Errorf("%w %q", ErrInvalidLevel, level)
	}
	return atom, nil
}
