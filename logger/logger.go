// Package logger builds the zap logger shared by the CLI and the solver.
package logger

import (
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the encoder and threshold.
type Options struct {
	// JSON switches to zap's production JSON encoding.
	JSON bool

	// Level is one of debug, info, warn, error. Empty means info.
	Level string

	// Output receives console logs; nil means stderr.
	Output zapcore.WriteSyncer
}

// New returns a logger for opts.
func New(opts Options) (*zap.Logger, error) {
	level := zap.InfoLevel
	if opts.Level != "" {
		parsed, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, errors.WithHint(errors.Wrap(err, "logger: level"), "use one of debug, info, warn, error")
		}
		level = parsed
	}

	if opts.JSON {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		l, err := cfg.Build()
		if err != nil {
			return nil, errors.Wrap(err, "logger: build")
		}

		return l, nil
	}

	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""

	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(enc), out, level)), nil
}
