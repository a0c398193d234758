// Package logging builds the zap logger used by the CLI from a verbosity
// setting.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w. quiet logs nothing, info logs
// warnings and above, debug logs everything.
func New(verbosity string, w io.Writer) (*zap.Logger, error) {
	var level zapcore.Level
	switch verbosity {
	case "quiet":
		return zap.NewNop(), nil
	case "info", "":
		level = zapcore.WarnLevel
	case "debug":
		level = zapcore.DebugLevel
	default:
		return nil, fmt.Errorf("invalid verbosity %q: expected quiet, info or debug", verbosity)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core), nil
}
