package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a JSON file logger with rotation. The TUI owns the
// terminal, so nothing is ever written to stdout or stderr.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		p, err := defaultLogPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename: path,
			MaxSize:  20, // MB
			MaxAge:   14, // days
			Compress: true,
		}),
		zap.InfoLevel,
	)

	return zap.New(core), nil
}

// defaultLogPath resolves $XDG_STATE_HOME/socratic/socratic.log,
// falling back to ~/.local/state.
func defaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "socratic", "socratic.log"), nil
}
