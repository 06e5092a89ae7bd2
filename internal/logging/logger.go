package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger shared by the loader, service and commands.
type Logger struct {
	*zap.SugaredLogger
}

// Config holds configuration for the logger
type Config struct {
	Level      string `json:"level" mapstructure:"level"`
	OutputPath string `json:"output" mapstructure:"output"`
	Encoding   string `json:"encoding" mapstructure:"encoding"`
	DevMode    bool   `json:"dev" mapstructure:"dev"`
}

// DefaultConfig logs warnings and errors to stderr. Reports go to stdout,
// so the two streams never interleave.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		OutputPath: "stderr",
		Encoding:   "console",
	}
}

func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zapConfig zap.Config
	if cfg.DevMode {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	zapConfig.Level = zap.NewAtomicLevelAt(level)
	if cfg.OutputPath != "" {
		zapConfig.OutputPaths = []string{cfg.OutputPath}
	}
	if cfg.Encoding != "" {
		zapConfig.Encoding = cfg.Encoding
	}

	zapLogger, err := zapConfig.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return &Logger{zapLogger.Sugar()}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// With returns a child logger carrying the given key-value pairs.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{l.SugaredLogger.With(args...)}
}
