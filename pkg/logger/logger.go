package logger

import (
	stdLog "log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	// Sink is a file path; stdout when empty.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger writes JSON to cfg.Sink. A sink that cannot be opened is reported and stdout is used.
func NewLogger(cfg Log, name string) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	ws, sinkErr := openSink(cfg.Sink)
	if sinkErr != nil {
		stdLog.Println("logger: falling back to stdout ", sinkErr)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zap.NewAtomicLevelAt(cfg.LogLevel))
	log := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).Named(name)
	if sinkErr != nil {
		log.Warn("log sink unavailable", zap.String("sink", cfg.Sink), zap.Error(sinkErr))
	}
	return log
}

// openSink always returns a usable syncer: stdout when path is empty or cannot be opened.
func openSink(path string) (zapcore.WriteSyncer, error) {
	stdout := zapcore.Lock(os.Stdout)
	if path == "" {
		return stdout, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return stdout, errors.Wrapf(err, "open log sink %s", path)
	}
	return zapcore.AddSync(f), nil
}
