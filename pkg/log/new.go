package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. It never fails: an unbuildable config falls
// back to zap's production defaults.
func Init(cfg ZapConfig) Logger {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Mode == ModeProduction {
		zapCfg = zap.NewProductionConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	switch cfg.Encoding {
	case EncodingJSON:
		zapCfg.Encoding = EncodingJSON
	case EncodingConsole:
		zapCfg.Encoding = EncodingConsole
	}

	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if zapCfg.Encoding == EncodingConsole && cfg.ColorEnabled {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger, _ = zap.NewProduction(zap.AddCallerSkip(1))
	}

	return &zapLogger{sugar: logger.Sugar()}
}

// NewWithZap wraps an existing zap logger.
func NewWithZap(logger *zap.Logger) Logger {
	return &zapLogger{sugar: logger.Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
