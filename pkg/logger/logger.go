package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	JSON   bool   `yaml:"json,omitempty"`
	Level  string `yaml:"level,omitempty"`
	Sample bool   `yaml:"sample,omitempty"`
	// pion/webrtc, pion/ice
	PionLevel string `yaml:"pion_level,omitempty"`
}

// Logger is the structured logger used across the server. Key/value pairs follow the message.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, err error, keysAndValues ...interface{})
	Errorw(msg string, err error, keysAndValues ...interface{})
	WithValues(keysAndValues ...interface{}) Logger
	WithName(name string) Logger
}

var (
	mu            sync.RWMutex
	defaultLogger Logger = NewZapLogger(zap.NewNop())
	pionLevel            = zapcore.WarnLevel
)

func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func SetLogger(l Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

// InitFromConfig builds a zap logger from conf and installs it as the default logger.
// valid levels: debug, info, warn, error
func InitFromConfig(conf Config, name string) {
	var zc zap.Config
	if conf.JSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if !conf.Sample {
		zc.Sampling = nil
	}
	zc.Level = zap.NewAtomicLevelAt(parseLevel(conf.Level, zapcore.InfoLevel))

	l, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		return
	}

	mu.Lock()
	pionLevel = parseLevel(conf.PionLevel, zapcore.WarnLevel)
	defaultLogger = NewZapLogger(l).WithName(name)
	mu.Unlock()
}

func parseLevel(level string, fallback zapcore.Level) zapcore.Level {
	if level == "" {
		return fallback
	}
	lvl := zapcore.Level(0)
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fallback
	}
	return lvl
}

type zapLogger struct {
	zap *zap.SugaredLogger
}

func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{zap: l.Sugar()}
}

func (l *zapLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.zap.Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.zap.Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warnw(msg string, err error, keysAndValues ...interface{}) {
	if err != nil {
		keysAndValues = append(keysAndValues, "error", err)
	}
	l.zap.Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Errorw(msg string, err error, keysAndValues ...interface{}) {
	if err != nil {
		keysAndValues = append(keysAndValues, "error", err)
	}
	l.zap.Errorw(msg, keysAndValues...)
}

func (l *zapLogger) WithValues(keysAndValues ...interface{}) Logger {
	return &zapLogger{zap: l.zap.With(keysAndValues...)}
}

func (l *zapLogger) WithName(name string) Logger {
	if name == "" {
		return l
	}
	return &zapLogger{zap: l.zap.Named(name)}
}

func Debugw(msg string, keysAndValues ...interface{}) {
	GetLogger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	GetLogger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, err error, keysAndValues ...interface{}) {
	GetLogger().Warnw(msg, err, keysAndValues...)
}

func Errorw(msg string, err error, keysAndValues ...interface{}) {
	GetLogger().Errorw(msg, err, keysAndValues...)
}
