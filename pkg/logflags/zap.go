package logflags

import (
	"io"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ISO8601Millis matches the layout of JavaScript's Date.toISOString.
const ISO8601Millis = "2006-01-02T15:04:05.000Z"

func HTTPLogger() Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:      "timestamp",
		LevelKey:     "level",
		MessageKey:   "message",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
	if color {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := zapcore.ErrorLevel
	if http {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(zapcore.AddSync(out())),
		level,
	)

	return zap.New(core, zap.AddCaller()).Sugar()
}

// AccessLogger writes one bare "<timestamp> <message>" line per call to w.
// It is always on and independent of Setup.
func AccessLogger(w io.Writer, clock clockwork.Clock) Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "timestamp",
		MessageKey:       "message",
		EncodeTime:       utcMillisTimeEncoder,
		ConsoleSeparator: " ",
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.InfoLevel,
	)

	return zap.New(core, zap.WithClock(zapClock{clock: clock})).Sugar()
}

func utcMillisTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(ISO8601Millis))
}

type zapClock struct {
	clock clockwork.Clock
}

func (c zapClock) Now() time.Time {
	return c.clock.Now()
}

func (c zapClock) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}
