// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger 根据 -v 的次数设置全局日志级别，日志只输出到 stderr。
func SetupLogger(verbosity int) {
	SetupLoggerTo(os.Stderr, verbosity)
}

// SetupLoggerTo 同 SetupLogger，但可以指定输出目标。
func SetupLoggerTo(out io.Writer, verbosity int) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger 返回带 component 字段的 logger。
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogCommand 在 debug 级别记录即将执行的外部命令。
func LogCommand(logger zerolog.Logger, cmd string, args []string) {
	logger.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}
