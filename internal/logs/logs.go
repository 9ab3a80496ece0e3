package logs

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New tworzy logger piszący JSON do pliku (append) i opcjonalnie czytelnie na stderr.
// stdout zostaje na podsumowanie przebiegu.
// debug: poziom debug + pole caller, inaczej info bez caller.
func New(logFilePath string, withConsole, debug bool) zerolog.Logger {
	_ = os.MkdirAll(filepath.Dir(logFilePath), 0o755)

	logFile, err := os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal().Err(err).Str("path", logFilePath).Msg("cannot open log file")
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	var writer io.Writer = logFile
	if withConsole {
		writer = zerolog.MultiLevelWriter(logFile, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		})
	}

	ctx := zerolog.New(writer).Level(level).With().Timestamp()
	if debug {
		ctx = ctx.Caller()
	}
	logger := ctx.Logger()

	// globalny logger dla miejsc bez wstrzykniętego loggera (np. log.Fatal przed New)
	log.Logger = logger

	return logger
}
