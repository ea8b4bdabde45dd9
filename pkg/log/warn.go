package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/datasplit/pkg/errors"
)

// EnableZerologWarnings routes library warnings raised through
// errors.Warn into a zerolog console logger on stderr. Warning types
// implementing zerolog.LogObjectMarshaler keep their structured
// fields.
func EnableZerologWarnings() {
	EnableZerologWarningsWithWriter(zerolog.ConsoleWriter{Out: os.Stderr})
}

// EnableZerologWarningsWithWriter is EnableZerologWarnings with an
// explicit destination, mainly for tests.
func EnableZerologWarningsWithWriter(w io.Writer) {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(obj)
		}
		ev.Msg(warning.Error())
	})
}
