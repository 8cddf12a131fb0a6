// internal/cmdutil/log.go
package cmdutil

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LogOptions configures NewLogger.
type LogOptions struct {
	Level  string // logrus level name
	Format string // text | json
	File   string // optional file that receives a copy of every entry
	Quiet  bool   // only errors on stderr
}

// NewLogger builds the run logger writing to dst (and File, if set). The
// returned closer releases the log file; it is a no-op otherwise.
func NewLogger(dst io.Writer, o LogOptions) (*logrus.Logger, func() error, error) {
	log := logrus.New()
	noop := func() error { return nil }

	lvl := logrus.InfoLevel
	if o.Level != "" {
		l, err := logrus.ParseLevel(o.Level)
		if err != nil {
			return nil, noop, errors.Wrap(err, "log level")
		}
		lvl = l
	}
	if o.Quiet && lvl > logrus.ErrorLevel {
		lvl = logrus.ErrorLevel
	}
	log.SetLevel(lvl)

	switch o.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	log.SetOutput(dst)
	if o.File == "" {
		return log, noop, nil
	}
	fh, err := os.OpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, errors.Wrap(err, "open log file")
	}
	log.SetOutput(io.MultiWriter(dst, fh))
	return log, fh.Close, nil
}
