package logflags

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"responder/errs"
)

// DefaultLogDesc is the debug log destination used when none is given.
// Empty means stderr.
const DefaultLogDesc = ""

var (
	http   = false
	color  = false
	logOut io.Writer

	// logFile is the destination Setup opened, if any; stderr is never owned.
	logFile *os.File
)

// Logger is the part of *zap.SugaredLogger the responder uses.
type Logger interface {
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

// Setup configures the debug loggers. logFlag turns debug output on,
// logStr is a comma separated list of components and logDest is a file
// path; an empty logDest keeps output on stderr.
func Setup(logFlag bool, logStr, logDest string) error {
	http = false
	closeOut()

	if logDest != "" {
		f, err := os.OpenFile(logDest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return errors.Wrapf(err, "could not open log destination %s", logDest)
		}
		logFile = f
		logOut = f
		color = false
	} else {
		logOut = colorable.NewColorable(os.Stderr)
		color = isatty.IsTerminal(os.Stderr.Fd())
	}

	if !logFlag {
		return nil
	}

	if logStr == "" {
		logStr = "http"
	}

	for _, component := range strings.Split(logStr, ",") {
		switch strings.TrimSpace(component) {
		case "http":
			http = true
		default:
			return errors.Wrapf(errs.ErrUnknownLogComponent, "%q", component)
		}
	}

	return nil
}

// HTTP reports whether request and response dumps are enabled.
func HTTP() bool {
	return http
}

// closeOut releases a file opened by an earlier Setup.
func closeOut() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	logOut = nil
}

func out() io.Writer {
	if logOut == nil {
		return os.Stderr
	}
	return logOut
}
