package event

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Log is a global logrus instance which is shared by all goremote packages.
// Embedding applications may reconfigure it before the first resolution.
var (
	Log *log.Logger
)

// Fields type, used to pass to `WithFields`. Forwarded from logrus library
type Fields = log.Fields

func init() {
	Log = &log.Logger{
		Out:          os.Stderr,
		Formatter:    &log.TextFormatter{DisableColors: false, FullTimestamp: true},
		Hooks:        make(log.LevelHooks),
		Level:        log.DebugLevel,
		ExitFunc:     os.Exit,
		ReportCaller: false,
	}
}

// ConfigureLogging sets the global log level. Debug logging includes the
// outcome of every settings resolution, so keep it off in production where
// base URLs may be sensitive.
func ConfigureLogging(debug bool) {
	Log.SetLevel(log.DebugLevel)
	if !debug {
		Log.SetLevel(log.InfoLevel)
	}
}
