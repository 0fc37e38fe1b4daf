package cmd

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/go-drift/hoisting/pkg/errors"
)

// setupLogging routes framework diagnostics through logrus.
func setupLogging(verbose bool) {
	if dbg, err := strconv.ParseBool(os.Getenv("HOIST_DEBUG")); err == nil && dbg {
		verbose = true
	}
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	errors.SetHandler(&logHandler{logger: log.StandardLogger()})
}

// logHandler is an errors.ErrorHandler that writes structured entries.
type logHandler struct {
	logger *log.Logger
}

func (h *logHandler) HandleError(err *errors.HoistError) {
	entry := h.logger.WithError(err.Err).WithFields(log.Fields{
		"op":   err.Op,
		"kind": err.Kind.String(),
	})
	if err.Key != "" {
		entry = entry.WithField("key", err.Key)
	}
	if err.StackTrace != "" && h.logger.IsLevelEnabled(log.DebugLevel) {
		entry = entry.WithField("stack", err.StackTrace)
	}
	entry.Error("hoist error")
}

func (h *logHandler) HandlePanic(err *errors.PanicError) {
	entry := h.logger.WithFields(log.Fields{
		"op":    err.Op,
		"value": fmt.Sprint(err.Value),
	})
	if h.logger.IsLevelEnabled(log.DebugLevel) {
		entry = entry.WithField("stack", err.StackTrace)
	}
	entry.Error("panic recovered")
}

func (h *logHandler) HandleBuildError(err *errors.BuildError) {
	entry := h.logger.WithError(err).WithField("widget", err.Widget)
	if h.logger.IsLevelEnabled(log.DebugLevel) && err.StackTrace != "" {
		entry = entry.WithField("stack", err.StackTrace)
	}
	entry.Error("build failed")
}
