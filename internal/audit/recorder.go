// Package audit appends a human-readable line to a change log for every
// successful configuration mutation. Recording is best-effort: failures here
// are logged internally and never surfaced to the caller, since the audit
// trail is not on the critical path of correctness.
package audit

import (
	"os"
	"sync"
	"time"

	"github.com/valyala/fasttemplate"

	"github.com/devconf/devconf/internal/log"
	"github.com/devconf/devconf/internal/utils"
)

const lineTemplate = "Configuration changed - Path: {path}, Value: {value}, Time: {time}, Environment: {environment}\n"

// Recorder appends change records to a flat text log file.
type Recorder struct {
	logPath     string
	environment string
	tmpl        *fasttemplate.Template

	mu sync.Mutex
}

// NewRecorder creates a recorder writing to logPath, stamping each line with
// the given environment name.
func NewRecorder(logPath, environment string) *Recorder {
	return &Recorder{
		logPath:     logPath,
		environment: environment,
		tmpl:        fasttemplate.New(lineTemplate, "{", "}"),
	}
}

// Record appends one audit line for the given mutation. Any I/O error is
// swallowed after a warning.
func (r *Recorder) Record(path, value string) {
	line := r.tmpl.ExecuteString(map[string]interface{}{
		"path":        path,
		"value":       value,
		"time":        time.Now().UTC().Format(time.RFC3339),
		"environment": r.environment,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.OpenFile(r.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Warnf("Failed to open audit log %s: %v", r.logPath, err)
		return
	}
	defer utils.CloseOrWarn(file)

	if _, err := file.WriteString(line); err != nil {
		log.Warnf("Failed to append audit record: %v", err)
	}
}
