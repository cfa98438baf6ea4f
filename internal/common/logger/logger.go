package logger

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger emits one JSON object per line. Every entry carries the service
// name and an action tag so log pipelines can filter without parsing the
// message text.
type Logger struct {
	service string
	out     io.Writer
	mu      *sync.Mutex
}

func New(service string) *Logger {
	return &Logger{service: service, out: os.Stdout, mu: &sync.Mutex{}}
}

// NewWithWriter is used by tests to capture output.
func NewWithWriter(service string, w io.Writer) *Logger {
	return &Logger{service: service, out: w, mu: &sync.Mutex{}}
}

func (l *Logger) log(level, action string, fields map[string]any, err error) {
	entry := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level,
		"service":   l.service,
		"action":    action,
		"hostname":  hostname(),
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = err.Error()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *Logger) Info(action string, fields map[string]any)  { l.log("INFO", action, fields, nil) }
func (l *Logger) Debug(action string, fields map[string]any) { l.log("DEBUG", action, fields, nil) }
func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log("ERROR", action, fields, err)
}

func hostname() string { h, _ := os.Hostname(); return h }
