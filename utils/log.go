package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"

	golog "github.com/go-log/log"
)

var (
	loggers      = make(map[string]*Logger)
	loggersMutex sync.Mutex
	output       io.Writer = os.Stderr
	debug        int32
)

// Logger writes messages of a single subsystem. Debug messages are dropped
// unless SetDebug(true) was called.
type Logger struct {
	logger *log.Logger
}

// GetLogger returns the logger of the named subsystem, creating it if
// needed.
func GetLogger(name string) *Logger {
	loggersMutex.Lock()
	defer loggersMutex.Unlock()
	if _, ok := loggers[name]; !ok {
		loggers[name] = &Logger{
			logger: log.New(output, name+": ", log.LstdFlags),
		}
	}
	return loggers[name]
}

// SetDebug enables or disables debug messages of all loggers.
func SetDebug(enabled bool) {
	var v int32
	if enabled {
		v = 1
	}
	atomic.StoreInt32(&debug, v)
}

// SetOutput redirects all loggers to w.
func SetOutput(w io.Writer) {
	loggersMutex.Lock()
	defer loggersMutex.Unlock()
	output = w
	for _, l := range loggers {
		l.logger.SetOutput(w)
	}
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logger.Output(2, "error: "+fmt.Sprintf(format, v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if atomic.LoadInt32(&debug) == 0 {
		return
	}
	l.logger.Output(2, "debug: "+fmt.Sprintf(format, v...))
}

// Debug returns a go-log Logger which writes debug messages of this
// subsystem.
func (l *Logger) Debug() golog.Logger {
	return debugLogger{l}
}

type debugLogger struct {
	l *Logger
}

func (d debugLogger) Log(v ...interface{}) {
	if atomic.LoadInt32(&debug) == 0 {
		return
	}
	d.l.logger.Output(2, "debug: "+fmt.Sprint(v...))
}

func (d debugLogger) Logf(format string, v ...interface{}) {
	if atomic.LoadInt32(&debug) == 0 {
		return
	}
	d.l.logger.Output(2, "debug: "+fmt.Sprintf(format, v...))
}
