// Package output provides structured terminal output and level rendering
// for the lexpr CLI.
package output

import (
	"fmt"
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Splog provides structured logging and output
type Splog struct {
	writer  io.Writer
	verbose bool
	debug   io.Writer
}

// NewSplog creates a new splog instance writing to w
func NewSplog(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// SetVerbose enables debug output on the main writer
func (s *Splog) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// EnableDebugFile tees debug messages to a rotating log file
func (s *Splog) EnableDebugFile(path string) {
	s.debug = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
	}
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Page writes raw output
func (s *Splog) Page(content string) {
	fmt.Fprint(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "⚠️  "+format+"\n", args...)
}

// Debug writes a debug message. Shown on the main writer only in
// verbose mode; always written to the debug file when one is enabled.
func (s *Splog) Debug(format string, args ...interface{}) {
	if s.verbose {
		fmt.Fprintf(s.writer, format+"\n", args...)
	}
	if s.debug != nil {
		fmt.Fprintf(s.debug, format+"\n", args...)
	}
}
