// Package logger builds the process logger: slog text records go to a rotating log file
// (or stderr) and the most recent lines are kept in memory for the console overlay.
package logger

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/topdown.log"

// MaxLines is how many recent lines the in-memory buffer keeps.
const MaxLines = 200

type Options struct {
	Path   string
	Level  slog.Level
	ToFile bool
}

// Logger is a slog.Logger whose output is also retained for on-screen display.
type Logger struct {
	*slog.Logger
	lines *lineBuffer
	file  io.Closer
}

// New returns a logger configured by opt. An empty Path means DefaultPath.
func New(opt Options) *Logger {
	buf := &lineBuffer{max: MaxLines}
	l := &Logger{lines: buf}
	var out io.Writer = os.Stderr
	if opt.ToFile {
		path := opt.Path
		if path == "" {
			path = DefaultPath
		}
		f := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
		out, l.file = f, f
	}
	h := slog.NewTextHandler(io.MultiWriter(out, buf), &slog.HandlerOptions{Level: opt.Level})
	l.Logger = slog.New(h)
	return l
}

// Print adds a console line to the buffer without logging it.
func (l *Logger) Print(line string) {
	l.lines.add(line)
}

// Lines returns a copy of the buffered lines, oldest first.
func (l *Logger) Lines() []string {
	return l.lines.snapshot()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

type lineBuffer struct {
	mu    sync.Mutex
	max   int
	lines []string
}

func (b *lineBuffer) Write(p []byte) (int, error) {
	for line := range bytes.Lines(p) {
		if s := strings.TrimRight(string(line), "\r\n"); s != "" {
			b.add(s)
		}
	}
	return len(p), nil
}

func (b *lineBuffer) add(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
	if n := len(b.lines) - b.max; n > 0 {
		b.lines = append(b.lines[:0], b.lines[n:]...)
	}
}

func (b *lineBuffer) snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}
