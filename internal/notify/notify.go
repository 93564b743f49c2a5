// Package notify surfaces transient user-facing messages. The API client
// reports failures through a Notifier the way the dashboard surfaced
// toasts; consumers pick an implementation suited to their front end.
package notify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Notifier receives one call per user-visible message.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Console writes colorized one-line notifications, for interactive use.
type Console struct {
	out io.Writer
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, color.GreenString("✔ %s", msg))
}

func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, color.RedString("✘ %s", msg))
}

func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, color.CyanString("ℹ %s", msg))
}

// Logger routes notifications to a structured logger, for headless use.
type Logger struct {
	log *zap.Logger
}

// NewLogger returns a Logger notifier backed by log.
func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Success(msg string) { l.log.Info(msg, zap.String("notice", "success")) }
func (l *Logger) Error(msg string)   { l.log.Warn(msg, zap.String("notice", "error")) }
func (l *Logger) Info(msg string)    { l.log.Info(msg, zap.String("notice", "info")) }

// Nop discards all notifications.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Error(string)   {}
func (Nop) Info(string)    {}
