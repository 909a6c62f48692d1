// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	ruleWidth  = 60 // width of the separator line
	itemIndent = 2  // spaces to indent per-file details
)

// 🎯 FileOperation represents one file handled by a build
type FileOperation struct {
	Path      string // Path relative to the source root
	Processed bool   // Whether debug calls were stripped
	Removed   int    // Debug calls removed
	DebugCall string // Call token that was stripped, e.g. console.log
}

// 📦 BuildSummary is the final report of a build
type BuildSummary struct {
	FilesProcessed    int    // Files cleaned
	FilesCopied       int    // Files copied as-is
	StatementsRemoved int    // Debug calls removed in total
	Destination       string // Build root as configured
	AbsDestination    string // Absolute build root
	DebugCall         string // Call token that was stripped
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	errs    io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a logger printing progress to stdout and errors plus
// structured logs to stderr. Structured output is filtered by zerolog's
// global level.
func New(stdout, stderr io.Writer) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).With().Timestamp().Logger()
	l := NewWithZerolog(stdout, zlog)
	l.errs = stderr
	return l
}

// 🏭 NewWithZerolog creates a logger that mirrors console lines to zlog.
// Errors are printed to the console writer.
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		errs:    console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 Zerolog returns the structured logger behind the console
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// 📝 StartBuild prints the build header
func (l *Logger) StartBuild(ctx context.Context, destination string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "Creating production build in: %s\n", color.New(color.FgCyan).Sprint(destination))
	fmt.Fprintln(l.console, strings.Repeat("-", ruleWidth))

	l.zlog.Info().Str("destination", destination).Msg("starting production build")
}

// 📝 LogFileOperation logs a file handled by the build.
// Processed files get two console lines, copied files are only logged to zerolog.
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if op.Processed {
		fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgBlue).Sprint("Processing:"), op.Path)
		fmt.Fprintf(l.console, "%s- Removed %s %s statements\n",
			strings.Repeat(" ", itemIndent),
			color.New(color.FgGreen).Sprint(op.Removed),
			op.DebugCall)
	}

	l.zlog.Debug().
		Str("file", op.Path).
		Bool("processed", op.Processed).
		Int("removed", op.Removed).
		Msg("file operation")
}

// 📝 EndBuild prints the statistics block
func (l *Logger) EndBuild(ctx context.Context, s BuildSummary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, strings.Repeat("-", ruleWidth))
	fmt.Fprintf(l.console, "\n%s\n", color.New(color.FgGreen, color.Bold).Sprint("[SUCCESS] Production build complete!"))
	fmt.Fprintf(l.console, "\nStatistics:\n")

	table, err := pterm.DefaultTable.WithData(pterm.TableData{
		{"  - Files processed (cleaned):", strconv.Itoa(s.FilesProcessed)},
		{"  - Files copied (as-is):", strconv.Itoa(s.FilesCopied)},
		{fmt.Sprintf("  - %s statements removed:", upperFirst(s.DebugCall)), strconv.Itoa(s.StatementsRemoved)},
	}).WithSeparator(" ").Srender()
	if err != nil {
		// fall back to plain lines, the numbers matter more than the layout
		table = fmt.Sprintf("  - Files processed (cleaned): %d\n  - Files copied (as-is): %d\n  - %s statements removed: %d",
			s.FilesProcessed, s.FilesCopied, upperFirst(s.DebugCall), s.StatementsRemoved)
	}
	fmt.Fprintln(l.console, strings.TrimRight(table, "\n"))

	fmt.Fprintf(l.console, "\nProduction build location: %s\n", color.New(color.FgCyan).Sprint(s.AbsDestination))
	fmt.Fprintf(l.console, "\nReady to zip: %s\n", s.Destination)

	l.zlog.Info().
		Int("files_processed", s.FilesProcessed).
		Int("files_copied", s.FilesCopied).
		Int("statements_removed", s.StatementsRemoved).
		Str("destination", s.AbsDestination).
		Msg("production build complete")
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// 📝 Error prints an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errs, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Debug().Msg(msg)
}
