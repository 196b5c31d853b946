// Package progress reports export progress on a terminal or in CI logs.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives progress while pages are written. Step may be called
// from several goroutines.
type Reporter interface {
	Start(total int)
	Step(message string)
	Finish()
}

// NewReporter returns a CIReporter when the CI or GITHUB_ACTIONS variable
// is set and a TerminalReporter otherwise. Both write to w.
func NewReporter(w io.Writer, description string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w, description: description}
	}
	return &TerminalReporter{w: w, description: description}
}

// TerminalReporter displays a progress bar.
type TerminalReporter struct {
	w           io.Writer
	description string
	bar         *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(r.description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Step(message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per step.
type CIReporter struct {
	w           io.Writer
	description string

	mu      sync.Mutex
	total   int
	current int
}

func (r *CIReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total, r.current = total, 0
	fmt.Fprintf(r.w, "%s: %d files\n", r.description, total)
}

func (r *CIReporter) Step(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current++
	fmt.Fprintf(r.w, "[%d/%d] %s\n", r.current, r.total, message)
}

func (r *CIReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "%s: done\n", r.description)
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)   {}
func (Nop) Step(string) {}
func (Nop) Finish()     {}
