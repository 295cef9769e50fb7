package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))

// Notifier prints operation results. Success text goes to out, failure text
// to errOut. It is safe for concurrent use.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	quiet  bool
}

// NewNotifier creates a Notifier. A quiet notifier drops success text but
// still prints failures.
func NewNotifier(out, errOut io.Writer, quiet bool) *Notifier {
	return &Notifier{out: out, errOut: errOut, quiet: quiet}
}

// Notify prints the output of a successful operation.
func (n *Notifier) Notify(text string) {
	if n.quiet {
		return
	}
	n.print(n.out, "", text)
}

// Fail prints the failure text of an operation.
func (n *Notifier) Fail(text string) {
	n.print(n.errOut, failStyle.Render("error:")+" ", text)
}

func (n *Notifier) print(w io.Writer, prefix, text string) {
	text = strings.TrimRight(text, "\r\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(w, prefix+text)
}
