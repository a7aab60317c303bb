package notify

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Theme captures optional prefixes printed before each message.
type Theme struct {
	SuccessPrefix string
	ErrorPrefix   string
	InfoPrefix    string
}

// DefaultTheme is used when Console.Theme is zero.
var DefaultTheme = Theme{
	SuccessPrefix: "✔ ",
	ErrorPrefix:   "✖ ",
	InfoPrefix:    "ℹ ",
}

// Console writes notifications as single lines.
type Console struct {
	mu    sync.Mutex
	Out   io.Writer
	Theme Theme
}

var _ Notifier = (*Console)(nil)

// NewConsole returns a Console writing to out with the default theme.
func NewConsole(out io.Writer) *Console {
	return &Console{Out: out, Theme: DefaultTheme}
}

func (c *Console) Success(message string, _ ...Option) {
	c.write(c.Theme.SuccessPrefix, message)
}

func (c *Console) Error(message string, _ ...Option) {
	c.write(c.Theme.ErrorPrefix, message)
}

func (c *Console) Info(message string, _ ...Option) {
	c.write(c.Theme.InfoPrefix, message)
}

func (c *Console) write(prefix, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "%s%s\n", prefix, message)
}
