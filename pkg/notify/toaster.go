package notify

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formflow/pkg/dom"
	"github.com/goliatone/go-formflow/pkg/dom/htmldoc"
)

const (
	// ContainerID is the id of the element toasts are appended to.
	ContainerID    = "toast-container"
	containerClass = "fixed top-5 right-5 z-50 flex flex-col gap-2"
	toastClass     = "flex items-center w-full max-w-xs p-4 text-gray-500 bg-white rounded-lg shadow border border-gray-100"
)

var levelColors = map[Level]string{
	LevelSuccess: "text-green-500 bg-green-100",
	LevelError:   "text-red-500 bg-red-100",
	LevelWarning: "text-orange-500 bg-orange-100",
	LevelInfo:    "text-blue-500 bg-blue-100",
}

var (
	messagePolicyOnce sync.Once
	messagePolicy     *bluemonday.Policy
)

// Toaster renders toasts into an htmldoc document. Messages are treated as
// untrusted text: all markup is stripped before insertion.
//
// When a toast cannot be rendered the message goes to Fallback, or to the
// default Alert when Fallback is nil.
type Toaster struct {
	doc      *htmldoc.Document
	duration time.Duration

	Fallback Notifier
}

var _ Notifier = (*Toaster)(nil)

// NewToaster binds a toaster to doc. A non-positive duration selects
// DefaultDuration.
func NewToaster(doc *htmldoc.Document, duration time.Duration) *Toaster {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Toaster{doc: doc, duration: duration}
}

func (t *Toaster) Success(message string, opts ...Option) {
	t.notify(LevelSuccess, message, opts...)
}

func (t *Toaster) Error(message string, opts ...Option) {
	t.notify(LevelError, message, opts...)
}

func (t *Toaster) Info(message string, opts ...Option) {
	t.notify(LevelInfo, message, opts...)
}

// Warning shows a warning toast. It is not part of the bridge contract.
func (t *Toaster) Warning(message string, opts ...Option) {
	t.notify(LevelWarning, message, opts...)
}

func (t *Toaster) notify(level Level, message string, opts ...Option) {
	if _, err := t.Show(level, message, opts...); err == nil {
		return
	}
	var fallback Notifier = Alert{}
	if t != nil && t.Fallback != nil {
		fallback = t.Fallback
	}
	Send(fallback, level, message, opts...)
}

// Show appends a toast and returns its element. The dismissal delay is
// exposed as data-dismiss-after (milliseconds, 0 = sticky) for the page
// runtime to honour.
func (t *Toaster) Show(level Level, message string, opts ...Option) (dom.Element, error) {
	if t == nil || t.doc == nil {
		return nil, fmt.Errorf("notify: toaster has no document")
	}
	resolved := Resolve(t.duration, opts...)
	if _, err := t.doc.EnsureContainer(ContainerID, containerClass); err != nil {
		return nil, err
	}

	colors, ok := levelColors[level]
	if !ok {
		level = LevelInfo
		colors = levelColors[LevelInfo]
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="toast %s" role="alert" data-level="%s" data-dismiss-after="%d">`,
		toastClass, level, resolved.Duration.Milliseconds())
	fmt.Fprintf(&b, `<div class="inline-flex items-center justify-center flex-shrink-0 w-8 h-8 %s rounded-lg"></div>`, colors)
	fmt.Fprintf(&b, `<div class="ms-3 text-sm font-normal">%s</div>`, sanitizeMessage(message))
	b.WriteString(`<button type="button" class="toast-close ms-auto" aria-label="Close"></button>`)
	b.WriteString(`</div>`)

	return t.doc.Append(ContainerID, b.String())
}

func sanitizeMessage(raw string) string {
	messagePolicyOnce.Do(func() {
		messagePolicy = bluemonday.StrictPolicy()
	})
	return messagePolicy.Sanitize(raw)
}
