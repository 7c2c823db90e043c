package profile

import (
	"html/template"
	"slices"
	"strings"
	"sync"
)

// Presentation receives the styling side channel of a profile change.
type Presentation interface {
	SetProperty(name, value string)
	SetAttribute(name, value string)
}

// Side-channel names written on every apply.
const (
	PropAnimationDuration = "--layout-animation-duration"
	PropAnimationEasing   = "--layout-animation-easing"
	PropStaggerDelay      = "--layout-stagger-delay"

	AttrLayout        = "data-layout"
	AttrNavPosition   = "data-nav-position"
	AttrContentFlow   = "data-content-flow"
	AttrLayoutWrapper = "data-layout-wrapper"
)

// Attributes collects CSS properties and element attributes for the root
// element. The zero value is ready to use and safe for concurrent use.
type Attributes struct {
	mu    sync.RWMutex
	props map[string]string
	attrs map[string]string
}

// NewAttributes returns an empty collector.
func NewAttributes() *Attributes {
	return &Attributes{}
}

// SetProperty records a CSS custom property, replacing any previous value.
func (a *Attributes) SetProperty(name, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.props == nil {
		a.props = make(map[string]string)
	}
	a.props[name] = value
}

// SetAttribute records an element attribute, replacing any previous value.
func (a *Attributes) SetAttribute(name, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.attrs == nil {
		a.attrs = make(map[string]string)
	}
	a.attrs[name] = value
}

// Property returns a recorded CSS property.
func (a *Attributes) Property(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.props[name]
	return v, ok
}

// Attribute returns a recorded attribute.
func (a *Attributes) Attribute(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.attrs[name]
	return v, ok
}

// Style renders the properties as an inline style declaration, sorted by
// name so output is stable.
func (a *Attributes) Style() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	names := sortedKeys(a.props)
	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n)
		b.WriteString(": ")
		b.WriteString(a.props[n])
		b.WriteByte(';')
	}
	return b.String()
}

// HTMLAttrs renders every attribute plus the style declaration for
// inclusion in an opening tag. Values are HTML-escaped.
func (a *Attributes) HTMLAttrs() template.HTMLAttr {
	style := a.Style()

	a.mu.RLock()
	defer a.mu.RUnlock()
	var b strings.Builder
	for _, n := range sortedKeys(a.attrs) {
		b.WriteByte(' ')
		b.WriteString(template.HTMLEscapeString(n))
		b.WriteString(`="`)
		b.WriteString(template.HTMLEscapeString(a.attrs[n]))
		b.WriteByte('"')
	}
	if style != "" {
		b.WriteString(` style="`)
		b.WriteString(template.HTMLEscapeString(style))
		b.WriteByte('"')
	}
	return template.HTMLAttr(b.String())
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

var _ Presentation = (*Attributes)(nil)
