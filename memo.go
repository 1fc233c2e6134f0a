package pkgerrors

import "sync/atomic"

// DescriptionState tells how an error's description was obtained.
type DescriptionState uint8

const (
	// Unformatted means the description has not been computed yet.
	Unformatted DescriptionState = iota
	// Formatted means the description is the (localized) template,
	// filled by the formatter when there is one.
	Formatted
	// Fallback means formatting or localization failed and the
	// description is the raw template or a fixed default text.
	Fallback
)

func (s DescriptionState) String() string {
	switch s {
	case Unformatted:
		return "unformatted"
	case Formatted:
		return "formatted"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

type description struct {
	text  string
	state DescriptionState
}

// memo caches a computed description. Concurrent first calls may both
// run compute; the last store wins and both results are equal.
type memo struct {
	p atomic.Pointer[description]
}

func (m *memo) get(compute func() description) description {
	if d := m.p.Load(); d != nil {
		return *d
	}
	d := compute()
	m.p.Store(&d)
	return d
}

func (m *memo) state() DescriptionState {
	if d := m.p.Load(); d != nil {
		return d.state
	}
	return Unformatted
}

// copyFrom carries over an already computed description.
func (m *memo) copyFrom(o *memo) {
	if d := o.p.Load(); d != nil {
		m.p.Store(d)
	}
}
