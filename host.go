package tui

import (
	"errors"
	"fmt"
)

// ErrMissingCapability is the sentinel matched by errors.Is when a call
// reaches the bottom of a chain without any layer defining the member.
var ErrMissingCapability = errors.New("missing capability")

// MemberKind distinguishes the three chains a member name can live on.
type MemberKind int

const (
	// KindMethod is a method chain.
	KindMethod MemberKind = iota
	// KindGetter is the read half of an accessor.
	KindGetter
	// KindSetter is the write half of an accessor.
	KindSetter
)

// String returns a human-readable representation of the kind.
func (k MemberKind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindGetter:
		return "getter"
	case KindSetter:
		return "setter"
	default:
		return "unknown"
	}
}

// MissingCapabilityError reports a member no layer in a composed type defines.
// It is an integration bug (the wrong set of layers), not a runtime condition.
type MissingCapabilityError struct {
	Type   string
	Member string
	Kind   MemberKind
}

func (e *MissingCapabilityError) Error() string {
	return fmt.Sprintf("%s %q not defined by %s", e.Kind, e.Member, e.Type)
}

// Unwrap lets errors.Is match ErrMissingCapability.
func (e *MissingCapabilityError) Unwrap() error {
	return ErrMissingCapability
}

// Host is an instance of a composed type bound to one element. Layers keep
// their per-instance state on the host.
type Host struct {
	el       *Element
	typ      *Composed
	state    map[any]any
	attached bool
}

// New creates a host for el and runs the "created" lifecycle chain. A nil
// element gets a fresh one. An element can be bound to one host; binding it
// again rebinds it to the newest host.
func (c *Composed) New(el *Element) *Host {
	if el == nil {
		el = New()
	}
	h := &Host{
		el:    el,
		typ:   c,
		state: make(map[any]any),
	}
	el.host = h
	h.call(MethodCreated)
	return h
}

// Element returns the element this host is bound to.
func (h *Host) Element() *Element {
	return h.el
}

// Type returns the host's composed type.
func (h *Host) Type() *Composed {
	return h.typ
}

// Attach runs the "attached" lifecycle chain. Only the first call has an
// effect.
func (h *Host) Attach() {
	if h.attached {
		return
	}
	h.attached = true
	h.call(MethodAttached)
}

// Attached reports whether Attach has run.
func (h *Host) Attached() bool {
	return h.attached
}

// Has reports whether the composed type defines method name.
func (h *Host) Has(name string) bool {
	return h.typ.HasMethod(name)
}

// Call invokes method name. The error wraps ErrMissingCapability when no
// layer defines it.
func (h *Host) Call(name string, args ...any) (any, error) {
	v, ok := h.typ.invoke(h, name, args)
	if !ok {
		return nil, h.missing(name, KindMethod)
	}
	return v, nil
}

// MustCall is like Call but panics when no layer defines the method.
func (h *Host) MustCall(name string, args ...any) any {
	v, err := h.Call(name, args...)
	if err != nil {
		panic(err)
	}
	return v
}

// Get reads accessor name through the getter chain.
func (h *Host) Get(name string) (any, error) {
	v, ok := h.typ.read(h, name)
	if !ok {
		return nil, h.missing(name, KindGetter)
	}
	return v, nil
}

// MustGet is like Get but panics when no layer defines the getter.
func (h *Host) MustGet(name string) any {
	v, err := h.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// Set writes accessor name through the setter chain.
func (h *Host) Set(name string, value any) error {
	if !h.typ.write(h, name, value) {
		return h.missing(name, KindSetter)
	}
	return nil
}

// MustSet is like Set but panics when no layer defines the setter.
func (h *Host) MustSet(name string, value any) {
	if err := h.Set(name, value); err != nil {
		panic(err)
	}
}

func (h *Host) missing(name string, kind MemberKind) error {
	return &MissingCapabilityError{Type: h.typ.name, Member: name, Kind: kind}
}

// call invokes a method if any layer defines it. Layers use it for the hooks
// other layers may or may not provide.
func (h *Host) call(name string, args ...any) (any, bool) {
	return h.typ.invoke(h, name, args)
}

func (h *Host) get(name string) (any, bool) {
	return h.typ.read(h, name)
}

func (h *Host) set(name string, value any) bool {
	return h.typ.write(h, name, value)
}

// StateKey identifies one layer's per-host state of type T. Keys compare by
// identity, so each layer declares its own package-level key.
type StateKey[T any] struct {
	name string
}

// NewStateKey creates a state key. The name is for diagnostics only.
func NewStateKey[T any](name string) *StateKey[T] {
	return &StateKey[T]{name: name}
}

// String returns the key's diagnostic name.
func (k *StateKey[T]) String() string {
	return k.name
}

// LoadState returns h's state for key, allocating a zero T on first use.
func LoadState[T any](h *Host, key *StateKey[T]) *T {
	if v, ok := h.state[key]; ok {
		return v.(*T)
	}
	v := new(T)
	h.state[key] = v
	return v
}
