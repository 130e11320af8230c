package tui

import (
	"maps"
	"strings"

	"github.com/grindlemire/go-tui-behaviors/internal/debug"
)

// Next invokes the next-lower implementation of the member currently being
// called. It reports false when no lower layer defines the member, in which
// case nothing ran.
type Next func(args ...any) (any, bool)

// NextGet invokes the next-lower getter of the accessor being read.
type NextGet func() (any, bool)

// NextSet invokes the next-lower setter of the accessor being written.
type NextSet func(value any) bool

// MethodFunc implements a method in one layer. A layer that wants the
// behavior of the layers beneath it must call next itself.
type MethodFunc func(h *Host, next Next, args ...any) any

// GetterFunc implements the read half of an accessor in one layer.
type GetterFunc func(h *Host, next NextGet) any

// SetterFunc implements the write half of an accessor in one layer.
type SetterFunc func(h *Host, next NextSet, value any)

// Layer is a named unit of override logic. Build it with NewLayer and the
// chained definition methods, then hand it to Compose. Compose snapshots the
// layer, so later definitions on the same Layer do not affect composed types
// that already include it.
type Layer struct {
	name    string
	methods map[string]MethodFunc
	getters map[string]GetterFunc
	setters map[string]SetterFunc
}

// NewLayer creates an empty layer with a diagnostic name.
func NewLayer(name string) *Layer {
	return &Layer{
		name:    name,
		methods: make(map[string]MethodFunc),
		getters: make(map[string]GetterFunc),
		setters: make(map[string]SetterFunc),
	}
}

// Name returns the layer's diagnostic name.
func (l *Layer) Name() string {
	return l.name
}

// Method defines (or replaces) the layer's implementation of a method.
func (l *Layer) Method(name string, fn MethodFunc) *Layer {
	l.methods[name] = fn
	return l
}

// Getter defines the read half of an accessor. The write half, if any, is
// resolved independently.
func (l *Layer) Getter(name string, fn GetterFunc) *Layer {
	l.getters[name] = fn
	return l
}

// Setter defines the write half of an accessor. The read half, if any, is
// resolved independently.
func (l *Layer) Setter(name string, fn SetterFunc) *Layer {
	l.setters[name] = fn
	return l
}

// Accessor defines both halves of an accessor. Either may be nil.
func (l *Layer) Accessor(name string, get GetterFunc, set SetterFunc) *Layer {
	if get != nil {
		l.Getter(name, get)
	}
	if set != nil {
		l.Setter(name, set)
	}
	return l
}

// Defines reports whether the layer defines name as a method or either half
// of an accessor.
func (l *Layer) Defines(name string) bool {
	_, m := l.methods[name]
	_, g := l.getters[name]
	_, s := l.setters[name]
	return m || g || s
}

func (l *Layer) snapshot() *Layer {
	return &Layer{
		name:    l.name,
		methods: maps.Clone(l.methods),
		getters: maps.Clone(l.getters),
		setters: maps.Clone(l.setters),
	}
}

type methodLink struct {
	layer string
	fn    MethodFunc
}

type getterLink struct {
	layer string
	fn    GetterFunc
}

type setterLink struct {
	layer string
	fn    SetterFunc
}

// Composed is the result of chaining layers onto a base. It is immutable and
// can create any number of hosts.
type Composed struct {
	name    string
	layers  []*Layer // base first
	methods map[string][]methodLink
	getters map[string][]getterLink
	setters map[string][]setterLink
}

// Compose chains layers onto base, left to right: the last layer is the
// outermost, so its implementations run first. A nil base stands for an
// empty element base.
//
// No compatibility checks are made between layers; composing layers that
// disagree about a member is the caller's responsibility.
func Compose(base *Layer, layers ...*Layer) *Composed {
	if base == nil {
		base = NewLayer("Element")
	}
	all := make([]*Layer, 0, len(layers)+1)
	all = append(all, base.snapshot())
	for _, l := range layers {
		if l == nil {
			continue
		}
		all = append(all, l.snapshot())
	}
	return build(all)
}

// Extend composes further layers on top of c, returning a new composed type.
func (c *Composed) Extend(layers ...*Layer) *Composed {
	all := make([]*Layer, 0, len(c.layers)+len(layers))
	all = append(all, c.layers...)
	for _, l := range layers {
		if l == nil {
			continue
		}
		all = append(all, l.snapshot())
	}
	return build(all)
}

func build(layers []*Layer) *Composed {
	names := make([]string, len(layers))
	for i, l := range layers {
		names[i] = l.name
	}
	c := &Composed{
		name:    strings.Join(names, "+"),
		layers:  layers,
		methods: make(map[string][]methodLink),
		getters: make(map[string][]getterLink),
		setters: make(map[string][]setterLink),
	}
	// Walk outermost to base so each chain is ordered by call precedence.
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		for name, fn := range l.methods {
			c.methods[name] = append(c.methods[name], methodLink{layer: l.name, fn: fn})
		}
		for name, fn := range l.getters {
			c.getters[name] = append(c.getters[name], getterLink{layer: l.name, fn: fn})
		}
		for name, fn := range l.setters {
			c.setters[name] = append(c.setters[name], setterLink{layer: l.name, fn: fn})
		}
	}
	debug.Log("Compose: built %s (%d layers, %d methods, %d accessors)",
		c.name, len(layers), len(c.methods), len(c.getters)+len(c.setters))
	return c
}

// Name returns the composed type's diagnostic name: its layer names joined
// base first.
func (c *Composed) Name() string {
	return c.name
}

// Layers returns the layer names, base first.
func (c *Composed) Layers() []string {
	names := make([]string, len(c.layers))
	for i, l := range c.layers {
		names[i] = l.name
	}
	return names
}

// Trace returns the names of the layers defining method name, in the order
// they run when every layer calls through.
func (c *Composed) Trace(name string) []string {
	chain := c.methods[name]
	out := make([]string, len(chain))
	for i, link := range chain {
		out[i] = link.layer
	}
	return out
}

// HasMethod reports whether any layer defines method name.
func (c *Composed) HasMethod(name string) bool {
	return len(c.methods[name]) > 0
}

// HasGetter reports whether any layer defines a getter for name.
func (c *Composed) HasGetter(name string) bool {
	return len(c.getters[name]) > 0
}

// HasSetter reports whether any layer defines a setter for name.
func (c *Composed) HasSetter(name string) bool {
	return len(c.setters[name]) > 0
}

func (c *Composed) invoke(h *Host, name string, args []any) (any, bool) {
	chain := c.methods[name]
	if len(chain) == 0 {
		return nil, false
	}
	var step func(i int, args []any) any
	step = func(i int, args []any) any {
		next := func(a ...any) (any, bool) {
			if i+1 >= len(chain) {
				return nil, false
			}
			return step(i+1, a), true
		}
		return chain[i].fn(h, next, args...)
	}
	return step(0, args), true
}

func (c *Composed) read(h *Host, name string) (any, bool) {
	chain := c.getters[name]
	if len(chain) == 0 {
		return nil, false
	}
	var step func(i int) any
	step = func(i int) any {
		next := func() (any, bool) {
			if i+1 >= len(chain) {
				return nil, false
			}
			return step(i + 1), true
		}
		return chain[i].fn(h, next)
	}
	return step(0), true
}

func (c *Composed) write(h *Host, name string, value any) bool {
	chain := c.setters[name]
	if len(chain) == 0 {
		return false
	}
	var step func(i int, v any)
	step = func(i int, v any) {
		next := func(nv any) bool {
			if i+1 >= len(chain) {
				return false
			}
			step(i+1, nv)
			return true
		}
		chain[i].fn(h, next, v)
	}
	step(0, value)
	return true
}
