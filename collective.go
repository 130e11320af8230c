package tui

import (
	"slices"
	"sync/atomic"

	"github.com/grindlemire/go-tui-behaviors/internal/debug"
)

// outermostStamp orders explicit outermost assignments across collectives so
// that the most recent one survives a merge.
var outermostStamp atomic.Uint64

// Collective is a set of elements acting as one logical control for keyboard
// focus and accessibility. Every member points at the same Collective, so
// membership is symmetric.
//
// Merging never leaves two live aggregates: the absorbed collective is
// emptied and forwards to the one that absorbed it, and every member is
// rebound to the survivor.
type Collective struct {
	elements []*Element

	// explicit is the outermost element set by AssignOutermost, if any.
	explicit      *Element
	explicitStamp uint64

	// merged is set once this collective has been absorbed into another.
	merged *Collective
}

// NewCollective creates a collective and assimilates the given elements,
// merging any collectives they already belong to.
func NewCollective(elements ...*Element) *Collective {
	c := &Collective{}
	for _, el := range elements {
		c.Assimilate(el)
	}
	return c
}

// CollectiveOf returns el's collective, creating a singleton collective for
// it first if it has none.
func CollectiveOf(el *Element) *Collective {
	if c := el.Collective(); c != nil {
		return c
	}
	c := &Collective{elements: []*Element{el}}
	el.collective = c
	return c
}

// canonical follows merge forwarding to the live collective.
func (c *Collective) canonical() *Collective {
	for c.merged != nil {
		c = c.merged
	}
	return c
}

// Assimilate merges el, along with every element it is already grouped with,
// into this collective. Assimilating a member again is a no-op. Returns true
// if membership changed, after every member has been told through its host's
// collectiveChanged hook.
func (c *Collective) Assimilate(el *Element) bool {
	if el == nil {
		return false
	}
	return c.AssimilateCollective(CollectiveOf(el))
}

// AssimilateCollective merges other into this collective.
func (c *Collective) AssimilateCollective(other *Collective) bool {
	if other == nil {
		return false
	}
	c = c.canonical()
	other = other.canonical()
	if c == other {
		return false
	}

	added := 0
	for _, el := range other.elements {
		el.collective = c
		if !slices.Contains(c.elements, el) {
			c.elements = append(c.elements, el)
			added++
		}
	}
	if other.explicitStamp > c.explicitStamp {
		c.explicit = other.explicit
		c.explicitStamp = other.explicitStamp
	}
	other.elements = nil
	other.explicit = nil
	other.merged = c

	debug.Log("Collective.Assimilate: merged %d elements (total=%d, outermost=%s)",
		added, len(c.elements), c.OutermostElement())
	c.InvokeMethod(MethodCollectiveChanged)
	return true
}

// AssignOutermost explicitly designates el as the outermost element, joining
// it to the collective first if needed. When two collectives with explicit
// designations merge, the most recent designation wins.
func (c *Collective) AssignOutermost(el *Element) {
	if el == nil {
		return
	}
	c = c.canonical()
	c.Assimilate(el)
	c.canonical().designate(el)
	debug.Log("Collective.AssignOutermost: %s", el)
	c.InvokeMethod(MethodCollectiveChanged)
}

// designate records el as the explicit outermost without notifying members.
// el must already be a member, or be about to become one.
func (c *Collective) designate(el *Element) {
	c = c.canonical()
	c.explicit = el
	c.explicitStamp = outermostStamp.Add(1)
}

// Elements returns the members in discovery order.
func (c *Collective) Elements() []*Element {
	return slices.Clone(c.canonical().elements)
}

// Len returns the number of members.
func (c *Collective) Len() int {
	return len(c.canonical().elements)
}

// Contains reports whether el is a member.
func (c *Collective) Contains(el *Element) bool {
	return slices.Contains(c.canonical().elements, el)
}

// OutermostElement returns the member treated as the external keyboard and
// accessibility boundary: the explicitly assigned element if there is one,
// otherwise the member created first. Returns nil for an empty collective.
func (c *Collective) OutermostElement() *Element {
	c = c.canonical()
	if c.explicit != nil && slices.Contains(c.elements, c.explicit) {
		return c.explicit
	}
	var outer *Element
	for _, el := range c.elements {
		if outer == nil || el.serial < outer.serial {
			outer = el
		}
	}
	return outer
}

// InvokeMethod calls method name on the host of every member that has one,
// outermost first and then in discovery order. Members without a host, or
// whose host does not define the method, are skipped.
func (c *Collective) InvokeMethod(name string, args ...any) {
	c = c.canonical()
	outer := c.OutermostElement()
	members := make([]*Element, 0, len(c.elements))
	if outer != nil {
		members = append(members, outer)
	}
	for _, el := range c.elements {
		if el != outer {
			members = append(members, el)
		}
	}
	for _, el := range members {
		if el.host != nil {
			el.host.call(name, args...)
		}
	}
}
