package tui

import "slices"

// AddChild appends children to this Element.
// Notifies the bound host that its content changed.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		e.adopt(child, len(e.children))
	}
	e.notifyContentChanged()
}

// InsertChild inserts child at index, clamped to the valid range.
func (e *Element) InsertChild(index int, child *Element) {
	index = max(0, min(index, len(e.children)))
	e.adopt(child, index)
	e.notifyContentChanged()
}

// adopt moves child under e at index without notifying anyone. A child that
// already has a parent is detached from it first.
func (e *Element) adopt(child *Element, index int) {
	if child == nil || child == e {
		return
	}
	if old := child.parent; old != nil {
		old.detach(child)
		if old != e {
			old.notifyContentChanged()
		}
		index = min(index, len(e.children))
	}
	child.parent = e
	e.children = slices.Insert(e.children, index, child)
}

func (e *Element) detach(child *Element) bool {
	i := slices.Index(e.children, child)
	if i < 0 {
		return false
	}
	e.children = slices.Delete(e.children, i, i+1)
	child.parent = nil
	return true
}

// RemoveChild removes a child from this Element, preserving the order of the
// remaining children. Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	if !e.detach(child) {
		return false
	}
	e.notifyContentChanged()
	return true
}

// RemoveAllChildren removes all children from this Element.
func (e *Element) RemoveAllChildren() {
	if len(e.children) == 0 {
		return
	}
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
	e.notifyContentChanged()
}

// Children returns a copy of the child elements.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int {
	return len(e.children)
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// notifyContentChanged lets the bound host react to a change in children.
func (e *Element) notifyContentChanged() {
	if e.host != nil {
		e.host.call(MethodContentChanged)
	}
}
