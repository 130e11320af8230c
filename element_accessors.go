package tui

import "slices"

// --- Attribute API ---

// Attribute returns the value of the named attribute and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// AttributeValue returns the named attribute's value, or "" if unset.
func (e *Element) AttributeValue(name string) string {
	v, _ := e.Attribute(name)
	return v
}

// HasAttribute reports whether the named attribute is set.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attribute(name)
	return ok
}

// SetAttribute sets the named attribute, preserving its original position if
// it already exists.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attribute{name: name, value: value})
}

// RemoveAttribute removes the named attribute. Removing an unset attribute is
// a no-op.
func (e *Element) RemoveAttribute(name string) {
	e.attrs = slices.DeleteFunc(e.attrs, func(a attribute) bool {
		return a.name == name
	})
}

// AttributeNames returns the names of all set attributes in insertion order.
func (e *Element) AttributeNames() []string {
	names := make([]string, len(e.attrs))
	for i, a := range e.attrs {
		names[i] = a.name
	}
	return names
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return e.AttributeValue("id")
}

// SetID sets the element's id attribute.
func (e *Element) SetID(id string) {
	e.SetAttribute("id", id)
}

// --- Class API ---

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// AddClass adds the class if it is not already present.
func (e *Element) AddClass(class string) {
	if class == "" || e.HasClass(class) {
		return
	}
	e.classes = append(e.classes, class)
}

// RemoveClass removes the class if present.
func (e *Element) RemoveClass(class string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return c == class
	})
}

// Classes returns the element's classes in the order they were added.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// ToggleClass adds class to el when present is true and removes it otherwise.
// Repeated calls with the same arguments leave the element unchanged.
func ToggleClass(el *Element, class string, present bool) {
	if el == nil {
		return
	}
	if present {
		el.AddClass(class)
	} else {
		el.RemoveClass(class)
	}
}

// --- Content API ---

// Text returns the text content.
func (e *Element) Text() string {
	return e.text
}

// SetText updates the text content.
func (e *Element) SetText(content string) {
	e.text = content
}

// Width returns the element's rendered width in terminal cells.
func (e *Element) Width() int {
	return e.width
}

// SetWidth records the element's rendered width in terminal cells. Hosts set
// this after layout so gesture layers can measure drags against it.
func (e *Element) SetWidth(cells int) {
	e.width = cells
}
