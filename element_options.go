package tui

// Option configures an Element.
type Option func(*Element)

// WithTag sets the element's tag name.
func WithTag(tag string) Option {
	return func(e *Element) {
		e.tag = tag
	}
}

// WithID sets the element's id attribute.
func WithID(id string) Option {
	return func(e *Element) {
		e.SetID(id)
	}
}

// WithAttribute sets an attribute.
func WithAttribute(name, value string) Option {
	return func(e *Element) {
		e.SetAttribute(name, value)
	}
}

// WithRole sets the element's role attribute.
func WithRole(role string) Option {
	return WithAttribute("role", role)
}

// WithLabel sets the element's aria-label attribute. Tab strips use it as the
// tab caption for a panel.
func WithLabel(label string) Option {
	return WithAttribute("aria-label", label)
}

// WithClass adds classes to the element.
func WithClass(classes ...string) Option {
	return func(e *Element) {
		for _, c := range classes {
			e.AddClass(c)
		}
	}
}

// WithText sets the text content.
func WithText(content string) Option {
	return func(e *Element) {
		e.text = content
	}
}

// WithWidth sets the rendered width in terminal cells.
func WithWidth(cells int) Option {
	return func(e *Element) {
		e.width = cells
	}
}

// WithChildren appends children. It runs before any host is bound, so no
// content notification is sent.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		for _, child := range children {
			e.adopt(child, len(e.children))
		}
	}
}
