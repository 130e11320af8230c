package tui

type targetState struct {
	target *Element
}

var targetKey = NewStateKey[targetState]("TargetInCollective")

// TargetInCollective returns a layer that places the host in a collective at
// creation and assimilates whatever element is assigned to its target
// accessor. The host stays the outermost element of the merged collective
// regardless of which element was created first. Use it when a component
// delegates keyboard handling or accessibility reporting to another element.
func TargetInCollective() *Layer {
	return NewLayer("TargetInCollective").
		Method(MethodCreated, func(h *Host, next Next, args ...any) any {
			next(args...)
			c := CollectiveOf(h.Element())
			c.InvokeMethod(MethodCollectiveChanged)
			return nil
		}).
		Accessor(PropTarget,
			func(h *Host, next NextGet) any {
				if v, ok := next(); ok {
					return v
				}
				return LoadState(h, targetKey).target
			},
			func(h *Host, next NextSet, value any) {
				next(value)
				target := asElement(value)
				LoadState(h, targetKey).target = target
				if target == nil {
					return
				}
				el := h.Element()
				c := CollectiveOf(el)
				before := c.OutermostElement()
				c.designate(el)
				if !c.Assimilate(target) && before != el {
					c.InvokeMethod(MethodCollectiveChanged)
				}
			},
		)
}
