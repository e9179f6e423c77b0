package animation

// Mixer owns the actions of one model instance.
type Mixer struct {
	actions map[*Clip]*Action
	order   []*Action
}

func NewMixer() *Mixer {
	return &Mixer{actions: make(map[*Clip]*Action)}
}

// ClipAction returns the cached action for a clip, creating it on first use.
func (m *Mixer) ClipAction(c *Clip) *Action {
	if a, ok := m.actions[c]; ok {
		return a
	}
	a := newAction(c)
	m.actions[c] = a
	m.order = append(m.order, a)
	return a
}

// Update advances every action by dt seconds.
func (m *Mixer) Update(dt float64) {
	for _, a := range m.order {
		a.update(dt)
	}
}

// Actions returns the actions in creation order.
func (m *Mixer) Actions() []*Action {
	return m.order
}
