package wizard

// Machine is the wizard's navigation state. The zero value is not usable;
// construct with NewMachine.
type Machine struct {
	router  *Router
	current int
	order   []int
}

// NewMachine starts at the router's first step.
func NewMachine(router *Router) *Machine {
	if router == nil {
		router = NewRouter()
	}
	m := &Machine{router: router}
	for _, s := range router.steps {
		m.order = append(m.order, s.ID)
	}
	m.current = m.order[0]
	return m
}

// Current returns the active step id.
func (m *Machine) Current() int { return m.current }

// CurrentStep returns the active step definition.
func (m *Machine) CurrentStep() Step {
	s, _ := m.router.Step(m.current)
	return s
}

// Router returns the router backing the machine.
func (m *Machine) Router() *Router { return m.router }

func (m *Machine) position() int {
	for i, id := range m.order {
		if id == m.current {
			return i
		}
	}
	return 0
}

// Next advances one step. It reports false on the last step.
func (m *Machine) Next() bool {
	pos := m.position()
	if pos >= len(m.order)-1 {
		return false
	}
	m.current = m.order[pos+1]
	return true
}

// Previous goes back one step. It reports false on the first step.
func (m *Machine) Previous() bool {
	pos := m.position()
	if pos == 0 {
		return false
	}
	m.current = m.order[pos-1]
	return true
}

// JumpTo moves to id. Unknown ids leave the state unchanged.
func (m *Machine) JumpTo(id int) bool {
	if _, ok := m.router.Step(id); !ok {
		return false
	}
	m.current = id
	return true
}

// FollowPath jumps to the step owning path. Empty paths are ignored.
func (m *Machine) FollowPath(path string) bool {
	if NormalizeFieldPath(path) == "" {
		return false
	}
	return m.JumpTo(m.router.StepForFieldPath(path))
}

// FollowServerError jumps to the step named by a marker in message. Without
// a marker the current step is kept.
func (m *Machine) FollowServerError(message string) bool {
	step, ok := m.router.StepForServerErrorTag(message)
	if !ok {
		return false
	}
	return m.JumpTo(step)
}
