package field

// Router tracks which target currently receives keypad operations.
//
// At most one target is bound at a time. Binding is identity based:
// rebinding the bound target changes nothing and fires no notification,
// binding a different one implicitly unbinds the previous with exactly
// one notification. The Send methods are total and report false while
// no target is bound.
//
// Router is single-goroutine state, like the rest of the package. The
// change callback runs synchronously before the mutating call returns.
type Router struct {
	targets []Target
	active  Target

	onActive func(Target)
}

func NewRouter() *Router { return &Router{} }

// OnActiveChange registers fn to receive the newly bound target after
// every effective focus change, nil when focus was cleared.
func (r *Router) OnActiveChange(fn func(Target)) { r.onActive = fn }

// Register appends t to the cycling order used by Next and Prev.
// Duplicate and nil registrations are ignored.
func (r *Router) Register(t Target) {
	if t == nil || r.indexOf(t) >= 0 {
		return
	}
	r.targets = append(r.targets, t)
}

// Unregister removes t from the cycling order, clearing focus first when
// t is the bound target.
func (r *Router) Unregister(t Target) {
	i := r.indexOf(t)
	if i < 0 {
		return
	}
	if r.active == t {
		r.SetActive(nil)
	}
	r.targets = append(r.targets[:i], r.targets[i+1:]...)
}

// SetActive binds t, which need not be registered. SetActive(nil) clears
// focus.
func (r *Router) SetActive(t Target) {
	if r.active == t {
		return
	}
	r.active = t
	if r.onActive != nil {
		r.onActive(t)
	}
}

// ClearActive unbinds the bound target, if any.
func (r *Router) ClearActive() { r.SetActive(nil) }

// Active returns the bound target, nil when idle.
func (r *Router) Active() Target { return r.active }

// Bound reports whether a target is bound.
func (r *Router) Bound() bool { return r.active != nil }

// Next binds the registered target after the bound one, wrapping at the
// end. From the idle state it binds the first registered target.
func (r *Router) Next() {
	if len(r.targets) == 0 {
		return
	}
	i := r.indexOf(r.active)
	r.SetActive(r.targets[(i+1)%len(r.targets)])
}

// Prev binds the registered target before the bound one, wrapping at the
// start. From the idle state it binds the last registered target.
func (r *Router) Prev() {
	if len(r.targets) == 0 {
		return
	}
	i := r.indexOf(r.active)
	if i < 0 {
		i = 0
	}
	r.SetActive(r.targets[(i-1+len(r.targets))%len(r.targets)])
}

func (r *Router) indexOf(t Target) int {
	for i, x := range r.targets {
		if x == t {
			return i
		}
	}
	return -1
}

// SendDigit forwards a digit press to the bound target.
func (r *Router) SendDigit(d int) bool {
	if r.active == nil {
		return false
	}
	return r.active.AppendDigit(d)
}

// SendSeparator forwards a decimal separator press to the bound target.
func (r *Router) SendSeparator() bool {
	if r.active == nil {
		return false
	}
	return r.active.InsertSeparator()
}

// SendBackspace forwards a backspace press to the bound target.
func (r *Router) SendBackspace() bool {
	if r.active == nil {
		return false
	}
	return r.active.Backspace()
}

// SendClear forwards a clear press to the bound target.
func (r *Router) SendClear() bool {
	if r.active == nil {
		return false
	}
	return r.active.Clear()
}

// SendToggleSign forwards a sign toggle to the bound target.
func (r *Router) SendToggleSign() bool {
	if r.active == nil {
		return false
	}
	return r.active.ToggleSign()
}

// SendText forwards a character press to the bound target.
func (r *Router) SendText(text string) bool {
	if r.active == nil {
		return false
	}
	return r.active.AppendText(text)
}
