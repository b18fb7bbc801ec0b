package overlay

// Flag is a caller-owned presentation flag. The caller creates it next to
// its own model state and hands a pointer to exactly one overlay; binding
// the same flag to two overlays is unsupported.
type Flag struct {
	value bool
	bus   *Bus[bool]
}

// NewFlag returns a flag holding initial.
func NewFlag(initial bool) *Flag {
	return &Flag{
		value: initial,
		bus:   NewBus[bool](),
	}
}

// Get returns the current value.
func (f *Flag) Get() bool {
	return f.value
}

// Set stores v and notifies subscribers. Setting the current value is a
// no-op and reports false.
func (f *Flag) Set(v bool) bool {
	if f.value == v {
		return false
	}
	f.value = v
	f.bus.Publish(v)
	return true
}

// Toggle flips the flag.
func (f *Flag) Toggle() {
	f.Set(!f.value)
}

// Subscribe registers fn to be called after every change.
func (f *Flag) Subscribe(fn func(bool)) func() {
	return f.bus.Subscribe(fn)
}
