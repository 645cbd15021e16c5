package usecase

import "sync"

// DisplayState is a copy of what a Display currently shows
type DisplayState struct {
	Text   string `json:"text"`
	Hidden bool   `json:"hidden"`
}

// Display is an in-memory result container safe for concurrent use.
// It starts hidden and empty.
type Display struct {
	mu    sync.RWMutex
	state DisplayState
}

// NewDisplay creates a hidden, empty Display
func NewDisplay() *Display {
	return &Display{state: DisplayState{Hidden: true}}
}

// SetText replaces the displayed text
func (d *Display) SetText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Text = text
}

// SetHidden toggles visibility
func (d *Display) SetHidden(hidden bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.state.Hidden = hidden
}

// Snapshot returns the current state
func (d *Display) Snapshot() DisplayState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// TextField is an in-memory text input
type TextField struct {
	mu    sync.RWMutex
	value string
}

// NewTextField creates a TextField holding value
func NewTextField(value string) *TextField {
	return &TextField{value: value}
}

// Set replaces the field value
func (f *TextField) Set(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = value
}

// Value returns the current field value
func (f *TextField) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// SubmitButton is an in-memory submit control
type SubmitButton struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
}

// NewSubmitButton creates a SubmitButton with no listeners
func NewSubmitButton() *SubmitButton {
	return &SubmitButton{listeners: make(map[int]func())}
}

// OnClick registers fn and returns a function removing it
func (b *SubmitButton) OnClick(fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

// Click runs every registered listener
func (b *SubmitButton) Click() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
