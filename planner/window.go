package planner

// Window is a fixed-capacity rolling buffer of conversation lines.
// Adding past capacity evicts the oldest line first.
type Window struct {
	capacity int
	lines    []string
}

func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DEFAULT_WINDOW_SIZE
	}
	return &Window{
		capacity: capacity,
		lines:    make([]string, 0, capacity),
	}
}

func (w *Window) Add(line string) {
	w.lines = append(w.lines, line)
	if len(w.lines) > w.capacity {
		w.lines = w.lines[1:]
	}
}

// Lines returns a copy of the buffered lines, oldest first.
func (w *Window) Lines() []string {
	lines := make([]string, len(w.lines))
	copy(lines, w.lines)
	return lines
}

func (w *Window) Len() int {
	return len(w.lines)
}

func (w *Window) Capacity() int {
	return w.capacity
}
