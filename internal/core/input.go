package core

import "fmt"

// Intent represents a player intent, abstracted from physical key presses.
// The engine only ever sees intents; the presentation layer maps devices to them.
type Intent int

const (
	IntentNone        Intent = iota
	IntentMoveLeft           // Shift the active piece one column left
	IntentMoveRight          // Shift the active piece one column right
	IntentSoftDrop           // Drop to the lowest legal row without locking
	IntentHardDrop           // Drop to the lowest legal row and lock
	IntentRotateLeft         // Rotate counterclockwise with kicks
	IntentRotateRight        // Rotate clockwise with kicks
	IntentPause              // Toggle pause
)

var intentNames = map[Intent]string{
	IntentNone:        "none",
	IntentMoveLeft:    "move_left",
	IntentMoveRight:   "move_right",
	IntentSoftDrop:    "soft_drop",
	IntentHardDrop:    "hard_drop",
	IntentRotateLeft:  "rotate_left",
	IntentRotateRight: "rotate_right",
	IntentPause:       "pause",
}

// String returns the snake_case name of the intent.
func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// ParseIntent converts a name produced by String back into an Intent.
func ParseIntent(name string) (Intent, error) {
	for intent, n := range intentNames {
		if n == name && intent != IntentNone {
			return intent, nil
		}
	}
	return IntentNone, fmt.Errorf("core: unknown intent %q", name)
}

// InputFrame holds the intents queued for one simulation tick, in arrival order.
type InputFrame struct {
	Intents []Intent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Add appends an intent to the frame. IntentNone is ignored.
func (f *InputFrame) Add(i Intent) {
	if i == IntentNone {
		return
	}
	f.Intents = append(f.Intents, i)
}

// Has returns true if the given intent was queued this frame.
func (f InputFrame) Has(i Intent) bool {
	for _, queued := range f.Intents {
		if queued == i {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Intents = f.Intents[:0]
}

// IntentQueue is a FIFO of pending intents. The orchestrator pops at most one per tick.
type IntentQueue struct {
	items []Intent
}

// Push appends an intent. IntentNone is ignored.
func (q *IntentQueue) Push(i Intent) {
	if i == IntentNone {
		return
	}
	q.items = append(q.items, i)
}

// Pop removes and returns the oldest intent, or IntentNone when empty.
func (q *IntentQueue) Pop() Intent {
	if len(q.items) == 0 {
		return IntentNone
	}
	i := q.items[0]
	q.items = q.items[1:]
	return i
}

// Len returns the number of pending intents.
func (q *IntentQueue) Len() int {
	return len(q.items)
}

// Clear drops all pending intents.
func (q *IntentQueue) Clear() {
	q.items = nil
}
