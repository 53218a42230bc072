// Package history keeps the undo history of rating changes.
package history

// Change is one rating the user picked: item went from Before to After.
type Change struct {
	Item   string
	Before float32
	After  float32
}

// HistoryManager manages the undo history.
type HistoryManager struct {
	stack    []Change
	applied  int // changes in stack that are currently applied
	capacity int
}

// NewHistoryManager creates a new HistoryManager.
// If capacity is 0, history is disabled. Negative capacity is treated as 0.
func NewHistoryManager(capacity int) *HistoryManager {
	if capacity < 0 {
		capacity = 0
	}
	return &HistoryManager{
		stack:    make([]Change, 0, capacity),
		capacity: capacity,
	}
}

// Record adds a change. Changes that were undone are dropped, so they can no
// longer be redone. A change that does not alter the rating is ignored.
func (hm *HistoryManager) Record(c Change) {
	if hm.capacity == 0 || c.Before == c.After {
		return
	}

	hm.stack = append(hm.stack[:hm.applied], c)

	// Trim history if it exceeds capacity (remove from the beginning)
	if len(hm.stack) > hm.capacity {
		hm.stack = hm.stack[len(hm.stack)-hm.capacity:]
	}
	hm.applied = len(hm.stack)
}

// Undo returns the most recent applied change and marks it undone.
// Returns false when there is nothing to undo.
func (hm *HistoryManager) Undo() (Change, bool) {
	if hm.applied == 0 {
		return Change{}, false
	}
	hm.applied--
	return hm.stack[hm.applied], true
}

// Redo returns the most recently undone change and marks it applied again.
// Returns false when there is nothing to redo.
func (hm *HistoryManager) Redo() (Change, bool) {
	if hm.applied >= len(hm.stack) {
		return Change{}, false
	}
	c := hm.stack[hm.applied]
	hm.applied++
	return c, true
}

// CanUndo reports whether Undo would return a change.
func (hm *HistoryManager) CanUndo() bool {
	return hm.applied > 0
}

// CanRedo reports whether Redo would return a change.
func (hm *HistoryManager) CanRedo() bool {
	return hm.applied < len(hm.stack)
}

// RemoveItem forgets every change of item, keeping the position among the
// remaining changes.
func (hm *HistoryManager) RemoveItem(item string) {
	if len(hm.stack) == 0 {
		return
	}
	kept := make([]Change, 0, len(hm.stack))
	applied := 0
	for i, c := range hm.stack {
		if c.Item == item {
			continue
		}
		if i < hm.applied {
			applied++
		}
		kept = append(kept, c)
	}
	hm.stack = kept
	hm.applied = applied
}

// Clear resets the history.
func (hm *HistoryManager) Clear() {
	hm.stack = make([]Change, 0, hm.capacity)
	hm.applied = 0
}

// Len returns the number of recorded changes, applied or undone.
func (hm *HistoryManager) Len() int {
	return len(hm.stack)
}
