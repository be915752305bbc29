// Package list provides list navigation helpers for the TUI.
package list

// Cursor tracks a selected index within a list whose length changes as
// items are inserted and removed.
type Cursor struct {
	index int
	count int
}

// NewCursor creates a cursor over count items.
func NewCursor(count int) *Cursor {
	c := &Cursor{}
	c.SetCount(count)
	return c
}

// Index returns the selected position, or -1 when the list is empty.
func (c *Cursor) Index() int {
	if c.count == 0 {
		return -1
	}
	return c.index
}

// Count returns the number of items.
func (c *Cursor) Count() int {
	return c.count
}

// SetCount updates the list length, keeping the index in range.
func (c *Cursor) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	c.count = count
	c.clamp()
}

// SetIndex moves the cursor to i if it is in range.
func (c *Cursor) SetIndex(i int) {
	if i >= 0 && i < c.count {
		c.index = i
	}
}

// MoveUp moves selection up.
func (c *Cursor) MoveUp() {
	if c.index > 0 {
		c.index--
	}
}

// MoveDown moves selection down.
func (c *Cursor) MoveDown() {
	if c.index < c.count-1 {
		c.index++
	}
}

// Reset moves the cursor to the first item.
func (c *Cursor) Reset() {
	c.index = 0
}

// IsEmpty returns whether the list is empty.
func (c *Cursor) IsEmpty() bool {
	return c.count == 0
}

func (c *Cursor) clamp() {
	if c.index >= c.count {
		c.index = c.count - 1
	}
	if c.index < 0 {
		c.index = 0
	}
}
