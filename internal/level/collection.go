package level

// Collection is an ordered set of levels with dense 1-based numbering.
// The zero Collection is empty and usable.
type Collection struct {
	levels []*Level
}

// NewCollection wraps parsed levels into a collection. The levels keep
// the numbering ParseLevels assigned.
func NewCollection(levels []*Level) *Collection {
	return &Collection{levels: levels}
}

// Len returns the number of levels.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.levels)
}

// Get returns the level with the given 1-based number, or nil when the
// number is out of range.
func (c *Collection) Get(number int) *Level {
	if c == nil || number < 1 || number > len(c.levels) {
		return nil
	}
	return c.levels[number-1]
}

// All returns the levels in order. The returned slice must not be
// modified.
func (c *Collection) All() []*Level {
	if c == nil {
		return nil
	}
	return c.levels
}
