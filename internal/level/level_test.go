package level

import "testing"

func mustParse(t *testing.T, src string) []*Level {
	t.Helper()
	levels, err := ParseLevels([]byte(src))
	if err != nil {
		t.Fatalf("ParseLevels() failed: %v", err)
	}
	return levels
}

func TestCollectionBounds(t *testing.T) {
	c := NewCollection(mustParse(t, twoLevels))

	if c.Len() != 2 {
		t.Fatalf("Expected 2 levels, got %d", c.Len())
	}

	if c.Get(0) != nil {
		t.Error("Get(0) should return nil")
	}
	if c.Get(3) != nil {
		t.Error("Get(N+1) should return nil")
	}
	if c.Get(1) == nil || c.Get(2) == nil {
		t.Error("Get(1) and Get(N) should return valid levels")
	}
	if c.Get(2).Number() != 2 {
		t.Errorf("Expected level number 2, got %d", c.Get(2).Number())
	}
}

func TestEmptyCollection(t *testing.T) {
	var c *Collection

	if c.Len() != 0 {
		t.Errorf("nil collection Len() = %d, want 0", c.Len())
	}
	if c.Get(1) != nil {
		t.Error("nil collection Get(1) should return nil")
	}

	empty := NewCollection(nil)
	if empty.Get(1) != nil {
		t.Error("empty collection Get(1) should return nil")
	}
}

func TestTextWithOverlay(t *testing.T) {
	lvl := mustParse(t, "Level:\n#####\n#@$.#\n#####\n")[0]

	// Box pushed onto the target, player in the box's old spot.
	got := lvl.TextWith(Coord{X: 2, Y: 1}, []Coord{{X: 3, Y: 1}})
	want := "#####\n# @*#\n#####"
	if got != want {
		t.Errorf("TextWith() = %q, want %q", got, want)
	}
}

func TestAtOutOfBounds(t *testing.T) {
	lvl := mustParse(t, "Level:\n#####\n#@$.#\n#####\n")[0]

	if lvl.At(-1, 0) != SymbolWall {
		t.Error("Out-of-bounds cells should read as walls")
	}
	if lvl.At(0, 99) != SymbolWall {
		t.Error("Out-of-bounds cells should read as walls")
	}
}
