package board

import (
	"testing"

	"github.com/zyedidia/generic/mapset"

	"github.com/makery/sokoban/internal/level"
)

func parseOne(t *testing.T, rows string) *level.Level {
	t.Helper()
	levels, err := level.ParseLevels([]byte(level.Marker + "\n" + rows))
	if err != nil {
		t.Fatalf("ParseLevels() failed: %v", err)
	}
	return levels[0]
}

func snapshotOf(player level.Coord, boxes ...level.Coord) Snapshot {
	set := mapset.New[level.Coord]()
	for _, b := range boxes {
		set.Put(b)
	}
	return Snapshot{Player: player, Boxes: set}
}

func TestIsSolved(t *testing.T) {
	// Targets at (1,1) and (2,2).
	lvl := parseOne(t, "####\n#.$#\n#$.#\n#@##\n####\n")

	if !IsSolved(lvl, snapshotOf(level.Coord{X: 1, Y: 3}, level.Coord{X: 1, Y: 1}, level.Coord{X: 2, Y: 2})) {
		t.Error("All targets covered by boxes should be solved")
	}
	if IsSolved(lvl, snapshotOf(level.Coord{X: 1, Y: 3}, level.Coord{X: 2, Y: 1}, level.Coord{X: 2, Y: 2})) {
		t.Error("A box off target should not be solved")
	}
	if IsSolved(lvl, snapshotOf(level.Coord{X: 1, Y: 3}, level.Coord{X: 1, Y: 1})) {
		t.Error("Missing box should not be solved")
	}
}

func TestMoveIntoWall(t *testing.T) {
	lvl := parseOne(t, "#####\n#@$.#\n#####\n")
	b := NewLive(lvl)

	if b.Move(DirUp) {
		t.Error("Move into a wall should fail")
	}
	if b.Player() != (level.Coord{X: 1, Y: 1}) {
		t.Errorf("Player should not have moved, at %v", b.Player())
	}
}

func TestMovePushesBox(t *testing.T) {
	lvl := parseOne(t, "#####\n#@$.#\n#####\n")
	b := NewLive(lvl)

	if !b.Move(DirRight) {
		t.Fatal("Push onto free target should succeed")
	}
	if b.Player() != (level.Coord{X: 2, Y: 1}) {
		t.Errorf("Player at %v, want (2,1)", b.Player())
	}
	if !b.BoxAt(level.Coord{X: 3, Y: 1}) {
		t.Error("Box should have been pushed to (3,1)")
	}
	if !IsSolved(lvl, b.Snapshot()) {
		t.Error("Board should be solved after the push")
	}
}

func TestMoveBlockedPush(t *testing.T) {
	// Box against the wall: pushing right must fail.
	lvl := parseOne(t, "#####\n#.@$#\n#####\n")
	b := NewLive(lvl)

	if b.Move(DirRight) {
		t.Error("Push into a wall should fail")
	}

	// Two boxes in a row cannot be pushed.
	lvl = parseOne(t, "######\n#@$$.#\n#.   #\n######\n")
	b = NewLive(lvl)
	if b.Move(DirRight) {
		t.Error("Push of a box chain should fail")
	}
}

func TestMoveOntoTarget(t *testing.T) {
	// Player walks onto a free target cell without disturbing it.
	lvl := parseOne(t, "#####\n#@.$#\n# . #\n#$  #\n#####\n")
	b := NewLive(lvl)

	if !b.Move(DirRight) {
		t.Fatal("Walking onto a target should succeed")
	}
	if b.Player() != (level.Coord{X: 2, Y: 1}) {
		t.Errorf("Player at %v, want (2,1)", b.Player())
	}
	if IsSolved(lvl, b.Snapshot()) {
		t.Error("Standing on a target is not a win")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	lvl := parseOne(t, "#####\n#@$.#\n#####\n")
	b := NewLive(lvl)

	before := b.Snapshot()
	b.Move(DirRight)

	if !before.Boxes.Has(level.Coord{X: 2, Y: 1}) {
		t.Error("Earlier snapshot should still hold the old box position")
	}
	if before.Boxes.Has(level.Coord{X: 3, Y: 1}) {
		t.Error("Earlier snapshot should not see the later push")
	}
}

func TestReset(t *testing.T) {
	lvl := parseOne(t, "#####\n#@$.#\n#####\n")
	b := NewLive(lvl)

	b.Move(DirRight)
	b.Reset()

	if b.Player() != (level.Coord{X: 1, Y: 1}) {
		t.Errorf("Reset should restore player start, got %v", b.Player())
	}
	if !b.BoxAt(level.Coord{X: 2, Y: 1}) {
		t.Error("Reset should restore box start position")
	}
}

func TestLiveText(t *testing.T) {
	lvl := parseOne(t, "#####\n#@$.#\n#####\n")
	b := NewLive(lvl)
	b.Move(DirRight)

	want := "#####\n# @*#\n#####"
	if got := b.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}
