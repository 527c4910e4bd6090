package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if s.Row(y) != strings.Repeat(" ", 12) {
			t.Errorf("row %d not blank: %q", y, s.Row(y))
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0, got %dx%d", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("empty screen String() = %q", s.String())
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(6, 6)
	s.SetColored(2, 3, '*', ColorYellow)

	c := s.GetCell(2, 3)
	if c.Rune != '*' || c.Color != ColorYellow {
		t.Errorf("GetCell = %+v, expected yellow '*'", c)
	}

	// out of bounds writes are dropped
	s.SetColored(-1, 0, 'x', ColorRed)
	s.SetColored(6, 0, 'x', ColorRed)
	s.SetColored(0, 6, 'x', ColorRed)
	if got := s.GetCell(-1, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("out of bounds GetCell = %+v", got)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 1, '#', ColorGreen)
	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("after Clear cell = %+v", c)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 1, "árbol", ColorGreen)

	if s.Row(1) != "     árb" {
		t.Errorf("row 1 = %q", s.Row(1))
	}
	if s.GetCell(5, 1).Color != ColorGreen {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "GO", ColorYellow)
	if s.Row(0) != "    GO     " {
		t.Errorf("centered row = %q", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4, ColorGray)

	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if s.String() != want {
		t.Errorf("DrawBox result:\n%s\nexpected:\n%s", s.String(), want)
	}
	if s.GetCell(5, 3).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Arbol")

	s.Resize(3, 2)
	if s.Row(0) != "Arb" {
		t.Errorf("after shrink row 0 = %q", s.Row(0))
	}

	s.Resize(6, 3)
	if s.Row(0) != "Arb   " {
		t.Errorf("after grow row 0 = %q", s.Row(0))
	}
	if s.Row(2) != "      " {
		t.Errorf("new rows should be blank, got %q", s.Row(2))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if s.Row(5) != "   " {
		t.Errorf("out of bounds row = %q", s.Row(5))
	}
}
