package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 3)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}} {
		s.SetColor(p[0], p[1], 'X', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell%v = %+v, expected blank", p, c)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out of bounds writes leaked into the buffer")
	}

	s.DrawTextColor(2, 1, "FUEL", ColorYellow)
	if got := strings.Split(s.String(), "\n")[1]; got != "  FU" {
		t.Errorf("row 1 = %q, expected clipped text", got)
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "centered text",
			draw: func(s *Screen) { s.DrawTextCentered(0, "ok", ColorGreen) },
			want: "  ok  \n      \n      ",
		},
		{
			name: "horizontal line",
			draw: func(s *Screen) { s.DrawHLine(1, 1, 3, '═', ColorBrightYellow) },
			want: "      \n ═══  \n      ",
		},
		{
			name: "vertical line",
			draw: func(s *Screen) { s.DrawVLine(5, 0, 10, '█', ColorGray) },
			want: "     █\n     █\n     █",
		},
		{
			name: "negative length",
			draw: func(s *Screen) { s.DrawHLine(0, 0, -2, '#', ColorGray) },
			want: "      \n      \n      ",
		},
		{
			name: "frame",
			draw: func(s *Screen) { s.DrawFrame(0, 0, 4, 3, ColorRed) },
			want: "┌──┐  \n│  │  \n└──┘  ",
		},
		{
			name: "fill",
			draw: func(s *Screen) { s.FillRect(1, 1, 2, 2, '.') },
			want: "      \n ..   \n ..   ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(6, 3)
			tc.draw(s)
			if got := s.String(); got != tc.want {
				t.Errorf("screen =\n%s\nexpected\n%s", got, tc.want)
			}
		})
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextColor(0, 0, "ab", ColorCyan)

	if c := s.GetCell(1, 0); c.Rune != 'b' || c.Color != ColorCyan {
		t.Errorf("cell = %+v, expected cyan 'b'", c)
	}

	s.Clear()
	if c := s.GetCell(1, 0); c != blankCell {
		t.Errorf("Clear left %+v", c)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColor(0, 0, "abcd", ColorWhite)
	s.DrawTextColor(0, 1, "efgh", ColorWhite)

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink =\n%q", got)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after second resize = %q", got)
	}

	s.Resize(-1, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should give an empty screen, got %dx%d", s.Width(), s.Height())
	}
}
