package randomart

import (
	"strings"
)

type move struct {
	dy, dx int
}

// indexed by a 2-bit movement code
var moves = [4]move{
	{-1, -1},
	{-1, 1},
	{1, -1},
	{1, 1},
}

// Field holds visit counts and the bishop position. The counts are never
// saturated or overwritten by the markers, both happen only when drawing.
type Field struct {
	mode     Mode
	alphabet []rune
	field    []int
	x, y     int
}

func NewField(mode Mode) (*Field, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	return &Field{
		mode:     mode,
		alphabet: []rune(mode.Alphabet),
		field:    make([]int, mode.Width*mode.Height),
		x:        mode.Width / 2,
		y:        mode.Height / 2,
	}, nil
}

func (f *Field) Mode() Mode { return f.mode }

// Position returns the current bishop position
func (f *Field) Position() (row, col int) { return f.y, f.x }

// Count returns the raw number of times the bishop landed on the cell
func (f *Field) Count(row, col int) int {
	return f.field[col+row*f.mode.Width]
}

// Walk continues the walk with the fingerprint bytes
func (f *Field) Walk(fingerprint []byte) {
	for _, input := range fingerprint {
		for range 4 {
			m := moves[input&0x3]
			f.x = clamp(f.x+m.dx, f.mode.Width-1)
			f.y = clamp(f.y+m.dy, f.mode.Height-1)
			f.field[f.x+f.y*f.mode.Width]++
			input >>= 2
		}
	}
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// glyphIndex saturates a visit count below the marker glyphs
func glyphIndex(count, alphabetLen int) int {
	return min(count, alphabetLen-minAlphabetLen)
}

func (f *Field) glyph(x, y int) rune {
	n := len(f.alphabet)
	switch {
	// end point wins over the starting point
	case x == f.x && y == f.y:
		return f.alphabet[n-1]
	case x == f.mode.Width/2 && y == f.mode.Height/2:
		return f.alphabet[n-2]
	default:
		return f.alphabet[glyphIndex(f.field[x+y*f.mode.Width], n)]
	}
}

func (f *Field) String() string { return f.Title("") }

// Title draws the field with the title centered in the top border, e.g.
// +--[ED25519 256]--+. Titles are truncated to fit between the corners.
func (f *Field) Title(title string) string {
	var out strings.Builder
	width := f.mode.Width

	head := []rune(title)
	if len(head) != 0 && width > 2 {
		if len(head) > width-2 {
			head = head[:width-2]
		}
		padL := (width - 2 - len(head)) / 2
		padR := width - 2 - len(head) - padL
		out.WriteRune('+')
		out.WriteString(strings.Repeat("-", padL))
		out.WriteRune('[')
		out.WriteString(string(head))
		out.WriteRune(']')
		out.WriteString(strings.Repeat("-", padR))
		out.WriteRune('+')
		out.WriteRune('\n')
	} else {
		writeBorder(&out, width)
	}

	for y := range f.mode.Height {
		out.WriteRune('|')
		for x := range width {
			out.WriteRune(f.glyph(x, y))
		}
		out.WriteRune('|')
		out.WriteRune('\n')
	}
	writeBorder(&out, width)
	return out.String()
}

func writeBorder(out *strings.Builder, width int) {
	out.WriteRune('+')
	out.WriteString(strings.Repeat("-", width))
	out.WriteRune('+')
	out.WriteRune('\n')
}
