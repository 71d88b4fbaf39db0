// Package randomart draws the "drunken bishop" visualisation of a binary
// fingerprint, compatible with the randomart shown by OpenSSH for host and
// user keys.
//
// A bishop starts in the middle of the field and makes four diagonal moves
// per fingerprint byte, one for each 2-bit group, least significant pair
// first. Every cell counts how many times the bishop landed on it and the
// count is drawn using the mode's alphabet. The last two alphabet glyphs
// mark the starting point and the end point of the walk.
package randomart

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var ErrInvalidConfiguration = errors.New("randomart: invalid configuration")

// Mode describes the field geometry and the glyphs used to draw it.
// The last glyph of the alphabet marks the end point, the one before it
// marks the starting point. The rest are used for visit counts in increasing
// order, counts beyond the last of them are drawn with it.
type Mode struct {
	Height   int    `yaml:"height"`
	Width    int    `yaml:"width"`
	Alphabet string `yaml:"alphabet"`
}

// OpenSSL is the classic 9x17 field used by ssh-keygen
var OpenSSL = Mode{
	Height:   9,
	Width:    17,
	Alphabet: " .o+=*BOX@%&#/^SE",
}

const minAlphabetLen = 3

func (m *Mode) Validate() error {
	if m.Height < 1 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidConfiguration, m.Height)
	}
	if m.Width < 1 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfiguration, m.Width)
	}
	if !utf8.ValidString(m.Alphabet) {
		return fmt.Errorf("%w: alphabet is not a valid UTF-8 string", ErrInvalidConfiguration)
	}
	if n := utf8.RuneCountInString(m.Alphabet); n < minAlphabetLen {
		return fmt.Errorf("%w: alphabet must have at least %d glyphs, got %d", ErrInvalidConfiguration, minAlphabetLen, n)
	}
	return nil
}

// DrunkenBishop walks the fingerprint over a field described by mode and
// returns the bordered picture
func DrunkenBishop(fingerprint []byte, mode Mode) (string, error) {
	f, err := NewField(mode)
	if err != nil {
		return "", err
	}
	f.Walk(fingerprint)
	return f.String(), nil
}
