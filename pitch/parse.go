package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidNote = errors.New("invalid note")

var accidentalTokens = []struct {
	token      string
	accidental Accidental
}{
	// longest first so "bb" is not read as "b"
	{"𝄫", DoubleFlat},
	{"𝄪", DoubleSharp},
	{"bb", DoubleFlat},
	{"##", DoubleSharp},
	{"♭", Flat},
	{"♯", Sharp},
	{"b", Flat},
	{"#", Sharp},
	{"x", DoubleSharp},
}

// Parse reads either a raw MIDI number ("60") or a note name with an
// optional accidental and octave ("C4", "Eb3", "F#", "B♭2"). A missing
// octave means octave 4. The written spelling is kept on the result.
func Parse(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Pitch{}, fmt.Errorf("%w: empty", ErrInvalidNote)
	}

	if n, err := strconv.Atoi(s); err == nil {
		return New(n), nil
	}

	letter, ok := parseLetter(s[0])
	if !ok {
		return Pitch{}, fmt.Errorf("%w: %q has no note letter", ErrInvalidNote, s)
	}
	rest := s[1:]

	accidental := Natural
	for _, at := range accidentalTokens {
		if strings.HasPrefix(rest, at.token) {
			accidental = at.accidental
			rest = rest[len(at.token):]
			break
		}
	}

	octave := 4
	if rest != "" {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Pitch{}, fmt.Errorf("%w: bad octave in %q", ErrInvalidNote, s)
		}
		octave = n
	}

	midi := (octave+1)*12 + letter.PitchClass() + accidental.Offset()
	p := Pitch{MIDI: midi}
	p.Spelling = NewSpelling(p.PitchClass(), letter)
	return p, nil
}

// ParseAll parses every entry, stopping at the first failure.
func ParseAll(notes []string) ([]Pitch, error) {
	res := make([]Pitch, 0, len(notes))
	for _, n := range notes {
		p, err := Parse(n)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

func parseLetter(b byte) (Letter, bool) {
	switch b {
	case 'C', 'c':
		return C, true
	case 'D', 'd':
		return D, true
	case 'E', 'e':
		return E, true
	case 'F', 'f':
		return F, true
	case 'G', 'g':
		return G, true
	case 'A', 'a':
		return A, true
	case 'B', 'b':
		return B, true
	}
	return 0, false
}
