package pitch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOctave(t *testing.T) {
	cases := map[int]int{60: 4, 59: 3, 0: -1, 127: 9, -1: -2, -12: -2, -13: -3}
	for midi, octave := range cases {
		t.Run(fmt.Sprintf("midi %d", midi), func(t *testing.T) {
			assert.Equal(t, octave, New(midi).Octave())
		})
	}
}

func TestIntervalFromWrapsBelowRoot(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(4, New(64).IntervalFrom(New(60)))
	assert.Equal(8, New(56).IntervalFrom(New(60)))
	assert.Equal(0, New(48).IntervalFrom(New(60)))
}

func TestReadings(t *testing.T) {
	assert := assert.New(t)

	cSharp := New(61)
	assert.False(cSharp.HasNatural())
	assert.Equal("C♯", cSharp.SharpReading().Name())
	assert.Equal("D♭", cSharp.FlatReading().Name())
	assert.Equal("C♯", cSharp.Spelling.Name())

	f := New(65)
	assert.True(f.HasNatural())
	assert.Equal("F", f.NaturalReading().Name())
	assert.Equal("E♯", f.SharpReading().Name())
	assert.Equal("G♭", New(66).FlatReading().Name())
}

func TestNaturalReadingPanicsWithoutNatural(t *testing.T) {
	assert.Panics(t, func() { New(70).NaturalReading() })
}

func TestSpellingAccidentals(t *testing.T) {
	cases := []struct {
		pc     int
		letter Letter
		want   string
		acc    Accidental
	}{
		{0, C, "C", Natural},
		{1, C, "C♯", Sharp},
		{2, C, "C𝄪", DoubleSharp},
		{4, F, "F♭", Flat},
		{3, F, "F𝄫", DoubleFlat},
		{7, D, "D?", Unknown},
		{11, C, "C♭", Flat},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			s := NewSpelling(c.pc, c.letter)
			assert.Equal(t, c.want, s.Name())
			assert.Equal(t, c.acc, s.Accidental)
		})
	}
}

func TestAccidentalCounts(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, DoubleFlat.Flats())
	assert.Equal(0, DoubleFlat.Sharps())
	assert.Equal(1, Sharp.Sharps())
	assert.Equal(0, Natural.Flats())
}

func TestLetterAtIntervalWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(E, C.AtInterval(2))
	assert.Equal(D, B.AtInterval(2))
	assert.Equal(A, A.AtInterval(0))
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		midi int
		name string
	}{
		{"60", 60, "C4"},
		{"C4", 60, "C4"},
		{"c", 60, "C4"},
		{"Eb3", 51, "E♭3"},
		{"F#2", 42, "F♯2"},
		{"B♭2", 46, "B♭2"},
		{"bb3", 58, "B♭3"},
		{"Cb4", 59, "C♭4"},
		{"B#3", 60, "B♯3"},
		{"Fbb2", 39, "F𝄫2"},
		{"Gx4", 69, "G𝄪4"},
		{"C-1", 0, "C-1"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			p, err := Parse(c.in)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.midi, p.MIDI)
			assert.Equal(c.name, p.Name())
		})
	}
}

func TestNameRoundTrips(t *testing.T) {
	for _, in := range []string{"Cb4", "B#3", "Cbb0", "Bx-1", "E#5", "Ab2"} {
		p, err := Parse(in)
		assert.NoError(t, err)

		again, err := Parse(p.Name())
		assert.NoError(t, err)
		assert.Equal(t, p.MIDI, again.MIDI, in)
		assert.Equal(t, p.Spelling, again.Spelling, in)
	}
}

func TestAccidentalOffset(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(-2, DoubleFlat.Offset())
	assert.Equal(-1, Flat.Offset())
	assert.Equal(0, Natural.Offset())
	assert.Equal(1, Sharp.Offset())
	assert.Equal(2, DoubleSharp.Offset())
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "H4", "C#x", "  "} {
		_, err := Parse(in)
		assert.True(t, errors.Is(err, ErrInvalidNote), in)
	}
}

func TestParseAll(t *testing.T) {
	ps, err := ParseAll([]string{"C4", "E4", "G4"})
	assert.NoError(t, err)
	assert.Len(t, ps, 3)

	_, err = ParseAll([]string{"C4", "nope"})
	assert.ErrorIs(t, err, ErrInvalidNote)
}
