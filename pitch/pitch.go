package pitch

import "fmt"

// Letter is a diatonic note name, C through B.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}
var letterPitchClasses = [7]int{0, 2, 4, 5, 7, 9, 11}

func (l Letter) String() string {
	return letterNames[l]
}

// PitchClass is the pitch class of the unaltered letter.
func (l Letter) PitchClass() int {
	return letterPitchClasses[l]
}

// AtInterval steps the letter up by a number of diatonic degrees
// (0 = unison, 6 = seventh).
func (l Letter) AtInterval(degrees int) Letter {
	return Letter(Mod(int(l)+degrees, 7))
}

// naturalLetter returns the letter whose unaltered pitch class is pc.
func naturalLetter(pc int) (Letter, bool) {
	for i, v := range letterPitchClasses {
		if v == pc {
			return Letter(i), true
		}
	}
	return 0, false
}

// Mod is a modulo that never goes negative.
func Mod(a, n int) int {
	return ((a % n) + n) % n
}

// Pitch is a sounded note. Only MIDI differences matter, so any integer
// is accepted.
type Pitch struct {
	MIDI     int
	Spelling Spelling
}

// New returns a pitch with its default reading: the natural one when the
// pitch class has one, otherwise the sharp one.
func New(midi int) Pitch {
	p := Pitch{MIDI: midi}
	if p.HasNatural() {
		p.Spelling = p.NaturalReading()
	} else {
		p.Spelling = p.SharpReading()
	}
	return p
}

func (p Pitch) PitchClass() int {
	return Mod(p.MIDI, 12)
}

// Octave follows scientific pitch notation, so MIDI 60 is in octave 4.
func (p Pitch) Octave() int {
	return octaveOf(p.MIDI)
}

func octaveOf(midi int) int {
	if midi < 0 {
		return (midi+1)/12 - 2
	}
	return midi/12 - 1
}

// IntervalFrom is the chromatic interval (0-11) from root up to p.
func (p Pitch) IntervalFrom(root Pitch) int {
	return Mod(p.MIDI-root.MIDI, 12)
}

func (p Pitch) HasNatural() bool {
	_, ok := naturalLetter(p.PitchClass())
	return ok
}

// NaturalReading panics for pitch classes without a natural letter;
// check HasNatural first.
func (p Pitch) NaturalReading() Spelling {
	l, ok := naturalLetter(p.PitchClass())
	if !ok {
		panic(fmt.Sprintf("pitch class %d has no natural reading", p.PitchClass()))
	}
	return NewSpelling(p.PitchClass(), l)
}

// SharpReading spells the pitch as the letter below raised by a sharp
// (C♯, E♯, B♯). Pitch classes without one fall back to the natural reading.
func (p Pitch) SharpReading() Spelling {
	pc := p.PitchClass()
	if l, ok := naturalLetter(Mod(pc-1, 12)); ok {
		return NewSpelling(pc, l)
	}
	return p.NaturalReading()
}

// FlatReading spells the pitch as the letter above lowered by a flat
// (D♭, F♭, C♭). Pitch classes without one fall back to the natural reading.
func (p Pitch) FlatReading() Spelling {
	pc := p.PitchClass()
	if l, ok := naturalLetter(Mod(pc+1, 12)); ok {
		return NewSpelling(pc, l)
	}
	return p.NaturalReading()
}

// WithSpelling returns a copy of p read as s.
func (p Pitch) WithSpelling(s Spelling) Pitch {
	p.Spelling = s
	return p
}

// Name is the spelled name with the octave of its letter, e.g. "E♭4".
// C♭4 sounds as MIDI 59 and B♯3 as MIDI 60.
func (p Pitch) Name() string {
	return fmt.Sprintf("%s%d", p.Spelling.Name(), octaveOf(p.MIDI-p.Spelling.Accidental.Offset()))
}

func (p Pitch) String() string {
	return p.Name()
}
