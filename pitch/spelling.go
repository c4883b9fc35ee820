package pitch

// Accidental is the alteration applied to a letter.
type Accidental int

const (
	Unknown Accidental = iota
	Natural
	Sharp
	DoubleSharp
	Flat
	DoubleFlat
)

var accidentalSymbols = map[Accidental]string{
	Unknown:     "?",
	Natural:     "",
	Sharp:       "♯",
	DoubleSharp: "𝄪",
	Flat:        "♭",
	DoubleFlat:  "𝄫",
}

var accidentalNames = map[Accidental]string{
	Unknown:     "unknown",
	Natural:     "natural",
	Sharp:       "sharp",
	DoubleSharp: "doublesharp",
	Flat:        "flat",
	DoubleFlat:  "doubleflat",
}

func (a Accidental) Symbol() string {
	return accidentalSymbols[a]
}

func (a Accidental) String() string {
	return accidentalNames[a]
}

// Flats counts the flat signs the accidental carries.
func (a Accidental) Flats() int {
	switch a {
	case Flat:
		return 1
	case DoubleFlat:
		return 2
	}
	return 0
}

// Offset is the alteration in semitones.
func (a Accidental) Offset() int {
	return a.Sharps() - a.Flats()
}

// Sharps counts the sharp signs the accidental carries.
func (a Accidental) Sharps() int {
	switch a {
	case Sharp:
		return 1
	case DoubleSharp:
		return 2
	}
	return 0
}

// accidentalBetween resolves the alteration that turns letter into pc.
// Distances beyond a double alteration stay Unknown.
func accidentalBetween(letter Letter, pc int) Accidental {
	switch Mod(pc-letter.PitchClass(), 12) {
	case 0:
		return Natural
	case 1:
		return Sharp
	case 2:
		return DoubleSharp
	case 11:
		return Flat
	case 10:
		return DoubleFlat
	}
	return Unknown
}

// Spelling is one concrete reading of a pitch class.
type Spelling struct {
	PitchClass int
	Letter     Letter
	Accidental Accidental
}

// NewSpelling reads pitch class pc with the given letter, deriving the
// accidental from the distance between the two.
func NewSpelling(pc int, letter Letter) Spelling {
	pc = Mod(pc, 12)
	return Spelling{
		PitchClass: pc,
		Letter:     letter,
		Accidental: accidentalBetween(letter, pc),
	}
}

// Name is the letter followed by its accidental symbol, e.g. "F♯".
func (s Spelling) Name() string {
	return s.Letter.String() + s.Accidental.Symbol()
}
