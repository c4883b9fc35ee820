package interpret

// Quality is the third-defining family of a chord.
type Quality string

const (
	Major      Quality = "major"
	Minor      Quality = "minor"
	Suspended2 Quality = "suspended2"
	Suspended4 Quality = "suspended4"
	Augmented  Quality = "augmented"
	Diminished Quality = "diminished"
	Other      Quality = "other"
)

// Relevancy weights.
const (
	octaveFactor    = 1.0
	duplicateFactor = 0.5
	unisonScore     = 20.0
	fullScore       = 30.0
	halfScore       = 15.0
	bassBonus       = 15.0
)

// seventh lists the type tokens of one seventh shape. Upper tones are
// tried thirteenth, eleventh, ninth; an empty token means the family
// never names that upper tone.
type seventh struct {
	base       string
	thirteenth string
	eleventh   string
	ninth      string
}

func (s *seventh) token(b *Buckets) string {
	switch {
	case s.thirteenth != "" && b.has(majorSixth):
		return s.thirteenth
	case s.eleventh != "" && b.has(perfectFourth):
		return s.eleventh
	case s.ninth != "" && b.has(majorSecond):
		return s.ninth
	}
	return s.base
}

type weight struct {
	interval int
	score    float64
}

// family is one row of the naming table: the quality it reports, the
// tones it scores, how it respells intervals and the tokens it produces.
type family struct {
	quality Quality
	weights []weight
	degrees map[int]Degree

	triad  string
	major7 *seventh
	minor7 *seventh
	// dim7 is only consulted by diminished families.
	dim7 *seventh
	// seventhScore scores whichever seventh was found, for families
	// that have nothing else to score.
	seventhScore float64

	sixth   string
	sixNine string
	flatSix string
}

var (
	majorFamily = &family{
		quality: Major,
		weights: []weight{{majorThird, fullScore}, {perfectFifth, fullScore}},
		triad:   "",
		major7:  &seventh{"maj7", "maj13", "maj11", "maj9"},
		minor7:  &seventh{"7", "13", "11", "9"},
		sixth:   "6",
		sixNine: "6/9",
		flatSix: "(♭6)",
	}
	augmentedFamily = &family{
		quality: Augmented,
		weights: []weight{{majorThird, fullScore}, {augmentedFifth, fullScore}},
		degrees: map[int]Degree{augmentedFifth: Fifth},
		triad:   "+",
		major7:  &seventh{"+maj7", "+maj13", "+maj11", "+maj9"},
		minor7:  &seventh{"+7", "+13", "+11", "+9"},
		sixth:   "+6",
		sixNine: "+6/9",
	}
	minorFamily = &family{
		quality: Minor,
		weights: []weight{{minorThird, fullScore}, {perfectFifth, fullScore}},
		triad:   "m",
		major7:  &seventh{"m(maj7)", "m(maj13)", "m(maj11)", "m(maj9)"},
		minor7:  &seventh{"m7", "m13", "m11", "m9"},
		sixth:   "m6",
		sixNine: "m6/9",
		flatSix: "m♭6",
	}
	diminishedFamily = &family{
		quality: Diminished,
		weights: []weight{{minorThird, fullScore}, {diminishedFifth, fullScore}},
		degrees: map[int]Degree{diminishedFifth: Fifth},
		triad:   "°",
		major7:  &seventh{"°maj7", "°maj13", "°maj11", "°maj9"},
		minor7:  &seventh{"ø7", "ø13", "ø11", "ø9"},
		// a major sixth is always read as the diminished seventh
		dim7:    &seventh{"°7", "", "°11", "°9"},
		flatSix: "°♭6",
	}
	sus4Family = &family{
		quality: Suspended4,
		weights: []weight{{perfectFourth, halfScore}, {perfectFifth, fullScore}},
		triad:   "sus4",
		major7:  &seventh{"maj7sus4", "maj13sus4", "", "maj9sus4"},
		minor7:  &seventh{"7sus4", "13sus4", "", "9sus4"},
		sixth:   "6sus4",
		sixNine: "6/9sus4",
		flatSix: "(♭6)sus4",
	}
	sus2Family = &family{
		quality: Suspended2,
		weights: []weight{{majorSecond, halfScore}, {perfectFifth, fullScore}},
		triad:   "sus2",
		// a fourth makes the chord sus4, so sus2 never names an eleventh
		major7:  &seventh{"maj7sus2", "maj13sus2", "", ""},
		minor7:  &seventh{"7sus2", "13sus2", "", ""},
		sixth:   "6sus2",
		flatSix: "(♭6)sus2",
	}
	fifthNo3Family = &family{
		quality: Other,
		weights: []weight{{perfectFifth, fullScore}},
		triad:   "(no3)",
		major7:  &seventh{"maj7(no3)", "maj13(no3)", "", ""},
		minor7:  &seventh{"7(no3)", "13(no3)", "", ""},
		sixth:   "6(no3)",
		flatSix: "(♭6)(no3)",
	}
	diminishedNo3Family = &family{
		quality: Diminished,
		weights: []weight{{diminishedFifth, fullScore}},
		degrees: map[int]Degree{diminishedFifth: Fifth},
		triad:   "°(no3)",
		major7:  &seventh{"°maj7(no3)", "°maj13(no3)", "", ""},
		minor7:  &seventh{"ø7(no3)", "ø13(no3)", "", ""},
		dim7:    &seventh{base: "°7(no3)"},
		flatSix: "°♭6(no3)",
	}
	bareFamily = &family{
		quality:      Other,
		triad:        "(no3)",
		major7:       &seventh{base: "maj7(no3)"},
		minor7:       &seventh{base: "7(no3)"},
		seventhScore: halfScore,
		sixth:        "6(no3)",
		flatSix:      "(♭6)(no3)",
	}
)

// classifyFamily picks the naming family. The order is a strict priority:
// third, then fourth, then second, then fifth.
func classifyFamily(b *Buckets) *family {
	switch {
	case b.has(majorThird):
		if b.has(perfectFifth) || !b.has(augmentedFifth) {
			return majorFamily
		}
		return augmentedFamily
	case b.has(minorThird):
		if b.has(perfectFifth) || !b.has(diminishedFifth) {
			return minorFamily
		}
		return diminishedFamily
	case b.has(perfectFourth):
		return sus4Family
	case b.has(majorSecond):
		return sus2Family
	case b.has(perfectFifth):
		return fifthNo3Family
	case b.has(diminishedFifth):
		return diminishedNo3Family
	}
	return bareFamily
}

// shape is what the family resolves to for one set of buckets.
type shape struct {
	chordType string
	// hasSeventh selects modifier notation for extensions.
	hasSeventh bool
	// seventhInterval is the interval of the seventh that was found.
	seventhInterval int
	degrees         DegreeTable
}

func (f *family) resolve(b *Buckets) shape {
	s := shape{chordType: f.triad, degrees: defaultDegrees}
	for interval, d := range f.degrees {
		s.degrees = s.degrees.With(interval, d)
	}

	switch {
	case b.has(majorSeventh):
		s.chordType = f.major7.token(b)
		s.hasSeventh = true
		s.seventhInterval = majorSeventh
	case b.has(minorSeventh):
		s.chordType = f.minor7.token(b)
		s.hasSeventh = true
		s.seventhInterval = minorSeventh
	case f.dim7 != nil && b.has(diminishedSeventh):
		s.chordType = f.dim7.token(b)
		s.hasSeventh = true
		s.seventhInterval = diminishedSeventh
		s.degrees = s.degrees.With(diminishedSeventh, Seventh)
	case f.sixth != "" && b.has(majorSixth):
		s.chordType = f.sixth
		if f.sixNine != "" && b.has(majorSecond) {
			s.chordType = f.sixNine
		}
	case f.flatSix != "" && b.has(minorSixth):
		s.chordType = f.flatSix
	}
	return s
}
