package interpret

import "github.com/jsphweid/chordex/pitch"

// spelling is one complete reading of a chord from a single root anchor.
type spelling struct {
	root    pitch.Pitch
	pitches []pitch.Pitch
	flats   int
	sharps  int
}

// spell reads every pitch from the anchor letter, stepping by the degree
// its interval is spelled as. Alterations are tallied once per pitch class.
func spell(root pitch.Pitch, anchor pitch.Spelling, pitches []pitch.Pitch, degrees DegreeTable) spelling {
	s := spelling{
		root:    root.WithSpelling(anchor),
		pitches: make([]pitch.Pitch, len(pitches)),
	}

	seen := make(map[int]bool, len(pitches))
	for i, p := range pitches {
		var read pitch.Spelling
		if p.MIDI == root.MIDI {
			read = anchor
		} else {
			letter := anchor.Letter.AtInterval(int(degrees[p.IntervalFrom(root)]))
			read = pitch.NewSpelling(p.PitchClass(), letter)
		}
		s.pitches[i] = p.WithSpelling(read)

		if seen[p.PitchClass()] {
			continue
		}
		seen[p.PitchClass()] = true
		s.flats += read.Accidental.Flats()
		s.sharps += read.Accidental.Sharps()
	}
	return s
}

// impliedFifth is how the anchor would spell a perfect fifth above root.
func impliedFifth(root pitch.Pitch, anchor pitch.Spelling) pitch.Spelling {
	return pitch.NewSpelling(root.PitchClass()+perfectFifth, anchor.Letter.AtInterval(int(Fifth)))
}

// resolveSpelling picks the reading of the chord. Roots with a natural
// letter are read directly. Otherwise the flat and sharp readings compete
// on how many alterations each needs, counting the fifth a listener would
// infer when none is sounded; ties go to sharps.
//
// TODO: break ties by the accidentals of the implied key signature, so
// E♭ minor wins over D♯ minor.
func resolveSpelling(root pitch.Pitch, pitches []pitch.Pitch, b *Buckets, degrees DegreeTable) spelling {
	if root.HasNatural() {
		return spell(root, root.NaturalReading(), pitches, degrees)
	}

	flat := spell(root, root.FlatReading(), pitches, degrees)
	sharp := spell(root, root.SharpReading(), pitches, degrees)

	flatCount, sharpCount := flat.flats, sharp.sharps
	if !b.has(perfectFifth) && !b.has(diminishedFifth) && !b.has(augmentedFifth) {
		flatCount += impliedFifth(root, root.FlatReading()).Accidental.Flats()
		sharpCount += impliedFifth(root, root.SharpReading()).Accidental.Sharps()
	}

	if flatCount < sharpCount {
		return flat
	}
	return sharp
}
