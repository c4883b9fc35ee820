// Package interpret names a set of sounded pitches relative to one
// candidate root.
package interpret

import (
	"strings"

	"github.com/jsphweid/chordex/pitch"
)

// Interpretation is the reading of a pitch set from one candidate root.
// It is fully computed by Evaluate and not modified afterwards.
type Interpretation struct {
	Root             pitch.Pitch
	Bass             pitch.Pitch
	Intervals        Buckets
	Pitches          []pitch.Pitch
	Relevancy        float64
	Quality          Quality
	ChordType        string
	ChordName        string
	ExtensionsPrefix string
	Extensions       []string
}

// Evaluate reads pitches as a chord built on root. The bass only affects
// the relevancy score. It never fails: pitch sets with nothing to
// recognise come back as "(no3)" chords.
func Evaluate(root, bass pitch.Pitch, pitches []pitch.Pitch) Interpretation {
	working := make([]pitch.Pitch, len(pitches))
	copy(working, pitches)

	buckets := classify(root, working)
	sc := scorer{buckets: &buckets, pitches: working}

	if buckets.has(perfectUnison) {
		sc.apply(perfectUnison, unisonScore)
	} else {
		sc.score += unisonScore - float64(root.Octave())*octaveFactor
	}
	if root.MIDI == bass.MIDI {
		sc.score += bassBonus
	}

	fam := classifyFamily(&buckets)
	for _, w := range fam.weights {
		if buckets.has(w.interval) {
			sc.apply(w.interval, w.score)
		}
	}

	sh := fam.resolve(&buckets)
	if sh.hasSeventh && fam.seventhScore > 0 {
		sc.apply(sh.seventhInterval, fam.seventhScore)
	}

	mode := added
	if sh.hasSeventh {
		mode = modifier
	}
	ext := applyExtensions(&buckets, fam.quality, mode, sh.degrees)

	buckets = buckets.withDegrees(ext.degrees)
	spelled := resolveSpelling(root, working, &buckets, ext.degrees)

	return Interpretation{
		Root:             spelled.root,
		Bass:             bass,
		Intervals:        buckets,
		Pitches:          spelled.pitches,
		Relevancy:        sc.score,
		Quality:          fam.quality,
		ChordType:        sh.chordType,
		ChordName:        spelled.root.Spelling.Name() + sh.chordType,
		ExtensionsPrefix: ext.prefix,
		Extensions:       ext.extensions,
	}
}

type scorer struct {
	buckets *Buckets
	pitches []pitch.Pitch
	score   float64
}

// apply scores the tones at interval. Lower octaves weigh more and
// doubled tones count at half weight.
func (s *scorer) apply(interval int, base float64) {
	lowest := s.buckets.representative(interval)
	s.score += base - float64(s.pitches[lowest].Octave())*octaveFactor
	for _, i := range s.buckets[interval].Duplicates {
		s.score += (base - float64(s.pitches[i].Octave())*octaveFactor) * duplicateFactor
	}
}

// Label renders the name with its extensions in parentheses, the way a
// plain-text display shows what would otherwise be superscript.
func (in Interpretation) Label() string {
	sup := in.ExtensionsPrefix + strings.Join(in.Extensions, ",")
	if sup == "" {
		return in.ChordName
	}
	return in.ChordName + "(" + sup + ")"
}

// NoteNames lists the spelled pitch names without octaves, in input order.
func (in Interpretation) NoteNames() []string {
	res := make([]string, len(in.Pitches))
	for i, p := range in.Pitches {
		res[i] = p.Spelling.Name()
	}
	return res
}
