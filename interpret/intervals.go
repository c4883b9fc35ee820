package interpret

import (
	"fmt"

	"github.com/jsphweid/chordex/pitch"
)

// Chromatic intervals above the root. Several names share a value; which
// one applies depends on the rest of the chord.
const (
	perfectUnison     = 0
	minorSecond       = 1
	majorSecond       = 2
	augmentedSecond   = 3
	minorThird        = 3
	majorThird        = 4
	perfectFourth     = 5
	augmentedFourth   = 6
	diminishedFifth   = 6
	perfectFifth      = 7
	augmentedFifth    = 8
	minorSixth        = 8
	majorSixth        = 9
	diminishedSeventh = 9
	augmentedSixth    = 10
	minorSeventh      = 10
	majorSeventh      = 11
)

// Degree is the diatonic step a chromatic interval is spelled as.
type Degree int

const (
	Unison Degree = iota
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
)

// DegreeTable maps each chromatic interval to the degree it is spelled as.
// It is a value: With returns an updated copy.
type DegreeTable [12]Degree

var defaultDegrees = DegreeTable{
	Unison,
	Second, Second,
	Third, Third,
	Fourth, Fourth,
	Fifth,
	Sixth, Sixth,
	Seventh, Seventh,
}

func (t DegreeTable) With(interval int, d Degree) DegreeTable {
	t[interval] = d
	return t
}

// Bucket collects the pitches sitting at one chromatic interval.
type Bucket struct {
	InChord bool
	// Lowest indexes the representative, the lowest pitch at this interval.
	Lowest     int
	Duplicates []int
	Degree     Degree
}

type Buckets [12]Bucket

// classify sorts pitches into interval buckets relative to root. Ties on
// MIDI value keep the earlier pitch as representative.
func classify(root pitch.Pitch, pitches []pitch.Pitch) Buckets {
	var b Buckets
	for i, p := range pitches {
		interval := p.IntervalFrom(root)
		bucket := &b[interval]
		switch {
		case !bucket.InChord:
			bucket.InChord = true
			bucket.Lowest = i
		case p.MIDI < pitches[bucket.Lowest].MIDI:
			bucket.Duplicates = append(bucket.Duplicates, bucket.Lowest)
			bucket.Lowest = i
		default:
			bucket.Duplicates = append(bucket.Duplicates, i)
		}
	}
	for i := range b {
		b[i].Degree = defaultDegrees[i]
	}
	return b
}

func (b *Buckets) has(interval int) bool {
	return b[interval].InChord
}

// representative panics on an empty bucket; callers check has first.
func (b *Buckets) representative(interval int) int {
	if !b[interval].InChord {
		panic(fmt.Sprintf("interval %d has no pitch", interval))
	}
	return b[interval].Lowest
}

// withDegrees stamps the final degree table onto a copy of the buckets.
func (b Buckets) withDegrees(t DegreeTable) Buckets {
	for i := range b {
		b[i].Degree = t[i]
	}
	return b
}
