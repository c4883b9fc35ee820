package chord

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

type OnNotes = map[uint8]bool

// CreateChordKey joins the sorted notes with dashes, e.g. "60-64-67".
// The input slice is left untouched.
func CreateChordKey(notes []uint8) string {
	sorted := make([]uint8, len(notes))
	copy(sorted, notes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = strconv.Itoa(int(note))
	}
	return strings.Join(parts, "-")
}

// PitchKey is CreateChordKey for pitches, which may fall outside uint8.
func PitchKey(pitches []pitch.Pitch) string {
	midis := make([]int, len(pitches))
	for i, p := range pitches {
		midis[i] = p.MIDI
	}
	sort.Ints(midis)

	parts := make([]string, len(midis))
	for i, m := range midis {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, "-")
}

// ToPitches turns raw MIDI notes into pitches with default readings.
func ToPitches(notes model.Notes) []pitch.Pitch {
	res := make([]pitch.Pitch, len(notes))
	for i, n := range notes {
		res[i] = pitch.New(int(n))
	}
	return res
}

func OnNotesToPitches(on OnNotes) []pitch.Pitch {
	notes := make(model.Notes, 0, len(on))
	for note, held := range on {
		if held {
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	return ToPitches(notes)
}

func getChord(pressed map[uint8]int64, offset int64) model.Chord {
	var c model.Chord
	for note := range pressed {
		c.Notes = append(c.Notes, note)
	}
	sort.Slice(c.Notes, func(i, j int) bool {
		return c.Notes[i] < c.Notes[j]
	})

	// storing it in millis for space savings (32 vs. 64)
	// millis gives us 1200 hours max length which is obviously
	// totally sufficient
	c.Offset = uint32(offset / 1000)
	return c
}

// GetChords sweeps the note on/off events of every track in time order and
// returns the set of held notes after each moment something changed.
func GetChords(s *smf.SMF) (chords []model.Chord, err error) {
	// gomidi can panic on malformed tracks
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not read chords: %v", r)
		}
	}()

	var reducedEvents []model.ReducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: false,
					Note:      key,
				})
			case event.Message.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    absTime,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToChords := make(map[int64]model.Chord)
	pressed := make(map[uint8]int64)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = evt.Offset
		}
		timestampToChords[evt.Offset] = getChord(pressed, evt.Offset)
	}

	offsets := util.GetKeys(timestampToChords)
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	for _, k := range offsets {
		c := timestampToChords[k]
		if len(c.Notes) > 0 {
			chords = append(chords, c)
		}
	}
	return chords, nil
}
