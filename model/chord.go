package model

type Notes = []uint8

// Chord is a set of notes sounding together somewhere in a MIDI file.
type Chord struct {
	// storing millis, accurate enough for display
	Offset uint32
	Notes  Notes
}

type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}
