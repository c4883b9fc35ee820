package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/chordex/config"
	"github.com/jsphweid/chordex/logger"
	"github.com/jsphweid/chordex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		nameLimit = 3
		nameOutput = formatText
	})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestNameText(t *testing.T) {
	out := execute(t, "name", "--limit", "1", "C4", "E4", "G4", "Bb4")
	assert.Contains(t, out, "C7")
	assert.Contains(t, out, "major")
}

func TestNameJSON(t *testing.T) {
	out := execute(t, "name", "-o", "json", "57", "60", "64", "67")

	var res model.InterpretResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))

	assert := assert.New(t)
	assert.Equal("57-60-64-67", res.Key)
	require.Len(t, res.Interpretations, 3)
	assert.Equal("Am7", res.Interpretations[0].Label)
}

func TestNameYAML(t *testing.T) {
	out := execute(t, "name", "-o", "yaml", "-n", "1", "C4", "Eb4", "Gb4")

	var res model.InterpretResponse
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	require.Len(t, res.Interpretations, 1)
	assert.Equal(t, "C°", res.Interpretations[0].ChordName)
	assert.Equal(t, "diminished", res.Interpretations[0].Quality)
}

func TestNameBadNote(t *testing.T) {
	rootCmd.SetArgs([]string{"name", "H4"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	assert.Error(t, rootCmd.ExecuteContext(context.Background()))
}

func TestWriteResponseUnknownFormat(t *testing.T) {
	err := writeResponse(&bytes.Buffer{}, "xml", model.InterpretResponse{})
	assert.Error(t, err)
}

func TestFile(t *testing.T) {
	s := smf.New()
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 55, 100))
	tr.Add(0, midi.NoteOn(0, 59, 100))
	tr.Add(0, midi.NoteOn(0, 62, 100))
	tr.Add(0, midi.NoteOn(0, 65, 100))
	tr.Add(960, midi.NoteOff(0, 55))
	tr.Add(0, midi.NoteOff(0, 59))
	tr.Add(0, midi.NoteOff(0, 62))
	tr.Add(0, midi.NoteOff(0, 65))
	tr.Close(0)
	require.NoError(t, s.Add(tr))

	path := filepath.Join(t.TempDir(), "g7.mid")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = s.WriteTo(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	out := execute(t, "file", path)
	assert.Contains(t, out, "55-59-62-65")
	assert.Contains(t, out, "G7")
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "dev\n", execute(t, "version"))
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestHeldNotesReportsSettledChord(t *testing.T) {
	log, _ := logger.NewTestLogger()
	out := &syncBuffer{}
	held := newHeldNotes(context.Background(), config.Config{Debounce: 10 * time.Millisecond}, log, out)

	held.handle(midi.NoteOn(0, 60, 100))
	held.handle(midi.NoteOn(0, 64, 100))
	held.handle(midi.NoteOn(0, 67, 100))

	assert.Eventually(t, func() bool {
		return out.String() == "C\n"
	}, time.Second, 5*time.Millisecond)

	held.handle(midi.NoteOff(0, 67))
	held.handle(midi.NoteOn(0, 69, 100))

	assert.Eventually(t, func() bool {
		return out.String() == "C\nAm\n"
	}, time.Second, 5*time.Millisecond)
}

func TestHeldNotesSilentAfterClose(t *testing.T) {
	log, _ := logger.NewTestLogger()
	out := &syncBuffer{}
	held := newHeldNotes(context.Background(), config.Config{Debounce: 20 * time.Millisecond}, log, out)

	held.handle(midi.NoteOn(0, 60, 100))
	held.handle(midi.NoteOn(0, 64, 100))
	held.close()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, out.String())
}

func TestHeldNotesSilentAfterCancel(t *testing.T) {
	log, _ := logger.NewTestLogger()
	out := &syncBuffer{}
	ctx, cancel := context.WithCancel(context.Background())
	held := newHeldNotes(ctx, config.Config{Debounce: 20 * time.Millisecond}, log, out)

	held.handle(midi.NoteOn(0, 60, 100))
	cancel()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, out.String())
}
