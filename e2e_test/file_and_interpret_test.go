//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/logger"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// writeProgression writes ii-V-I in C as three block chords.
func writeProgression(t *testing.T) string {
	t.Helper()
	s := smf.New()
	var tr smf.Track
	for _, notes := range [][]uint8{{50, 65, 69, 72}, {43, 65, 71, 74}, {48, 64, 67, 71}} {
		for _, n := range notes {
			tr.Add(0, gomidi.NoteOn(0, n, 100))
		}
		for i, n := range notes {
			var delta uint32
			if i == 0 {
				delta = 960
			}
			tr.Add(delta, gomidi.NoteOff(0, n))
		}
	}
	tr.Close(0)
	require.NoError(t, s.Add(tr))

	path := filepath.Join(t.TempDir(), "two-five-one.mid")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = s.WriteTo(f)
	require.NoError(t, err)
	return path
}

func TestFileChordsThroughHTTP(t *testing.T) {
	s, err := midi.ReadMidiFile(writeProgression(t))
	require.NoError(t, err)
	chords, err := chord.GetChords(s)
	require.NoError(t, err)
	require.Len(t, chords, 3)

	log, _ := logger.NewTestLogger()
	router := server.NewRouter(server.NewHandler(log, chord.NewIdentifier(), 1), []string{"*"})

	var labels []string
	for _, c := range chords {
		notes := make([]int, len(c.Notes))
		for i, n := range c.Notes {
			notes[i] = int(n)
		}
		data, err := json.Marshal(model.InterpretRequest{Notes: notes})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/interpret", bytes.NewReader(data))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var res model.InterpretResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res.Interpretations, 1)
		labels = append(labels, res.Interpretations[0].Label)
	}

	assert.Equal(t, []string{"Dm7", "G7", "Cmaj7"}, labels)
}
