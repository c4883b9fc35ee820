package cmd

import (
	"fmt"
	"time"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fileCmd)
}

var fileCmd = &cobra.Command{
	Use:   "file PATH",
	Short: "Names every chord in a MIDI file",
	Long:  `Names the set of held notes each time it changes in a standard MIDI file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}

		chords, err := chord.GetChords(s)
		if err != nil {
			return err
		}

		id := chord.NewIdentifier()
		out := cmd.OutOrStdout()
		for _, c := range chords {
			best, err := id.Best(cmd.Context(), chord.ToPitches(c.Notes))
			if err != nil {
				return err
			}
			offset := time.Duration(c.Offset) * time.Millisecond
			fmt.Fprintf(out, "%s\t%s\t%s\n", offset, chord.CreateChordKey(c.Notes), best.Label())
		}
		return nil
	},
}
