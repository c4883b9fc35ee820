package cmd

import (
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/server"
	"github.com/spf13/cobra"
)

var (
	nameLimit  int
	nameOutput string
)

func init() {
	nameCmd.Flags().IntVarP(&nameLimit, "limit", "n", 3, "max interpretations to show, 0 for all")
	nameCmd.Flags().StringVarP(&nameOutput, "output", "o", formatText, "output format: text, json or yaml")
	rootCmd.AddCommand(nameCmd)
}

var nameCmd = &cobra.Command{
	Use:     "name NOTE...",
	Short:   "Names the chord formed by the given notes",
	Long:    `Names the chord formed by the given notes, e.g. "chordex name C4 E4 G4 Bb4" or "chordex name 60 64 67".`,
	Args:    cobra.MinimumNArgs(1),
	Example: "  chordex name C3 G3 E4 Bb4 D5\n  chordex name -o json 57 60 64 67",
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := pitch.ParseAll(args)
		if err != nil {
			return err
		}

		id := chord.NewIdentifier(chord.WithLimit(nameLimit))
		interpretations, err := id.Identify(cmd.Context(), pitches)
		if err != nil {
			return err
		}

		return writeResponse(cmd.OutOrStdout(), nameOutput, model.InterpretResponse{
			Key:             chord.PitchKey(pitches),
			Interpretations: server.ToResults(interpretations),
		})
	},
}
