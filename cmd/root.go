package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordex",
	Short: "Names chords",
	Long: `Names the chord formed by a set of pitches, from note names, a MIDI
file, a live MIDI keyboard or over HTTP.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
