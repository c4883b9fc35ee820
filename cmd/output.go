package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsphweid/chordex/model"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func writeResponse(w io.Writer, format string, res model.InterpretResponse) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(res)
	case formatText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, r := range res.Interpretations {
			fmt.Fprintf(tw, "%s\t%s\t%.1f\t%v\n", r.Label, r.Quality, r.Relevancy, r.Notes)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
