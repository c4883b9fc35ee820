package model

// InterpretRequest names one chord, given either as MIDI notes or as note
// names. Bass defaults to the lowest note.
type InterpretRequest struct {
	Notes []int    `json:"notes"`
	Names []string `json:"names"`
	Limit int      `json:"limit"`
}

type InterpretationResult struct {
	Label            string   `json:"label" yaml:"label"`
	ChordName        string   `json:"chord_name" yaml:"chord_name"`
	ExtensionsPrefix string   `json:"extensions_prefix" yaml:"extensions_prefix"`
	Extensions       []string `json:"extensions" yaml:"extensions"`
	Quality          string   `json:"quality" yaml:"quality"`
	Root             string   `json:"root" yaml:"root"`
	Notes            []string `json:"notes" yaml:"notes"`
	Relevancy        float64  `json:"relevancy" yaml:"relevancy"`
}

type InterpretResponse struct {
	Key             string                 `json:"key" yaml:"key"`
	Interpretations []InterpretationResult `json:"interpretations" yaml:"interpretations"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
