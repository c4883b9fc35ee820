package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/interpret"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// maxResults bounds a request's limit; there are never more candidate
// roots than pitch classes.
const maxResults = 12

type Identifier interface {
	Identify(ctx context.Context, pitches []pitch.Pitch) ([]interpret.Interpretation, error)
}

// Handler serves chord interpretations over HTTP.
type Handler struct {
	log          *zap.SugaredLogger
	identifier   Identifier
	defaultLimit int
}

func NewHandler(log *zap.SugaredLogger, identifier Identifier, defaultLimit int) *Handler {
	return &Handler{
		log:          log,
		identifier:   identifier,
		defaultLimit: defaultLimit,
	}
}

// NewRouter wires the routes and wraps them in CORS for the given origins.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/health", h.HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/interpret", h.HandleInterpret).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "OK"})
}

func (h *Handler) HandleInterpret(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	log := h.log.With("request_id", reqID)

	var input model.InterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Infow("could not decode request", "error", err)
		writeError(w, http.StatusBadRequest, "could not decode request body")
		return
	}

	pitches, err := requestPitches(input)
	if err != nil {
		log.Infow("bad notes", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	interpretations, err := h.identifier.Identify(r.Context(), pitches)
	if err != nil {
		if errors.Is(err, chord.ErrNoPitches) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Errorw("could not identify chord", "error", err)
		writeError(w, http.StatusInternalServerError, "could not identify chord")
		return
	}

	limit := h.defaultLimit
	if input.Limit > 0 {
		limit = input.Limit
	}
	limit = util.Clamp(limit, 1, maxResults)
	if len(interpretations) > limit {
		interpretations = interpretations[:limit]
	}

	res := model.InterpretResponse{
		Key:             chord.PitchKey(pitches),
		Interpretations: ToResults(interpretations),
	}
	if len(res.Interpretations) > 0 {
		log.Infow("identified chord", "key", res.Key, "label", res.Interpretations[0].Label)
	}
	writeJSON(w, http.StatusOK, res)
}

func requestPitches(input model.InterpretRequest) ([]pitch.Pitch, error) {
	if len(input.Notes) > 0 && len(input.Names) > 0 {
		return nil, errors.New("send notes or names, not both")
	}
	if len(input.Names) > 0 {
		return pitch.ParseAll(input.Names)
	}
	res := make([]pitch.Pitch, len(input.Notes))
	for i, n := range input.Notes {
		res[i] = pitch.New(n)
	}
	return res, nil
}

// ToResults flattens interpretations for display.
func ToResults(in []interpret.Interpretation) []model.InterpretationResult {
	res := make([]model.InterpretationResult, 0, len(in))
	for _, i := range in {
		res = append(res, model.InterpretationResult{
			Label:            i.Label(),
			ChordName:        i.ChordName,
			ExtensionsPrefix: i.ExtensionsPrefix,
			Extensions:       i.Extensions,
			Quality:          string(i.Quality),
			Root:             i.Root.Spelling.Name(),
			Notes:            i.NoteNames(),
			Relevancy:        i.Relevancy,
		})
	}
	return res
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}
