package chord

import (
	"context"
	"errors"
	"sort"

	"github.com/jsphweid/chordex/interpret"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
	"golang.org/x/sync/errgroup"
)

var ErrNoPitches = errors.New("no pitches to identify")

// Candidate is one root to try, with the bass the chord is heard over.
type Candidate struct {
	Root pitch.Pitch
	Bass pitch.Pitch
}

// RootStrategy proposes the candidate roots for a pitch set.
type RootStrategy interface {
	Candidates(pitches []pitch.Pitch) []Candidate
}

type RootStrategyFunc func(pitches []pitch.Pitch) []Candidate

func (f RootStrategyFunc) Candidates(pitches []pitch.Pitch) []Candidate {
	return f(pitches)
}

// EveryPitchClass tries each sounded pitch class once, rooted on its
// lowest occurrence, over the lowest sounded pitch.
var EveryPitchClass RootStrategy = RootStrategyFunc(everyPitchClass)

func everyPitchClass(pitches []pitch.Pitch) []Candidate {
	if len(pitches) == 0 {
		return nil
	}

	bass := pitches[0]
	lowest := make(map[int]pitch.Pitch)
	for _, p := range pitches {
		if p.MIDI < bass.MIDI {
			bass = p
		}
		if cur, ok := lowest[p.PitchClass()]; !ok || p.MIDI < cur.MIDI {
			lowest[p.PitchClass()] = p
		}
	}

	classes := util.GetKeys(lowest)
	sort.Ints(classes)

	res := make([]Candidate, 0, len(classes))
	for _, pc := range classes {
		res = append(res, Candidate{Root: lowest[pc], Bass: bass})
	}
	return res
}

// Identifier ranks every candidate reading of a pitch set.
type Identifier struct {
	strategy RootStrategy
	limit    int
}

type Option func(*Identifier)

func WithStrategy(s RootStrategy) Option {
	return func(id *Identifier) {
		id.strategy = s
	}
}

// WithLimit caps the number of interpretations returned; 0 keeps all.
func WithLimit(n int) Option {
	return func(id *Identifier) {
		id.limit = n
	}
}

func NewIdentifier(opts ...Option) *Identifier {
	id := &Identifier{strategy: EveryPitchClass}
	for _, opt := range opts {
		opt(id)
	}
	return id
}

// Identify evaluates every candidate root concurrently and returns the
// interpretations most relevant first. Equal scores keep the lower root
// first.
func (id *Identifier) Identify(ctx context.Context, pitches []pitch.Pitch) ([]interpret.Interpretation, error) {
	if len(pitches) == 0 {
		return nil, ErrNoPitches
	}

	candidates := id.strategy.Candidates(pitches)
	results := make([]interpret.Interpretation, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = interpret.Evaluate(c.Root, c.Bass, pitches)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Relevancy != results[j].Relevancy {
			return results[i].Relevancy > results[j].Relevancy
		}
		return results[i].Root.MIDI < results[j].Root.MIDI
	})

	if id.limit > 0 {
		results = results[:util.Min(id.limit, len(results))]
	}
	return results, nil
}

// Best returns the most relevant interpretation.
func (id *Identifier) Best(ctx context.Context, pitches []pitch.Pitch) (interpret.Interpretation, error) {
	res, err := id.Identify(ctx, pitches)
	if err != nil {
		return interpret.Interpretation{}, err
	}
	if len(res) == 0 {
		return interpret.Interpretation{}, ErrNoPitches
	}
	return res[0], nil
}

// Identify runs the default identifier.
func Identify(ctx context.Context, pitches []pitch.Pitch) ([]interpret.Interpretation, error) {
	return NewIdentifier().Identify(ctx, pitches)
}
