package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/config"
	"github.com/jsphweid/chordex/logger"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
	"go.uber.org/zap"
)

var (
	listenPort     int
	listenDebounce time.Duration
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "midi-port", 0, "MIDI input port, overrides CHORDEX_MIDI_PORT")
	listenCmd.Flags().DurationVar(&listenDebounce, "debounce", 50*time.Millisecond, "settle time, overrides CHORDEX_DEBOUNCE")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords played on a MIDI keyboard",
	Long: `Listens on the MIDI input port CHORDEX_MIDI_PORT and prints the best
name for the held notes once they settle for CHORDEX_DEBOUNCE.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.ProvideConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("midi-port") {
			cfg.MidiPort = listenPort
		}
		if cmd.Flags().Changed("debounce") {
			cfg.Debounce = listenDebounce
		}
		log, err := logger.ProvideLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return listen(ctx, cfg, log, cmd.OutOrStdout())
	},
}

// heldNotes tracks which keys are down and reports the chord they form
// after the debounce window.
type heldNotes struct {
	mu       sync.Mutex
	on       chord.OnNotes
	last     string
	closed   bool
	debounce func(func())
	id       *chord.Identifier
	log      *zap.SugaredLogger
	out      io.Writer
	ctx      context.Context
}

func newHeldNotes(ctx context.Context, cfg config.Config, log *zap.SugaredLogger, out io.Writer) *heldNotes {
	return &heldNotes{
		on:       make(chord.OnNotes),
		debounce: debounce.New(cfg.Debounce),
		id:       chord.NewIdentifier(chord.WithLimit(1)),
		log:      log,
		out:      out,
		ctx:      ctx,
	}
}

func (h *heldNotes) handle(msg midi.Message) {
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		h.mu.Lock()
		h.on[key] = true
		h.mu.Unlock()
	case msg.GetNoteEnd(&ch, &key):
		h.mu.Lock()
		delete(h.on, key)
		h.mu.Unlock()
	default:
		return
	}
	h.debounce(h.report)
}

func (h *heldNotes) report() {
	if h.ctx.Err() != nil {
		return
	}

	h.mu.Lock()
	pitches := chord.OnNotesToPitches(h.on)
	if len(pitches) == 0 {
		h.last = ""
	}
	h.mu.Unlock()

	if len(pitches) == 0 {
		return
	}

	best, err := h.id.Best(h.ctx, pitches)
	if err != nil {
		h.log.Debugw("could not name held notes", "error", err)
		return
	}

	label := best.Label()
	key := chord.PitchKey(pitches)

	// writes happen under the lock so close can fence them off
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || key == h.last {
		return
	}
	h.last = key
	fmt.Fprintln(h.out, label)
	h.log.Debugw("held chord", "key", key, "label", label)
}

// close drops any report still waiting on the debounce timer.
func (h *heldNotes) close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
}

func listen(ctx context.Context, cfg config.Config, log *zap.SugaredLogger, out io.Writer) error {
	defer midi.CloseDriver()

	in, err := midi.InPort(cfg.MidiPort)
	if err != nil {
		return fmt.Errorf("could not open midi port %d: %w", cfg.MidiPort, err)
	}
	log.Infow("listening", "port", in.String())

	held := newHeldNotes(ctx, cfg, log, out)
	defer held.close()
	stopListening, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		held.handle(msg)
	})
	if err != nil {
		return fmt.Errorf("could not listen to midi port: %w", err)
	}
	defer stopListening()

	<-ctx.Done()
	return nil
}
