package player

import (
	"fmt"
	"io"

	"setlist/internal/iterator"
	"setlist/pkg/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Player drains song iterators and renders each song to a writer.
// It only knows the iterator contract, never which container or
// strategy produced the iterator.
type Player struct {
	out    io.Writer
	logger *logrus.Logger
	state  *StateManager
}

// Option configures a Player
type Option func(*Player)

// WithStateManager makes the player report progress to sm
func WithStateManager(sm *StateManager) Option {
	return func(p *Player) {
		p.state = sm
	}
}

// New creates a player writing to out. A nil logger gets a default one.
func New(out io.Writer, logger *logrus.Logger, opts ...Option) *Player {
	if logger == nil {
		logger = logrus.New()
	}

	p := &Player{
		out:    out,
		logger: logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.state == nil {
		p.state = NewStateManager()
	}
	return p
}

// State returns the state manager the player reports to
func (p *Player) State() *StateManager {
	return p.state
}

// sized is implemented by the iterators in this module
type sized interface {
	Remaining() int
}

// Play drains it, writing a header line and one line per song.
// It returns the number of songs played.
func (p *Player) Play(label string, it iterator.Iterator[models.Song]) (int, error) {
	playID := uuid.New().String()
	logEntry := p.logger.WithFields(logrus.Fields{
		"playId": playID,
		"label":  label,
	})

	total := 0
	if s, ok := it.(sized); ok {
		total = s.Remaining()
	}

	if _, err := fmt.Fprintf(p.out, "\n=== %s ===\n", label); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	p.state.Start(playID, label, total)
	defer p.state.Stop()

	played := 0
	for it.HasNext() {
		song, err := it.Next()
		if err != nil {
			logEntry.WithError(err).Error("Failed to advance iterator")
			return played, fmt.Errorf("failed to play %q: %w", label, err)
		}

		played++
		p.state.UpdateSong(song, played)

		if _, err := fmt.Fprintf(p.out, "  %2d. %s\n", played, song); err != nil {
			return played, fmt.Errorf("failed to write song: %w", err)
		}

		logEntry.WithFields(logrus.Fields{
			"position": played,
			"title":    song.Title,
			"artist":   song.Artist,
		}).Debug("Playing song")
	}

	if played == 0 {
		if _, err := fmt.Fprintln(p.out, "  (nothing to play)"); err != nil {
			return 0, fmt.Errorf("failed to write song: %w", err)
		}
	}

	logEntry.WithField("played", played).Info("Finished playing")
	return played, nil
}

// PlayAll plays a fresh iterator from agg
func (p *Player) PlayAll(label string, agg iterator.Aggregate[models.Song]) (int, error) {
	return p.Play(label, agg.CreateIterator())
}
