package main

import (
	"bytes"
	"fmt"
	"io"

	"setlist/internal/adapters"
	"setlist/internal/catalog"
	"setlist/internal/config"
	"setlist/internal/iterator"
	"setlist/internal/logging"
	"setlist/internal/player"
	"setlist/pkg/models"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// session holds everything the commands share once Before has run
type session struct {
	cfg     *config.Config
	logger  *logrus.Logger
	closeFn func() error
	catalog *catalog.Catalog
	out     io.Writer
}

func (s *session) player() *player.Player {
	return player.New(s.out, s.logger)
}

// traversal is one labelled run of the player
type traversal struct {
	label string
	it    iterator.Iterator[models.Song]
}

// shuffleOptions returns the seed option when a seed is configured
func (s *session) shuffleOptions() []iterator.ShuffleOption {
	if s.cfg.Playback.ShuffleSeed == 0 {
		return nil
	}
	return []iterator.ShuffleOption{iterator.WithSeed(s.cfg.Playback.ShuffleSeed)}
}

func newApp(out io.Writer) *cli.App {
	s := &session{out: out}

	return &cli.App{
		Name:      "setlist",
		Usage:     "Walk a music playlist and library with different iterators",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "./setlist.toml",
				Usage: "path to the TOML configuration file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "optional .env file with SETLIST_* overrides",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "shuffle seed, overrides the config (0 = random)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Before: func(c *cli.Context) error {
			return s.setup(c)
		},
		After: func(c *cli.Context) error {
			if s.closeFn == nil {
				return nil
			}
			return s.closeFn()
		},
		Action: s.runDemo,
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "Run every traversal over the sample catalog",
				Action: s.runDemo,
			},
			{
				Name:   "shuffle",
				Usage:  "Play the playlist in shuffled order",
				Action: s.runShuffle,
			},
			{
				Name:      "genre",
				Usage:     "Play the playlist songs of one genre",
				ArgsUsage: "GENRE",
				Action:    s.runGenre,
			},
			{
				Name:   "parallel",
				Usage:  "Drain several independent iterators concurrently",
				Action: s.runParallel,
			},
		},
	}
}

func (s *session) setup(c *cli.Context) error {
	if err := config.LoadEnvFile(c.String("env-file")); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return fmt.Errorf("error applying environment: %w", err)
	}

	if c.IsSet("seed") {
		cfg.Playback.ShuffleSeed = c.Int64("seed")
	}
	if c.IsSet("log-level") {
		cfg.Logging.Level = c.String("log-level")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, closeFn, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}

	s.cfg = cfg
	s.logger = logger
	s.closeFn = closeFn
	s.catalog = catalog.FromSongs(cfg.Catalog)

	logger.WithFields(logrus.Fields{
		"songs":       s.catalog.Len(),
		"shuffleSeed": cfg.Playback.ShuffleSeed,
	}).Debug("Configuration loaded")
	return nil
}

func (s *session) runDemo(c *cli.Context) error {
	pl := s.catalog.Playlist("Favorites")
	lib := s.catalog.Library()
	p := s.player()
	cutoff := s.cfg.Playback.OldiesCutoff

	runs := []traversal{
		{"Playlist: " + pl.Name(), pl.CreateIterator()},
		{"Shuffled", pl.CreateShuffleIterator(s.shuffleOptions()...)},
		{"Genre: " + s.cfg.Playback.Genre, pl.CreateGenreIterator(s.cfg.Playback.Genre)},
		{fmt.Sprintf("Oldies before %d", cutoff), pl.CreateOldiesIterator(cutoff)},
		{"Library", lib.CreateIterator()},
		{"Library artist: " + s.cfg.Playback.Artist, lib.CreateArtistIterator(s.cfg.Playback.Artist)},
		{"Array", adapters.NewArray(s.catalog.Songs()).CreateIterator()},
		{"Queue", adapters.NewQueue[models.Song](s.catalog.Queue()).CreateIterator()},
	}
	for _, genre := range lib.Genres() {
		runs = append(runs, traversal{"Library genre: " + genre, lib.CreateGenreIterator(genre)})
	}

	for _, run := range runs {
		if _, err := p.Play(run.label, run.it); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) runShuffle(c *cli.Context) error {
	pl := s.catalog.Playlist("Favorites")
	_, err := s.player().Play("Shuffled", pl.CreateShuffleIterator(s.shuffleOptions()...))
	return err
}

func (s *session) runGenre(c *cli.Context) error {
	genre := c.Args().First()
	if genre == "" {
		genre = s.cfg.Playback.Genre
	}

	pl := s.catalog.Playlist("Favorites")
	_, err := s.player().Play("Genre: "+genre, pl.CreateGenreIterator(genre))
	return err
}

// runParallel drains independent iterators over one playlist from
// separate goroutines. Each gets its own player and buffer, and the
// buffers are printed in a fixed order afterwards.
func (s *session) runParallel(c *cli.Context) error {
	pl := s.catalog.Playlist("Favorites")

	labels := []string{"Sequential", "Shuffled", "Genre: " + s.cfg.Playback.Genre, "Oldies"}
	iterators := []iterator.Iterator[models.Song]{
		pl.CreateIterator(),
		pl.CreateShuffleIterator(s.shuffleOptions()...),
		pl.CreateGenreIterator(s.cfg.Playback.Genre),
		pl.CreateOldiesIterator(s.cfg.Playback.OldiesCutoff),
	}

	buffers := make([]bytes.Buffer, len(iterators))
	counts := make([]int, len(iterators))

	var g errgroup.Group
	for i := range iterators {
		g.Go(func() error {
			n, err := player.New(&buffers[i], s.logger).Play(labels[i], iterators[i])
			counts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range buffers {
		if _, err := buffers[i].WriteTo(s.out); err != nil {
			return err
		}
	}

	fmt.Fprintln(s.out)
	for i, label := range labels {
		fmt.Fprintf(s.out, "%-20s %d songs\n", label, counts[i])
	}
	return nil
}
