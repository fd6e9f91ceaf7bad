package playlist

import (
	"strings"
	"sync"

	"setlist/internal/iterator"
	"setlist/pkg/models"
)

// DefaultOldiesCutoff is the release year before which a song counts as an oldie
const DefaultOldiesCutoff = 2000

var _ iterator.Aggregate[models.Song] = (*Playlist)(nil)

// Playlist is a named, ordered collection of songs. It only grows
// through Add, and it never hands out its internal slice: every
// iterator gets a copy taken under the read lock.
type Playlist struct {
	name  string
	songs []models.Song
	mutex sync.RWMutex
}

// New creates an empty playlist
func New(name string) *Playlist {
	return &Playlist{
		name:  name,
		songs: make([]models.Song, 0),
	}
}

// Name returns the playlist name
func (p *Playlist) Name() string {
	return p.name
}

// Len returns the number of songs currently in the playlist
func (p *Playlist) Len() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return len(p.songs)
}

// Add appends songs to the end of the playlist
func (p *Playlist) Add(songs ...models.Song) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.songs = append(p.songs, songs...)
}

// CreateIterator returns an iterator over all songs in insertion order
func (p *Playlist) CreateIterator() iterator.Iterator[models.Song] {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return iterator.NewSequential(p.songs)
}

// CreateShuffleIterator returns an iterator over all songs in random order.
// Pass iterator.WithSeed for a reproducible order.
func (p *Playlist) CreateShuffleIterator(opts ...iterator.ShuffleOption) *iterator.Shuffle[models.Song] {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return iterator.NewShuffle(p.songs, opts...)
}

// CreateGenreIterator returns an iterator over the songs of a genre,
// compared case-insensitively
func (p *Playlist) CreateGenreIterator(genre string) *iterator.Filter[models.Song] {
	return p.filter(func(s models.Song) bool {
		return strings.EqualFold(s.Genre, genre)
	})
}

// CreateArtistIterator returns an iterator over the songs of an artist,
// compared case-insensitively
func (p *Playlist) CreateArtistIterator(artist string) *iterator.Filter[models.Song] {
	return p.filter(func(s models.Song) bool {
		return strings.EqualFold(s.Artist, artist)
	})
}

// CreateLongerThanIterator returns an iterator over songs lasting more than seconds
func (p *Playlist) CreateLongerThanIterator(seconds int) *iterator.Filter[models.Song] {
	return p.filter(func(s models.Song) bool {
		return s.Duration > seconds
	})
}

// CreateOldiesIterator returns the songs released before cutoff,
// oldest first. Songs from the same year keep their playlist order.
func (p *Playlist) CreateOldiesIterator(cutoff int) *iterator.Filter[models.Song] {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return iterator.NewSortedFilter(p.songs,
		func(s models.Song) bool { return s.Year < cutoff },
		func(s models.Song) int { return s.Year },
	)
}

func (p *Playlist) filter(keep func(models.Song) bool) *iterator.Filter[models.Song] {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return iterator.NewFilter(p.songs, keep)
}
