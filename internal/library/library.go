package library

import (
	"sync"

	"setlist/internal/iterator"
	"setlist/pkg/models"
)

var _ iterator.Aggregate[models.Song] = (*Library)(nil)

// Library indexes songs by genre and by artist. Both indexes are
// updated together on every Add, and neither is ever exposed: callers
// only get iterators over copies of the buckets.
type Library struct {
	byGenre  map[string][]models.Song
	byArtist map[string][]models.Song

	// first-insertion order of the bucket keys, keeps flattening stable
	genres  []string
	artists []string

	count int
	mutex sync.RWMutex
}

// New creates an empty library
func New() *Library {
	return &Library{
		byGenre:  make(map[string][]models.Song),
		byArtist: make(map[string][]models.Song),
	}
}

// Add inserts songs into the genre and artist indexes
func (l *Library) Add(songs ...models.Song) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	for _, song := range songs {
		if _, exists := l.byGenre[song.Genre]; !exists {
			l.genres = append(l.genres, song.Genre)
		}
		l.byGenre[song.Genre] = append(l.byGenre[song.Genre], song)

		if _, exists := l.byArtist[song.Artist]; !exists {
			l.artists = append(l.artists, song.Artist)
		}
		l.byArtist[song.Artist] = append(l.byArtist[song.Artist], song)

		l.count++
	}
}

// Len returns the total number of songs in the library
func (l *Library) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.count
}

// Genres returns the genre names in the order they were first added
func (l *Library) Genres() []string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return append([]string(nil), l.genres...)
}

// Artists returns the artist names in the order they were first added
func (l *Library) Artists() []string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return append([]string(nil), l.artists...)
}

// CreateIterator returns an iterator over every song, grouped by genre.
// Genres appear in the order they were first added.
func (l *Library) CreateIterator() iterator.Iterator[models.Song] {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	all := make([]models.Song, 0, l.count)
	for _, genre := range l.genres {
		all = append(all, l.byGenre[genre]...)
	}
	return iterator.NewSequential(all)
}

// CreateGenreIterator returns an iterator over one genre. An unknown
// genre yields an empty iterator.
func (l *Library) CreateGenreIterator(genre string) *iterator.Sequential[models.Song] {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return iterator.NewSequential(l.byGenre[genre])
}

// CreateArtistIterator returns an iterator over one artist. An unknown
// artist yields an empty iterator.
func (l *Library) CreateArtistIterator(artist string) *iterator.Sequential[models.Song] {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return iterator.NewSequential(l.byArtist[artist])
}
