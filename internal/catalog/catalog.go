package catalog

import (
	"container/list"

	"setlist/internal/library"
	"setlist/internal/playlist"
	"setlist/pkg/models"
)

// Catalog is a fixed list of songs used to populate the demo containers
type Catalog struct {
	songs []models.Song
}

var sampleSongs = []models.Song{
	{Title: "Bohemian Rhapsody", Artist: "Queen", Genre: "Rock", Duration: 354, Year: 1975},
	{Title: "Imagine", Artist: "John Lennon", Genre: "Pop", Duration: 183, Year: 1971},
	{Title: "Smells Like Teen Spirit", Artist: "Nirvana", Genre: "Rock", Duration: 301, Year: 1991},
	{Title: "Billie Jean", Artist: "Michael Jackson", Genre: "Pop", Duration: 294, Year: 1982},
	{Title: "So What", Artist: "Miles Davis", Genre: "Jazz", Duration: 562, Year: 1959},
	{Title: "Don't Stop Me Now", Artist: "Queen", Genre: "Rock", Duration: 209, Year: 1978},
	{Title: "Blinding Lights", Artist: "The Weeknd", Genre: "Pop", Duration: 200, Year: 2019},
	{Title: "Seven Nation Army", Artist: "The White Stripes", Genre: "Rock", Duration: 232, Year: 2003},
	{Title: "Take Five", Artist: "Dave Brubeck", Genre: "Jazz", Duration: 324, Year: 1959},
	{Title: "Rolling in the Deep", Artist: "Adele", Genre: "Pop", Duration: 228, Year: 2010},
}

// Default returns the built-in sample catalog
func Default() *Catalog {
	return New(sampleSongs)
}

// New returns a catalog of a copy of songs
func New(songs []models.Song) *Catalog {
	return &Catalog{songs: append([]models.Song(nil), songs...)}
}

// FromSongs returns a catalog of songs, or the default one when songs is empty
func FromSongs(songs []models.Song) *Catalog {
	if len(songs) == 0 {
		return Default()
	}
	return New(songs)
}

// Len returns the number of songs in the catalog
func (c *Catalog) Len() int {
	return len(c.songs)
}

// Songs returns a copy of the catalog songs
func (c *Catalog) Songs() []models.Song {
	return append([]models.Song(nil), c.songs...)
}

// Playlist returns a new playlist holding every song in catalog order
func (c *Catalog) Playlist(name string) *playlist.Playlist {
	p := playlist.New(name)
	p.Add(c.songs...)
	return p
}

// Library returns a new library holding every song
func (c *Catalog) Library() *library.Library {
	l := library.New()
	l.Add(c.songs...)
	return l
}

// Queue returns a new FIFO queue holding every song
func (c *Catalog) Queue() *list.List {
	q := list.New()
	for _, song := range c.songs {
		q.PushBack(song)
	}
	return q
}
