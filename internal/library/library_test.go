package library

import (
	"fmt"
	"testing"

	"setlist/internal/iterator"
	"setlist/pkg/models"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

var (
	songX = models.Song{Title: "X", Artist: "Led Zeppelin", Genre: "Rock", Duration: 482, Year: 1971}
	songY = models.Song{Title: "Y", Artist: "Madonna", Genre: "Pop", Duration: 240, Year: 1984}
	songZ = models.Song{Title: "Z", Artist: "Led Zeppelin", Genre: "Rock", Duration: 277, Year: 1969}
)

func drain(t *testing.T, it iterator.Iterator[models.Song]) []models.Song {
	t.Helper()
	var out []models.Song
	for it.HasNext() {
		s, err := it.Next()
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func TestLibrary_AbsentGenreIsEmpty(t *testing.T) {
	l := New()
	l.Add(songX, songY)

	it := l.CreateGenreIterator("Jazz")
	assert.False(t, it.HasNext())
	_, err := it.Next()
	assert.ErrorIs(t, err, iterator.ErrExhausted)

	assert.False(t, l.CreateArtistIterator("Miles Davis").HasNext())
}

func TestLibrary_Indexes(t *testing.T) {
	l := New()
	l.Add(songX, songY, songZ)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"Rock", "Pop"}, l.Genres())
	assert.Equal(t, []string{"Led Zeppelin", "Madonna"}, l.Artists())

	assert.Equal(t, []models.Song{songX, songZ}, drain(t, l.CreateGenreIterator("Rock")))
	assert.Equal(t, []models.Song{songY}, drain(t, l.CreateGenreIterator("Pop")))
	assert.Equal(t, []models.Song{songX, songZ}, drain(t, l.CreateArtistIterator("Led Zeppelin")))
	assert.Equal(t, []models.Song{songY}, drain(t, l.CreateArtistIterator("Madonna")))
}

func TestLibrary_CreateIterator(t *testing.T) {
	l := New()
	l.Add(songX, songY, songZ)

	first := drain(t, l.CreateIterator())
	assert.Equal(t, []models.Song{songX, songZ, songY}, first)

	// stable for a given state
	assert.Equal(t, first, drain(t, l.CreateIterator()))
}

func TestLibrary_EveryAddedSongReachableByBothIndexes(t *testing.T) {
	l := New()
	genres := []string{"Rock", "Pop", "Jazz", "Blues"}

	var added []models.Song
	for i := 0; i < 100; i++ {
		s := models.Song{
			Title:    randomdata.SillyName(),
			Artist:   randomdata.FullName(randomdata.RandomGender),
			Genre:    genres[randomdata.Number(len(genres))],
			Duration: randomdata.Number(60, 600),
			Year:     randomdata.Number(1950, 2025),
		}
		l.Add(s)
		added = append(added, s)
	}

	assert.ElementsMatch(t, added, drain(t, l.CreateIterator()))
	for _, s := range added {
		assert.Contains(t, drain(t, l.CreateGenreIterator(s.Genre)), s)
		assert.Contains(t, drain(t, l.CreateArtistIterator(s.Artist)), s)
	}
}

func TestLibrary_SnapshotIsolation(t *testing.T) {
	l := New()
	l.Add(songX)

	all := l.CreateIterator()
	rock := l.CreateGenreIterator("Rock")
	zep := l.CreateArtistIterator("Led Zeppelin")

	l.Add(songY, songZ)

	assert.Equal(t, []models.Song{songX}, drain(t, all))
	assert.Equal(t, []models.Song{songX}, drain(t, rock))
	assert.Equal(t, []models.Song{songX}, drain(t, zep))
}

func TestLibrary_ConcurrentAddAndIterate(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := New()
	var g errgroup.Group
	for w := 0; w < 4; w++ {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				l.Add(songX, songY)
			}
			return nil
		})
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				// each Add inserts a pair, so a whole snapshot is always even
				if n := len(drainQuiet(l.CreateIterator())); n%2 != 0 {
					return fmt.Errorf("snapshot saw a partial add: %d songs", n)
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, 800, l.Len())
}

func drainQuiet(it iterator.Iterator[models.Song]) []models.Song {
	var out []models.Song
	for it.HasNext() {
		s, _ := it.Next()
		out = append(out, s)
	}
	return out
}
