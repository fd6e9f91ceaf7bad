package models

import "fmt"

// Song represents a single song. It is a plain value and is never
// modified after construction, so copies can be shared freely.
type Song struct {
	Title    string `json:"title" toml:"title"`
	Artist   string `json:"artist" toml:"artist"`
	Genre    string `json:"genre" toml:"genre"`
	Duration int    `json:"duration" toml:"duration"` // in seconds
	Year     int    `json:"year" toml:"year"`
}

// FormatDuration renders the duration as m:ss
func (s Song) FormatDuration() string {
	if s.Duration < 0 {
		return "0:00"
	}
	return fmt.Sprintf("%d:%02d", s.Duration/60, s.Duration%60)
}

// String returns a human readable description of the song
func (s Song) String() string {
	return fmt.Sprintf("%s - %s (%s, %d) [%s]", s.Title, s.Artist, s.Genre, s.Year, s.FormatDuration())
}
