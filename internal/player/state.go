package player

import (
	"sync"
	"time"

	"setlist/pkg/models"
)

// State represents what the player is doing right now
type State struct {
	PlayID    string       `json:"playId,omitempty"`
	Label     string       `json:"label,omitempty"`
	Song      *models.Song `json:"song,omitempty"`
	IsPlaying bool         `json:"isPlaying"`
	Position  int          `json:"position"` // 1-based index of Song in the run
	Total     int          `json:"total"`    // songs in the run, 0 if unknown
	UpdatedAt time.Time    `json:"updatedAt"`
}

// StateManager tracks the player state and notifies listeners
type StateManager struct {
	state     *State
	mutex     sync.RWMutex
	listeners []chan *State
}

// NewStateManager creates a new player state manager
func NewStateManager() *StateManager {
	return &StateManager{
		state: &State{
			UpdatedAt: time.Now(),
		},
		listeners: make([]chan *State, 0),
	}
}

// GetState returns a copy of the current state
func (sm *StateManager) GetState() *State {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	stateCopy := *sm.state
	return &stateCopy
}

// Start marks the beginning of a run over an iterator
func (sm *StateManager) Start(playID, label string, total int) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.state = &State{
		PlayID:    playID,
		Label:     label,
		IsPlaying: true,
		Total:     total,
		UpdatedAt: time.Now(),
	}
	sm.notifyListeners()
}

// UpdateSong records the song now playing and its position in the run
func (sm *StateManager) UpdateSong(song models.Song, position int) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.state.Song = &song
	sm.state.Position = position
	sm.state.UpdatedAt = time.Now()
	sm.notifyListeners()
}

// Stop clears the current song when a run ends
func (sm *StateManager) Stop() {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.state.Song = nil
	sm.state.IsPlaying = false
	sm.state.UpdatedAt = time.Now()
	sm.notifyListeners()
}

// Subscribe adds a listener for state changes
func (sm *StateManager) Subscribe() <-chan *State {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	ch := make(chan *State, 10) // Buffered channel to prevent blocking
	sm.listeners = append(sm.listeners, ch)
	return ch
}

// Unsubscribe removes a listener and closes its channel
func (sm *StateManager) Unsubscribe(ch <-chan *State) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	for i, listener := range sm.listeners {
		if listener == ch {
			close(listener)
			sm.listeners = append(sm.listeners[:i], sm.listeners[i+1:]...)
			break
		}
	}
}

// notifyListeners sends a state copy to every subscriber (must be called with lock held).
// Listeners that fall behind are dropped and their channel closed.
func (sm *StateManager) notifyListeners() {
	kept := sm.listeners[:0]
	for _, listener := range sm.listeners {
		stateCopy := *sm.state
		select {
		case listener <- &stateCopy:
			kept = append(kept, listener)
		default:
			close(listener)
		}
	}
	sm.listeners = kept
}
