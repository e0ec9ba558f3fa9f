package repository

import (
	"errors"
	"sync"
)

var ErrBadTheme = errors.New("unsupported theme")

// Preferences keeps user preferences in process memory. There is no
// persistence layer in this backend, so the values live and die with
// the process, same as the rest of its state.
type Preferences struct {
	mu    sync.RWMutex
	theme string
}

func NewPreferences() *Preferences {
	return &Preferences{theme: "light"}
}

func (p *Preferences) Theme() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

func (p *Preferences) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return ErrBadTheme
	}
	p.mu.Lock()
	p.theme = theme
	p.mu.Unlock()
	return nil
}
