// Package app provides session state, events, and application lifecycle
// helpers for the viewer.
package app

import (
	"sync"

	"chartqa-viewer/internal/config"
	"chartqa-viewer/internal/dataset"
)

// EventType identifies different application events.
type EventType int

const (
	EventDatasetLoaded EventType = iota
	EventSampleLoaded
	EventStatus
)

// EventListener is called when an event occurs.
type EventListener func(data any)

// State holds one viewer session: the active configuration, the immutable
// catalog, and the current position within it.
type State struct {
	mu sync.RWMutex

	cfg       config.Config
	catalog   dataset.Catalog
	navigator *dataset.Navigator
	position  int

	listeners map[EventType][]EventListener
}

// NewState creates a session with no dataset loaded. Every navigation call
// returns the degenerate empty view until LoadDataset succeeds.
func NewState() *State {
	return &State{
		navigator: dataset.NewNavigator(dataset.Catalog{}, nil),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data any) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Notify emits a human-readable status message.
func (s *State) Notify(msg string) {
	s.Emit(EventStatus, msg)
}

// LoadDataset validates cfg, scans the figures root, and installs a fresh
// catalog and resolver. The position resets to the start of the catalog.
func (s *State) LoadDataset(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	catalog, err := dataset.Scan(cfg.Dataset.FiguresDir)
	if err != nil {
		return err
	}
	resolver := dataset.NewResolver(dataset.Roots{
		Figures:     cfg.Dataset.FiguresDir,
		Screenshots: cfg.Dataset.ScreenshotsDir,
		Data:        cfg.Dataset.DataDir,
		QA:          cfg.Dataset.QADir,
	})

	s.mu.Lock()
	s.cfg = cfg
	s.catalog = catalog
	s.navigator = dataset.NewNavigator(catalog, resolver)
	s.position = 0
	s.mu.Unlock()

	s.Emit(EventDatasetLoaded, catalog)
	return nil
}

// Config returns the active configuration.
func (s *State) Config() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Catalog returns the active catalog.
func (s *State) Catalog() dataset.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Position returns the current catalog position.
func (s *State) Position() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

// Current re-resolves the sample at the current position.
func (s *State) Current() dataset.View {
	return s.step(func(n *dataset.Navigator, pos int) dataset.View {
		return n.Load(pos)
	})
}

// Previous moves back one sample.
func (s *State) Previous() dataset.View {
	return s.step(func(n *dataset.Navigator, pos int) dataset.View {
		return n.Previous(pos)
	})
}

// Next advances one sample.
func (s *State) Next() dataset.View {
	return s.step(func(n *dataset.Navigator, pos int) dataset.View {
		return n.Next(pos)
	})
}

// SelectID jumps to the named sample.
func (s *State) SelectID(id string) dataset.View {
	return s.step(func(n *dataset.Navigator, _ int) dataset.View {
		return n.SelectID(id)
	})
}

// SelectIndex jumps to the clamped index.
func (s *State) SelectIndex(index int) dataset.View {
	return s.step(func(n *dataset.Navigator, _ int) dataset.View {
		return n.SelectIndex(index)
	})
}

// step runs one navigation transition, stores the clamped position from its
// result, and emits EventSampleLoaded.
func (s *State) step(transition func(n *dataset.Navigator, pos int) dataset.View) dataset.View {
	s.mu.Lock()
	view := transition(s.navigator, s.position)
	s.position = view.Index
	s.mu.Unlock()

	s.Emit(EventSampleLoaded, view)
	return view
}
