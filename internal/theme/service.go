package theme

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/techconsult/internal/ports"
)

// Service reads and changes the active theme.
type Service interface {
	Get() Theme
	Set(Theme) error
}

// Applier makes a theme visible, e.g. by flipping the renderer's
// dark-background flag.
type Applier func(Theme)

// LipglossApplier switches lipgloss adaptive colours between their light and
// dark variants.
func LipglossApplier(t Theme) {
	lipgloss.SetHasDarkBackground(t.IsDark())
}

// StoreService is a Service backed by a PreferenceStore.
type StoreService struct {
	mu      sync.Mutex
	store   ports.PreferenceStore
	apply   Applier
	current Theme
}

var _ Service = (*StoreService)(nil)

// NewStoreService reads the stored preference once and applies it. A
// missing or unrecognised value means Light. A nil applier is allowed.
func NewStoreService(store ports.PreferenceStore, apply Applier) *StoreService {
	raw, _ := store.Get(StorageKey)
	current := FromStored(raw)

	s := &StoreService{store: store, apply: apply, current: current}
	if apply != nil {
		apply(current)
	}
	return s
}

// Get returns the active theme.
func (s *StoreService) Get() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set persists t and then applies it. When the write fails nothing changes.
func (s *StoreService) Set(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q (want light or dark)", string(t))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(StorageKey, string(t)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	s.current = t
	if s.apply != nil {
		s.apply(t)
	}
	return nil
}

// Toggle switches svc to the opposite theme and returns the new value. On
// error the returned theme is the unchanged current one.
func Toggle(svc Service) (Theme, error) {
	current := svc.Get()
	next := current.Toggled()
	if err := svc.Set(next); err != nil {
		return current, err
	}
	return next, nil
}
