package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"github.com/enroute-travel/itinerary-api/internal/models"
	"github.com/enroute-travel/itinerary-api/internal/repository"
)

type CustomItemStore interface {
	List(ctx context.Context) (map[itinerary.Category][]string, error)
	Merge(ctx context.Context, category itinerary.Category, texts []string) error
}

type TemplateStore interface {
	Save(ctx context.Context, name, createdBy string, snap itinerary.TemplateSnapshot) (*models.Template, error)
	FindByName(ctx context.Context, name string) (*models.Template, error)
}

// Session is one user's editing form. All access goes through its mutex.
type Session struct {
	ID       string
	Username string
	IsAdmin  bool

	mu     sync.Mutex
	state  itinerary.State
	custom CustomItemStore
}

func newSession(ctx context.Context, id, username string, isAdmin bool, custom CustomItemStore) (*Session, error) {
	s := &Session{ID: id, Username: username, IsAdmin: isAdmin, custom: custom}
	if err := s.Reset(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// State returns a copy of the current form.
func (s *Session) State() itinerary.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Update applies fn to a copy of the form and keeps the result only if fn
// succeeds, so a rejected edit leaves the form unchanged.
func (s *Session) Update(fn func(*itinerary.State) error) (itinerary.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return s.state.Clone(), err
	}
	s.state = next
	return next.Clone(), nil
}

// Reset replaces the form with a blank one seeded from the stored custom items.
func (s *Session) Reset(ctx context.Context) error {
	custom, err := s.custom.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = itinerary.NewState(custom)
	return nil
}

// AddItem appends a checklist entry. The entry is only added to the form
// once the category's custom set has been stored.
func (s *Session) AddItem(ctx context.Context, category itinerary.Category, text string) (itinerary.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cl, err := s.state.Checklist(category)
	if err != nil {
		return s.state.Clone(), err
	}
	next, err := cl.WithItem(text)
	if err != nil {
		return s.state.Clone(), err
	}
	if err := s.custom.Merge(ctx, category, next.Custom()); err != nil {
		return s.state.Clone(), err
	}
	*cl = next
	return s.state.Clone(), nil
}

// SaveTemplate stores the form under "<location> - <packageType>". saved is
// false when either field is empty.
func (s *Session) SaveTemplate(ctx context.Context, store TemplateStore) (name string, saved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := s.state.TemplateName()
	if !ok {
		return "", false, nil
	}
	if _, err := store.Save(ctx, name, s.Username, s.state.TemplateSnapshot()); err != nil {
		return name, false, err
	}
	return name, true, nil
}

// ApplyTemplate replaces the form with the named template. applied is false
// when no such template exists.
func (s *Session) ApplyTemplate(ctx context.Context, store TemplateStore, name string) (applied bool, err error) {
	tpl, err := store.FindByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load template %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ApplyTemplate(tpl.Snapshot.Data())
	return true, nil
}
