package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/danielgtaylor/huma/v2"
	"github.com/enroute-travel/itinerary-api/internal/auth"
	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"github.com/enroute-travel/itinerary-api/internal/render"
	"github.com/enroute-travel/itinerary-api/internal/session"
)

// Workspace resolves the caller and their editing session from a request cookie.
type Workspace struct {
	authHandler *auth.AuthHandler
	sessions    *session.Manager
}

func NewWorkspace(authHandler *auth.AuthHandler, sessions *session.Manager) *Workspace {
	return &Workspace{authHandler: authHandler, sessions: sessions}
}

func (w *Workspace) open(ctx context.Context, cookie string) (*auth.Identity, *session.Session, error) {
	id, err := w.authHandler.Authorize(ctx, cookie)
	if err != nil {
		return nil, nil, err
	}
	s, err := w.sessions.Resume(ctx, id.SessionID, id.Username, id.IsAdmin)
	if errors.Is(err, session.ErrSessionOwner) {
		log.Printf("Rejected session %s for %s: %v", id.SessionID, id.Username, err)
		return nil, nil, huma.Error401Unauthorized("Unauthorized: Session belongs to another user")
	}
	if err != nil {
		log.Printf("Failed to resume session for %s: %v", id.Username, err)
		return nil, nil, huma.Error500InternalServerError("Failed to load session: " + err.Error())
	}
	return id, s, nil
}

// domainError maps itinerary and render errors onto HTTP errors.
func domainError(err error) error {
	switch {
	case errors.Is(err, itinerary.ErrInvalidNumber),
		errors.Is(err, itinerary.ErrInvalidDate),
		errors.Is(err, itinerary.ErrInvalidMealPlan):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, itinerary.ErrDayIndex),
		errors.Is(err, itinerary.ErrItemIndex),
		errors.Is(err, itinerary.ErrUnknownTier),
		errors.Is(err, itinerary.ErrUnknownField),
		errors.Is(err, itinerary.ErrUnknownCategory):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, itinerary.ErrOverrideDisabled):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, render.ErrUnknownBrand),
		errors.Is(err, render.ErrUnknownFormat):
		return huma.Error400BadRequest(err.Error())
	}
	return huma.Error500InternalServerError(err.Error())
}
