package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/danielgtaylor/huma/v2"
	"github.com/enroute-travel/itinerary-api/internal/auth"
	"github.com/enroute-travel/itinerary-api/internal/itinerary"
)

type SessionHandler struct {
	workspace *Workspace
}

func NewSessionHandler(workspace *Workspace) *SessionHandler {
	return &SessionHandler{workspace: workspace}
}

// StateView is the editing form plus the amounts derived from it.
type StateView struct {
	itinerary.State
	GSTPercent  int     `json:"gstPercent"`
	GSTAmount   float64 `json:"gstAmount"`
	TotalAmount float64 `json:"totalAmount"`
	DateRange   string  `json:"dateRange"`
}

func newStateView(st itinerary.State) StateView {
	return StateView{
		State:       st,
		GSTPercent:  itinerary.GSTPercent,
		GSTAmount:   st.Pricing.GSTAmount(),
		TotalAmount: st.Pricing.TotalAmount(),
		DateRange:   st.Days.DateRange(),
	}
}

type StateResponse struct {
	Body StateView
}

func stateResponse(st itinerary.State) *StateResponse {
	return &StateResponse{Body: newStateView(st)}
}

// edit runs fn against the caller's session. A failing fn leaves the form
// as it was.
func (h *SessionHandler) edit(ctx context.Context, cookie string, fn func(*itinerary.State) error) (*StateResponse, error) {
	_, s, err := h.workspace.open(ctx, cookie)
	if err != nil {
		return nil, err
	}
	st, err := s.Update(fn)
	if err != nil {
		return nil, domainError(err)
	}
	return stateResponse(st), nil
}

func (h *SessionHandler) HandleGetSession(ctx context.Context, input *auth.AuthInput) (*StateResponse, error) {
	_, s, err := h.workspace.open(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	return stateResponse(s.State()), nil
}

func (h *SessionHandler) HandleReset(ctx context.Context, input *auth.AuthInput) (*StateResponse, error) {
	_, s, err := h.workspace.open(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	if err := s.Reset(ctx); err != nil {
		log.Printf("Failed to reset session %s: %v", s.ID, err)
		return nil, huma.Error500InternalServerError("Failed to load custom items: " + err.Error())
	}
	return stateResponse(s.State()), nil
}

type DetailsRequest struct {
	auth.AuthInput
	Body struct {
		ClientName  *string `json:"clientName,omitempty" doc:"Client the itinerary is prepared for"`
		PackageType *string `json:"packageType,omitempty" doc:"Package type, e.g. Honeymoon"`
		Location    *string `json:"location,omitempty" doc:"Destination"`
	}
}

// HandleDetails sets whichever client details are present in the body.
func (h *SessionHandler) HandleDetails(ctx context.Context, input *DetailsRequest) (*StateResponse, error) {
	return h.edit(ctx, input.Cookie, func(st *itinerary.State) error {
		if v := input.Body.ClientName; v != nil {
			st.ClientName = *v
		}
		if v := input.Body.PackageType; v != nil {
			st.PackageType = *v
		}
		if v := input.Body.Location; v != nil {
			st.Location = *v
		}
		return nil
	})
}

type ParticipantRequest struct {
	auth.AuthInput
	Tier  string `path:"tier" enum:"adults,children,infants" doc:"Participant tier"`
	Field string `path:"field" enum:"count,costPerHead" doc:"Field to set"`
	Body  struct {
		Value string `json:"value" doc:"Digits only; empty means zero"`
	}
}

func (h *SessionHandler) HandleParticipant(ctx context.Context, input *ParticipantRequest) (*StateResponse, error) {
	return h.edit(ctx, input.Cookie, func(st *itinerary.State) error {
		return st.Pricing.SetTierField(itinerary.Tier(input.Tier), itinerary.TierField(input.Field), input.Body.Value)
	})
}

type OverrideRequest struct {
	auth.AuthInput
	Body struct {
		Enabled bool `json:"enabled" doc:"Use a manual package amount"`
	}
}

func (h *SessionHandler) HandleOverride(ctx context.Context, input *OverrideRequest) (*StateResponse, error) {
	return h.edit(ctx, input.Cookie, func(st *itinerary.State) error {
		st.Pricing.SetManualOverride(input.Body.Enabled)
		return nil
	})
}

type ManualAmountRequest struct {
	auth.AuthInput
	Body struct {
		Amount string `json:"amount" doc:"Digits only; empty means zero"`
	}
}

func (h *SessionHandler) HandleManualAmount(ctx context.Context, input *ManualAmountRequest) (*StateResponse, error) {
	return h.edit(ctx, input.Cookie, func(st *itinerary.State) error {
		return st.Pricing.SetManualAmount(input.Body.Amount)
	})
}

type GSTRequest struct {
	auth.AuthInput
	Body struct {
		Include bool `json:"include" doc:"Add GST to the total"`
	}
}

func (h *SessionHandler) HandleGST(ctx context.Context, input *GSTRequest) (*StateResponse, error) {
	return h.edit(ctx, input.Cookie, func(st *itinerary.State) error {
		st.Pricing.SetTaxIncluded(input.Body.Include)
		return nil
	})
}

func (h *SessionHandler) HandleAddDay(ctx context.Context, input *auth.AuthInput) (*StateResponse, error) {
	return h.edit(ctx, input.Cookie, func(st *itinerary.State) error {
		st.Days.Add()
		return nil
	})
}

type DayIndexRequest struct {
	auth.AuthInput
	Index int `path:"index" minimum:"0" doc:"0-based day index"`
}

func (h *SessionHandler) HandleRemoveDay(ctx context.Context, input *DayIndexRequest) (*StateResponse, error) {
	return h.edit(ctx, input.Cookie, func(st *itinerary.State) error {
		return st.Days.Remove(input.Index)
	})
}

type DayFieldRequest struct {
	auth.AuthInput
	Index int    `path:"index" minimum:"0" doc:"0-based day index"`
	Field string `path:"field" enum:"date,header,activities,mealPlan" doc:"Field to set"`
	Body  struct {
		Value string `json:"value" doc:"New value; dates are YYYY-MM-DD, empty clears"`
	}
}

func (h *SessionHandler) HandleUpdateDay(ctx context.Context, input *DayFieldRequest) (*StateResponse, error) {
	return h.edit(ctx, input.Cookie, func(st *itinerary.State) error {
		return st.Days.Update(input.Index, itinerary.DayField(input.Field), input.Body.Value)
	})
}

type AddItemRequest struct {
	auth.AuthInput
	Category string `path:"category" enum:"inclusions,exclusions,terms"`
	Body     struct {
		Text string `json:"text" doc:"Item text"`
	}
}

// HandleAddItem appends a checked item and stores the category's custom
// items. Blank text is ignored.
func (h *SessionHandler) HandleAddItem(ctx context.Context, input *AddItemRequest) (*StateResponse, error) {
	_, s, err := h.workspace.open(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	category, err := itinerary.ParseCategory(input.Category)
	if err != nil {
		return nil, domainError(err)
	}

	st, err := s.AddItem(ctx, category, input.Body.Text)
	switch {
	case errors.Is(err, itinerary.ErrEmptyItem):
		return stateResponse(st), nil
	case errors.Is(err, itinerary.ErrUnknownCategory):
		return nil, domainError(err)
	case err != nil:
		log.Printf("Failed to store custom %s for %s: %v", category, s.Username, err)
		return nil, huma.Error500InternalServerError("Failed to save item: " + err.Error())
	}
	return stateResponse(st), nil
}

type ToggleItemRequest struct {
	auth.AuthInput
	Category string `path:"category" enum:"inclusions,exclusions,terms"`
	Index    int    `path:"index" minimum:"0" doc:"0-based item index"`
}

func (h *SessionHandler) HandleToggleItem(ctx context.Context, input *ToggleItemRequest) (*StateResponse, error) {
	return h.edit(ctx, input.Cookie, func(st *itinerary.State) error {
		cl, err := st.Checklist(itinerary.Category(input.Category))
		if err != nil {
			return err
		}
		return cl.Toggle(input.Index)
	})
}
