package handlers

import (
	"context"
	"log"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/enroute-travel/itinerary-api/internal/auth"
	"github.com/enroute-travel/itinerary-api/internal/models"
	"github.com/enroute-travel/itinerary-api/internal/session"
)

// TemplateStore is the persistence the template endpoints need.
type TemplateStore interface {
	session.TemplateStore
	List(ctx context.Context) ([]models.Template, error)
}

type TemplateHandler struct {
	workspace *Workspace
	templates TemplateStore
}

func NewTemplateHandler(workspace *Workspace, templates TemplateStore) *TemplateHandler {
	return &TemplateHandler{workspace: workspace, templates: templates}
}

type TemplateSummary struct {
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	PackageType string    `json:"package_type"`
	Days        int       `json:"days"`
	CreatedBy   string    `json:"created_by"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TemplateListResponse struct {
	Body []TemplateSummary
}

func (h *TemplateHandler) HandleList(ctx context.Context, input *auth.AuthInput) (*TemplateListResponse, error) {
	if _, err := h.workspace.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	templates, err := h.templates.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list templates: " + err.Error())
	}

	res := &TemplateListResponse{Body: []TemplateSummary{}}
	for _, tpl := range templates {
		snap := tpl.Snapshot.Data()
		res.Body = append(res.Body, TemplateSummary{
			Name:        tpl.Name,
			Location:    snap.Location,
			PackageType: snap.PackageType,
			Days:        len(snap.Days),
			CreatedBy:   tpl.CreatedBy,
			UpdatedAt:   tpl.UpdatedAt,
		})
	}
	return res, nil
}

type SaveTemplateResponse struct {
	Body struct {
		Name string `json:"name"`
	}
}

// HandleSave stores the current form as "<location> - <packageType>",
// replacing any template of the same name.
func (h *TemplateHandler) HandleSave(ctx context.Context, input *auth.AuthInput) (*SaveTemplateResponse, error) {
	_, s, err := h.workspace.open(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	name, saved, err := s.SaveTemplate(ctx, h.templates)
	if err != nil {
		log.Printf("Failed to save template %q: %v", name, err)
		return nil, huma.Error500InternalServerError("Failed to save template: " + err.Error())
	}
	if !saved {
		return nil, huma.Error400BadRequest("Location and package type are required to save a template")
	}

	res := &SaveTemplateResponse{}
	res.Body.Name = name
	return res, nil
}

type ApplyTemplateRequest struct {
	auth.AuthInput
	Body struct {
		Name string `json:"name" doc:"Template name, \"<location> - <packageType>\""`
	}
}

type ApplyTemplateResponse struct {
	Body struct {
		Applied bool      `json:"applied"`
		State   StateView `json:"state"`
	}
}

// HandleApply replaces the form with the named template. An unknown name
// leaves the form untouched.
func (h *TemplateHandler) HandleApply(ctx context.Context, input *ApplyTemplateRequest) (*ApplyTemplateResponse, error) {
	_, s, err := h.workspace.open(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	applied, err := s.ApplyTemplate(ctx, h.templates, input.Body.Name)
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	res := &ApplyTemplateResponse{}
	res.Body.Applied = applied
	res.Body.State = newStateView(s.State())
	return res, nil
}
