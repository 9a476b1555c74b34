package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/enroute-travel/itinerary-api/internal/auth"
	"github.com/enroute-travel/itinerary-api/internal/config"
	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"github.com/enroute-travel/itinerary-api/internal/models"
	"github.com/enroute-travel/itinerary-api/internal/notifier"
	"github.com/enroute-travel/itinerary-api/internal/render"
	"github.com/enroute-travel/itinerary-api/internal/repository"
	"gorm.io/datatypes"
)

// ItineraryStore is the persistence for generated itineraries. An empty
// owner means every user's records.
type ItineraryStore interface {
	Create(ctx context.Context, it *models.Itinerary) error
	List(ctx context.Context, owner string) ([]models.Itinerary, error)
	FindByID(ctx context.Context, id uint, owner string) (*models.Itinerary, error)
	Delete(ctx context.Context, id uint, owner string) (bool, error)
}

type ItineraryHandler struct {
	cfg       *config.Config
	workspace *Workspace
	store     ItineraryStore
	notifier  notifier.Notifier
	now       func() time.Time
}

func NewItineraryHandler(cfg *config.Config, workspace *Workspace, store ItineraryStore, notifier notifier.Notifier) *ItineraryHandler {
	return &ItineraryHandler{
		cfg:       cfg,
		workspace: workspace,
		store:     store,
		notifier:  notifier,
		now:       time.Now,
	}
}

type DocumentResponse struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	BookingCode        string `header:"X-Booking-Code"`
	RecordID           string `header:"X-Record-ID"`
	Body               []byte
}

func documentResponse(doc render.Document, format render.Format) (*DocumentResponse, error) {
	var buf bytes.Buffer
	if err := render.Write(&buf, doc, format); err != nil {
		return nil, err
	}
	res := &DocumentResponse{
		ContentType: format.ContentType(),
		BookingCode: doc.BookingCode,
		Body:        buf.Bytes(),
	}
	if format == render.FormatPDF {
		res.ContentDisposition = fmt.Sprintf("inline; filename=%q", doc.BookingCode+".pdf")
	}
	return res, nil
}

type GenerateRequest struct {
	auth.AuthInput
	Brand  string `query:"brand" doc:"Brand theme; defaults to the configured brand"`
	Format string `query:"format" enum:"html,pdf,json" default:"html" doc:"Output format"`
}

// HandleGenerate renders the current form under a new booking code. The
// record is stored on a best-effort basis: a storage failure is logged and
// the document is still returned, without an X-Record-ID.
func (h *ItineraryHandler) HandleGenerate(ctx context.Context, input *GenerateRequest) (*DocumentResponse, error) {
	id, s, err := h.workspace.open(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	brand := input.Brand
	if brand == "" {
		brand = h.cfg.DefaultBrand
	}
	theme, err := render.LookupTheme(brand)
	if err != nil {
		return nil, domainError(err)
	}

	at := h.now()
	code, err := render.BookingCode(theme, at, nil)
	if err != nil {
		return nil, huma.Error500InternalServerError(err.Error())
	}

	snap := s.State().RecordSnapshot()
	record := models.Itinerary{
		BookingCode:   code,
		Username:      id.Username,
		Brand:         theme.Brand,
		BookingStatus: models.BookingConfirmed,
		ClientName:    snap.ClientName,
		Data:          datatypes.NewJSONType(snap),
	}

	recordID := ""
	if err := h.store.Create(ctx, &record); err != nil {
		log.Printf("Failed to store itinerary %s: %v", code, err)
	} else {
		recordID = strconv.FormatUint(uint64(record.ID), 10)
		if h.notifier != nil {
			if err := h.notifier.NotifyItinerary(record); err != nil {
				log.Printf("Failed to send notification: %v", err)
			}
		}
	}

	doc := render.Build(code, theme, h.cfg.AssetBaseURL, snap, at)
	res, err := documentResponse(doc, render.Format(input.Format))
	if err != nil {
		return nil, domainError(err)
	}
	res.RecordID = recordID
	return res, nil
}

type ListItinerariesRequest struct {
	auth.AuthInput
	Query    string `query:"q" doc:"Case-insensitive match on booking code or client name"`
	Page     int    `query:"page" minimum:"1" default:"1"`
	PageSize int    `query:"page_size" minimum:"0" maximum:"100" doc:"Defaults to the configured page size"`
}

type ItinerarySummary struct {
	ID            uint      `json:"id"`
	BookingCode   string    `json:"booking_code"`
	ClientName    string    `json:"client_name"`
	Location      string    `json:"location"`
	PackageType   string    `json:"package_type"`
	PackageDates  string    `json:"package_dates"`
	TotalAmount   float64   `json:"total_amount"`
	Brand         string    `json:"brand"`
	BookingStatus string    `json:"booking_status"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListItinerariesResponse struct {
	Body struct {
		Items     []ItinerarySummary `json:"items"`
		Total     int                `json:"total"`
		Page      int                `json:"page"`
		PageSize  int                `json:"page_size"`
		PageCount int                `json:"page_count"`
	}
}

// HandleList returns the caller's itineraries newest first, or everyone's
// for the admin.
func (h *ItineraryHandler) HandleList(ctx context.Context, input *ListItinerariesRequest) (*ListItinerariesResponse, error) {
	id, err := h.workspace.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	records, err := h.store.List(ctx, ownerScope(id))
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list itineraries: " + err.Error())
	}

	matched := make([]models.Itinerary, 0, len(records))
	for _, r := range records {
		if itinerary.MatchesSearch(input.Query, r.BookingCode, r.ClientName) {
			matched = append(matched, r)
		}
	}

	size := input.PageSize
	if size <= 0 {
		size = h.cfg.PageSize
	}
	if size <= 0 {
		size = 10
	}
	page := max(input.Page, 1)

	res := &ListItinerariesResponse{}
	res.Body.Items = []ItinerarySummary{}
	res.Body.Total = len(matched)
	res.Body.Page = page
	res.Body.PageSize = size
	res.Body.PageCount = (len(matched) + size - 1) / size

	start := (page - 1) * size
	end := min(start+size, len(matched))
	for i := start; i < end; i++ {
		r := matched[i]
		snap := r.Data.Data()
		summary := ItinerarySummary{
			ID:            r.ID,
			BookingCode:   r.BookingCode,
			ClientName:    r.ClientName,
			Location:      snap.Location,
			PackageType:   snap.PackageType,
			PackageDates:  snap.Days.DateRange(),
			TotalAmount:   snap.TotalAmount,
			Brand:         r.Brand,
			BookingStatus: r.BookingStatus,
			CreatedAt:     r.CreatedAt,
		}
		if id.IsAdmin {
			summary.CreatedBy = r.Username
		}
		res.Body.Items = append(res.Body.Items, summary)
	}
	return res, nil
}

type ItineraryDocumentRequest struct {
	auth.AuthInput
	ID     uint   `path:"id"`
	Format string `query:"format" enum:"html,pdf,json" default:"html" doc:"Output format"`
}

// HandleDocument re-renders a stored itinerary from its snapshot.
func (h *ItineraryHandler) HandleDocument(ctx context.Context, input *ItineraryDocumentRequest) (*DocumentResponse, error) {
	id, err := h.workspace.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	record, err := h.store.FindByID(ctx, input.ID, ownerScope(id))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, huma.Error404NotFound("Itinerary not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load itinerary: " + err.Error())
	}

	theme, err := render.LookupTheme(record.Brand)
	if err != nil {
		return nil, domainError(err)
	}

	doc := render.Build(record.BookingCode, theme, h.cfg.AssetBaseURL, record.Data.Data(), record.CreatedAt)
	res, err := documentResponse(doc, render.Format(input.Format))
	if err != nil {
		return nil, domainError(err)
	}
	res.RecordID = strconv.FormatUint(uint64(record.ID), 10)
	return res, nil
}

type DeleteItineraryRequest struct {
	auth.AuthInput
	ID      uint `path:"id"`
	Confirm bool `query:"confirm" doc:"Must be true; deletion cannot be undone"`
}

type DeleteItineraryResponse struct {
	Body struct {
		Deleted bool `json:"deleted"`
	}
}

// HandleDelete permanently removes an itinerary. Deleting a record that is
// already gone succeeds with deleted=false.
func (h *ItineraryHandler) HandleDelete(ctx context.Context, input *DeleteItineraryRequest) (*DeleteItineraryResponse, error) {
	id, err := h.workspace.authHandler.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}
	if !input.Confirm {
		return nil, huma.Error400BadRequest("Deletion must be confirmed with confirm=true")
	}

	deleted, err := h.store.Delete(ctx, input.ID, ownerScope(id))
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete itinerary: " + err.Error())
	}
	if deleted {
		log.Printf("Itinerary %d deleted by %s", input.ID, id.Username)
	}

	res := &DeleteItineraryResponse{}
	res.Body.Deleted = deleted
	return res, nil
}

func ownerScope(id *auth.Identity) string {
	if id.IsAdmin {
		return ""
	}
	return id.Username
}
