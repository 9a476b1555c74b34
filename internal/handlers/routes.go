package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/enroute-travel/itinerary-api/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, sessionHandler *SessionHandler, templateHandler *TemplateHandler, itineraryHandler *ItineraryHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(authHandler.RefreshMiddleware)

	// Initialize Huma API
	config := huma.DefaultConfig("Itinerary API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	huma.Post(api, "/auth/login", authHandler.HandleLogin)
	huma.Post(api, "/auth/logout", authHandler.HandleLogout)

	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}

	huma.Get(api, "/me", authHandler.HandleMe, secured)

	// Editing session
	huma.Get(api, "/session", sessionHandler.HandleGetSession, secured)
	huma.Post(api, "/session/reset", sessionHandler.HandleReset, secured)
	huma.Put(api, "/session/details", sessionHandler.HandleDetails, secured)
	huma.Put(api, "/session/participants/{tier}/{field}", sessionHandler.HandleParticipant, secured)
	huma.Put(api, "/session/pricing/override", sessionHandler.HandleOverride, secured)
	huma.Put(api, "/session/pricing/manual", sessionHandler.HandleManualAmount, secured)
	huma.Put(api, "/session/pricing/gst", sessionHandler.HandleGST, secured)
	huma.Post(api, "/session/days", sessionHandler.HandleAddDay, secured)
	huma.Delete(api, "/session/days/{index}", sessionHandler.HandleRemoveDay, secured)
	huma.Put(api, "/session/days/{index}/{field}", sessionHandler.HandleUpdateDay, secured)
	huma.Post(api, "/session/checklists/{category}", sessionHandler.HandleAddItem, secured)
	huma.Post(api, "/session/checklists/{category}/{index}/toggle", sessionHandler.HandleToggleItem, secured)

	// Templates
	huma.Get(api, "/templates", templateHandler.HandleList, secured)
	huma.Post(api, "/templates", templateHandler.HandleSave, secured)
	huma.Post(api, "/templates/apply", templateHandler.HandleApply, secured)

	// Generated itineraries
	huma.Post(api, "/itineraries", itineraryHandler.HandleGenerate, secured)
	huma.Get(api, "/itineraries", itineraryHandler.HandleList, secured)
	huma.Get(api, "/itineraries/{id}/document", itineraryHandler.HandleDocument, secured)
	huma.Delete(api, "/itineraries/{id}", itineraryHandler.HandleDelete, secured)
}
