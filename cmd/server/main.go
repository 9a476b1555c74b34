package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/enroute-travel/itinerary-api/internal/auth"
	"github.com/enroute-travel/itinerary-api/internal/config"
	"github.com/enroute-travel/itinerary-api/internal/database"
	"github.com/enroute-travel/itinerary-api/internal/handlers"
	"github.com/enroute-travel/itinerary-api/internal/notifier"
	"github.com/enroute-travel/itinerary-api/internal/repository"
	"github.com/enroute-travel/itinerary-api/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	users := repository.NewUserRepository(db)
	if err := auth.SeedUsers(context.Background(), users, cfg.SeedUsers); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	// Discord notifications are optional
	var itineraryNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		dg, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			itineraryNotifier = notifier.NewDiscordNotifier(dg, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Handlers
	sessions := session.NewManager(repository.NewCustomItemRepository(db))
	authHandler := auth.NewAuthHandler(cfg, auth.NewUserVerifier(users), sessions)
	workspace := handlers.NewWorkspace(authHandler, sessions)
	sessionHandler := handlers.NewSessionHandler(workspace)
	templateHandler := handlers.NewTemplateHandler(workspace, repository.NewTemplateRepository(db))
	itineraryHandler := handlers.NewItineraryHandler(cfg, workspace, repository.NewItineraryRepository(db), itineraryNotifier)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, sessionHandler, templateHandler, itineraryHandler)

	var handler http.Handler = r
	if cfg.EnableCORS {
		handler = cors.New(cors.Options{
			AllowedOrigins:   []string{cfg.FrontendURL},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Content-Type"},
			ExposedHeaders:   []string{"X-Booking-Code", "X-Record-ID", "Content-Disposition"},
			AllowCredentials: true,
		}).Handler(r)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start Server
	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
