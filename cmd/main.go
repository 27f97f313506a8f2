package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	lineclient "communityhub/clients/line"
	"communityhub/config"
	"communityhub/db"
	"communityhub/handlers"
	"communityhub/middleware"
	"communityhub/services/linecontacts"
	"communityhub/services/linegroups"
	"communityhub/services/linemessages"
	line "communityhub/usecases/line"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize error alert middleware
	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.OpsAlertConfig{
		WebhookURL:  cfg.OpsAlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "communityhub",
	})

	// Initialize database connection
	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	// Initialize repositories with shared connection
	contactsRepo := db.NewPostgresLineContactsRepository(dbConn, cfg.DatabaseSchema)
	groupsRepo := db.NewPostgresLineGroupsRepository(dbConn, cfg.DatabaseSchema)
	messagesRepo := db.NewPostgresInboundLineMessagesRepository(dbConn, cfg.DatabaseSchema)

	contactsService := linecontacts.NewLineContactsService(contactsRepo)
	groupsService := linegroups.NewLineGroupsService(groupsRepo)
	messagesService := linemessages.NewInboundMessagesService(messagesRepo)

	pushClient := lineclient.NewPushClient(cfg.LineConfig.PushAPIURL, cfg.LineConfig.ChannelAccessToken)

	lineUseCase := line.NewLineUseCase(
		contactsService,
		groupsService,
		messagesService,
		pushClient,
		cfg.LineConfig,
	)

	lineHandler := handlers.NewLineWebhooksHandler(cfg.LineConfig.ChannelSecret, lineUseCase)
	notificationsHandler := handlers.NewNotificationsHandler(cfg.InternalAPIKey, lineUseCase)

	// Create a new router
	router := mux.NewRouter()

	// Setup endpoints with the new router
	lineHandler.SetupEndpoints(router)
	notificationsHandler.SetupEndpoints(router)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Setup CORS middleware
	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-API-Key"},
		AllowCredentials: true,
	})

	// Setup and handle graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		log.Printf("✅ Listening on http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("❌ Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server gracefully
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Server shutdown error: %v", err)
		return err
	}

	log.Printf("✅ Server stopped gracefully")
	return nil
}
