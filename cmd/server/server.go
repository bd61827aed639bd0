package main

import (
	"fmt"
	"log"
	"net/http"

	"mentrex/config"
	"mentrex/db"
	"mentrex/handlers"
	"mentrex/services"
	"mentrex/services/assistant"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DB_URL environment variable is required")
	}

	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable is required")
	}

	if cfg.HFAPIKey == "" {
		log.Printf("[INFO] No HF_API_KEY set, AI endpoints will serve fallback content only")
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	userRepo := db.NewGormUserRepository(gdb)
	messageRepo := db.NewGormMessageRepository(gdb)

	sessionService := services.NewSessionService(cfg.SessionSecret)
	authService := services.NewAuthService(userRepo)
	authHandler := handlers.NewAuthHandler(authService, sessionService)

	gateway := assistant.NewHuggingFaceGateway(cfg.HFAPIKey)
	assistantService := assistant.NewService(gateway)

	chatService := services.NewChatService(messageRepo, assistantService)
	chatHandler := handlers.NewChatHandler(chatService)

	requireAuth := handlers.RequireAuth(sessionService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	authHandler.RegisterRoutes(router, requireAuth)
	chatHandler.RegisterRoutes(router, requireAuth)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
