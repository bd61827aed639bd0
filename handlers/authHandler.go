package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"mentrex/models"
	"mentrex/services"

	"github.com/gorilla/mux"
)

type AuthHandler struct {
	auth     *services.AuthService
	sessions *services.SessionService
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionService) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router, requireAuth mux.MiddlewareFunc) {
	router.HandleFunc("/api/auth/signup", h.Signup).Methods("POST")
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/api/auth/logout", h.Logout).Methods("POST")
	router.Handle("/api/auth/me", requireAuth(http.HandlerFunc(h.Me))).Methods("GET")
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received signup request")

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode signup request JSON: %v", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	user, err := h.auth.Signup(&req)
	if err != nil {
		handleServiceError(w, err, "Failed to create account")
		return
	}

	if err := h.establishSession(w, user); err != nil {
		return
	}

	writeJSONResponse(w, http.StatusOK, user.ToResponse())
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received login request")

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode login request JSON: %v", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	user, err := h.auth.Login(&req)
	if err != nil {
		handleServiceError(w, err, "Failed to login")
		return
	}

	if err := h.establishSession(w, user); err != nil {
		return
	}

	writeJSONResponse(w, http.StatusOK, user.ToResponse())
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.auth.GetUserByID(userID)
	if err != nil {
		writeErrorResponse(w, http.StatusUnauthorized, "User not found")
		return
	}

	writeJSONResponse(w, http.StatusOK, user.ToResponse())
}

func (h *AuthHandler) establishSession(w http.ResponseWriter, user *models.User) error {
	token, err := h.sessions.IssueToken(user.ID)
	if err != nil {
		log.Printf("[ERROR] Failed to issue session token: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to establish session")
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(services.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
