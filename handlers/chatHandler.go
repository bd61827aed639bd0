package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"unicode/utf8"

	"mentrex/services"

	"github.com/gorilla/mux"
)

const (
	defaultMCQCount = 3
	maxMCQCount     = 5
)

type AskRequest struct {
	Question string `json:"question"`
}

type SummarizeRequest struct {
	Text string `json:"text"`
}

type MCQRequest struct {
	Topic string `json:"topic"`
	Count *int   `json:"count"`
}

type ChatHandler struct {
	chat *services.ChatService
}

func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) RegisterRoutes(router *mux.Router, requireAuth mux.MiddlewareFunc) {
	router.Handle("/api/messages", requireAuth(http.HandlerFunc(h.GetMessages))).Methods("GET")
	router.Handle("/api/messages", requireAuth(http.HandlerFunc(h.ClearMessages))).Methods("DELETE")
	router.Handle("/api/ask", requireAuth(http.HandlerFunc(h.Ask))).Methods("POST")
	router.Handle("/api/summarize", requireAuth(http.HandlerFunc(h.Summarize))).Methods("POST")
	router.Handle("/api/mcq", requireAuth(http.HandlerFunc(h.GenerateMCQs))).Methods("POST")
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	messages, err := h.chat.History(userID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	writeJSONResponse(w, http.StatusOK, messages)
}

func (h *ChatHandler) ClearMessages(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, http.StatusNotImplemented, "Clear history feature is not yet implemented")
}

func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received ask request")

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode ask request JSON: %v", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Question == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Question is required")
		return
	}

	pair, err := h.chat.Ask(r.Context(), userID, req.Question)
	if err != nil {
		log.Printf("[ERROR] Ask failed: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to process question")
		return
	}

	log.Printf("[INFO] Ask completed successfully")
	writeJSONResponse(w, http.StatusOK, pair)
}

func (h *ChatHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received summarize request")

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode summarize request JSON: %v", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if utf8.RuneCountInString(req.Text) < 10 {
		writeErrorResponse(w, http.StatusBadRequest, "Text must be at least 10 characters long")
		return
	}

	pair, err := h.chat.Summarize(r.Context(), userID, req.Text)
	if err != nil {
		log.Printf("[ERROR] Summarize failed: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to process summary")
		return
	}

	log.Printf("[INFO] Summarize completed successfully")
	writeJSONResponse(w, http.StatusOK, pair)
}

func (h *ChatHandler) GenerateMCQs(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received MCQ generation request")

	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req MCQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode MCQ request JSON: %v", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Topic == "" {
		writeErrorResponse(w, http.StatusBadRequest, "Topic is required")
		return
	}

	count := defaultMCQCount
	if req.Count != nil {
		count = *req.Count
	}
	if count < 1 || count > maxMCQCount {
		writeErrorResponse(w, http.StatusBadRequest, "Count must be between 1 and 5")
		return
	}

	pair, err := h.chat.GenerateMCQs(r.Context(), userID, req.Topic, count)
	if err != nil {
		log.Printf("[ERROR] MCQ generation failed: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to generate MCQs")
		return
	}

	log.Printf("[INFO] MCQ generation completed successfully")
	writeJSONResponse(w, http.StatusOK, pair)
}
