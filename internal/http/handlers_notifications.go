package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"finboard/internal/core"
	"finboard/internal/notify"
)

type notificationsResponse struct {
	Active  []notify.Alert        `json:"active"`
	History []notify.Notification `json:"history"`
	Unread  int                   `json:"unread"`
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	active := s.center.Active()
	if active == nil {
		active = []notify.Alert{}
	}
	history := s.center.History()
	if history == nil {
		history = []notify.Notification{}
	}

	respondJSON(w, http.StatusOK, notificationsResponse{
		Active:  active,
		History: history,
		Unread:  s.center.Unread(),
	})
}

type showNotificationRequest struct {
	Message    string        `json:"message"`
	Severity   core.Severity `json:"severity"`
	DurationMS int64         `json:"durationMs"`
}

func (s *Server) handleShowNotification(w http.ResponseWriter, r *http.Request) {
	var req showNotificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Message = sanitizeInput(req.Message)
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}
	if req.Severity == "" {
		req.Severity = core.SeverityInfo
	}
	if err := req.Severity.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	duration := time.Duration(req.DurationMS) * time.Millisecond
	if duration <= 0 {
		duration = s.cfg.NotificationDuration
	}

	id := s.center.Show(req.Message, req.Severity, duration)
	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	s.center.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	s.center.MarkRead(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, map[string]int{"unread": s.center.Unread()})
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	s.center.MarkAllRead()
	respondJSON(w, http.StatusOK, map[string]int{"unread": s.center.Unread()})
}
