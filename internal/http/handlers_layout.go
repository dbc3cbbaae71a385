package http

import (
	"net/http"

	"finboard/internal/log"
	"finboard/internal/state"
)

// layoutUserID resolves which user's layout a request addresses. The
// query parameter wins; otherwise the logged-in user, falling back to
// a shared guest slot.
func (s *Server) layoutUserID(r *http.Request) string {
	if user := sanitizeInput(r.URL.Query().Get("user")); user != "" {
		return user
	}
	if session := s.auth.Session(); session.IsAuthenticated && session.User != nil {
		return session.User.Email
	}
	return "guest"
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.layouts.Load(s.layoutUserID(r)))
}

func (s *Server) handleSaveLayout(w http.ResponseWriter, r *http.Request) {
	var layout state.Layout
	if err := decodeJSON(w, r, &layout); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(layout) == 0 {
		respondError(w, http.StatusBadRequest, "layout must contain at least one breakpoint")
		return
	}

	userID := s.layoutUserID(r)
	s.layouts.Save(userID, layout)
	s.logger.InfoContext(r.Context(), "layout saved",
		log.FieldOperation, log.OpUpdate,
		"layout_user", userID)
	respondJSON(w, http.StatusOK, s.layouts.Current())
}

func (s *Server) handleResetLayout(w http.ResponseWriter, r *http.Request) {
	userID := s.layoutUserID(r)
	s.layouts.Reset(userID)
	s.logger.InfoContext(r.Context(), "layout reset",
		log.FieldOperation, log.OpUpdate,
		"layout_user", userID)
	respondJSON(w, http.StatusOK, s.layouts.Current())
}

func (s *Server) handleClearLayouts(w http.ResponseWriter, r *http.Request) {
	s.layouts.ClearAll()
	s.logger.InfoContext(r.Context(), "layouts cleared",
		log.FieldOperation, log.OpDelete)
	w.WriteHeader(http.StatusNoContent)
}
