package http

import (
	"errors"
	"net/http"

	"finboard/internal/core"
	"finboard/internal/log"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	email := sanitizeInput(req.Email)
	if err := s.auth.Register(email, req.Password); err != nil {
		if errors.Is(err, core.ErrEmailRegistered) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.logger.InfoContext(r.Context(), "user registered",
		log.FieldOperation, log.OpRegister,
		log.FieldUserEmail, email)
	respondJSON(w, http.StatusCreated, s.auth.Session())
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	email := sanitizeInput(req.Email)
	if err := s.auth.Login(email, req.Password); err != nil {
		s.logger.WarnContext(r.Context(), "login rejected",
			log.FieldOperation, log.OpLogin,
			log.FieldUserEmail, email)
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	s.logger.InfoContext(r.Context(), "user logged in",
		log.FieldOperation, log.OpLogin,
		log.FieldUserEmail, email)
	respondJSON(w, http.StatusOK, s.auth.Session())
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.Logout()
	s.logger.InfoContext(r.Context(), "user logged out",
		log.FieldOperation, log.OpLogout)
	respondJSON(w, http.StatusOK, s.auth.Session())
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.auth.Session())
}
