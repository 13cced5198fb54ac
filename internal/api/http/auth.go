package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/edixon-javier/qargo-coffee-manager/internal/apisrv/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"authToken"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := s.limiter.CheckLogin(r.RemoteAddr); err != nil {
		respondError(w, http.StatusTooManyRequests, err)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode credentials: %w", err))
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, fmt.Errorf("username and password are required"))
		return
	}

	token, err := s.authSrv.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			respondError(w, http.StatusUnauthorized, auth.ErrUnauthenticated)
			return
		}
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{AuthToken: token})
}
