package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/edixon-javier/qargo-coffee-manager/internal/dto"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/edixon-javier/qargo-coffee-manager/internal/store"
)

func (s *Server) listFranchisees(w http.ResponseWriter, r *http.Request) {
	franchisees, err := s.repo.Franchisees().ListFranchisees(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.ConvertEntityFranchisees(franchisees))
}

func (s *Server) getFranchiseeByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	franchisee, err := s.repo.Franchisees().GetFranchiseeByID(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrFranchiseeNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.ConvertEntityFranchisee(franchisee))
}

func (s *Server) addFranchisee(w http.ResponseWriter, r *http.Request) {
	var fr entity.FranchiseeNew
	if err := json.NewDecoder(r.Body).Decode(&fr); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode franchisee: %w", err))
		return
	}
	if _, err := govalidator.ValidateStruct(&fr); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.repo.Franchisees().AddFranchisee(r.Context(), &fr)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (s *Server) updateFranchisee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var fr entity.FranchiseeNew
	if err := json.NewDecoder(r.Body).Decode(&fr); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode franchisee: %w", err))
		return
	}
	if _, err := govalidator.ValidateStruct(&fr); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.repo.Franchisees().UpdateFranchisee(r.Context(), &fr, id); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (s *Server) deleteFranchisee(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.repo.Franchisees().DeleteFranchiseeByID(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
