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

func (s *Server) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.repo.Suppliers().ListSuppliers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.ConvertEntitySuppliers(suppliers))
}

func (s *Server) getSupplierByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	supplier, err := s.repo.Suppliers().GetSupplierByID(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrSupplierNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.ConvertEntitySupplier(supplier))
}

func (s *Server) addSupplier(w http.ResponseWriter, r *http.Request) {
	var sup entity.SupplierNew
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode supplier: %w", err))
		return
	}
	if _, err := govalidator.ValidateStruct(&sup); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.repo.Suppliers().AddSupplier(r.Context(), &sup)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (s *Server) updateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var sup entity.SupplierNew
	if err := json.NewDecoder(r.Body).Decode(&sup); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode supplier: %w", err))
		return
	}
	if _, err := govalidator.ValidateStruct(&sup); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.repo.Suppliers().UpdateSupplier(r.Context(), &sup, id); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (s *Server) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.repo.Suppliers().DeleteSupplierByID(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
