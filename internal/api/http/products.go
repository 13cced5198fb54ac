package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/edixon-javier/qargo-coffee-manager/internal/dto"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/edixon-javier/qargo-coffee-manager/internal/store"
	"github.com/go-chi/chi/v5"
)

func idParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

type productListResponse struct {
	Products []dto.Product `json:"products"`
	Total    int           `json:"total"`
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	showHidden := r.URL.Query().Get("showHidden") == "true"

	products, total, err := s.repo.Products().GetProductsPaged(r.Context(), limit, offset, showHidden)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, productListResponse{
		Products: dto.ConvertEntityProducts(products),
		Total:    total,
	})
}

func (s *Server) getProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	product, err := s.repo.Products().GetProductByID(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.ConvertEntityProduct(product))
}

func (s *Server) addProduct(w http.ResponseWriter, r *http.Request) {
	var prd entity.ProductNew
	if err := json.NewDecoder(r.Body).Decode(&prd); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode product: %w", err))
		return
	}
	if _, err := govalidator.ValidateStruct(&prd); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.repo.Products().AddProduct(r.Context(), &prd)
	if err != nil {
		if s.repo.IsErrUniqueViolation(err) {
			respondError(w, http.StatusConflict, fmt.Errorf("sku already exists"))
			return
		}
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	var prd entity.ProductNew
	if err := json.NewDecoder(r.Body).Decode(&prd); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode product: %w", err))
		return
	}
	if _, err := govalidator.ValidateStruct(&prd); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.repo.Products().UpdateProduct(r.Context(), &prd, id); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.repo.Products().DeleteProductByID(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}
