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

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

func pageParams(r *http.Request) (limit, offset int) {
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

type orderListResponse struct {
	Orders []dto.Order `json:"orders"`
	Total  int         `json:"total"`
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	status := entity.StatusName(r.URL.Query().Get("status"))

	orders, total, err := s.repo.Orders().ListOrdersPaged(r.Context(), status, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	respondJSON(w, http.StatusOK, orderListResponse{
		Orders: dto.ConvertEntityOrders(orders),
		Total:  total,
	})
}

func (s *Server) getOrderByUUID(w http.ResponseWriter, r *http.Request) {
	order, err := s.repo.Orders().GetOrderByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.ConvertEntityOrder(order))
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.limiter.CheckOrderWrite(r.RemoteAddr); err != nil {
		respondError(w, http.StatusTooManyRequests, err)
		return
	}

	var orderNew entity.OrderNew
	if err := json.NewDecoder(r.Body).Decode(&orderNew); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode order: %w", err))
		return
	}
	if _, err := govalidator.ValidateStruct(&orderNew); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	order, err := s.repo.Orders().CreateOrder(r.Context(), &orderNew)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto.ConvertEntityOrder(order))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode status: %w", err))
		return
	}
	if req.Status == "" {
		respondError(w, http.StatusBadRequest, fmt.Errorf("status is required"))
		return
	}
	if _, ok := s.repo.Cache().GetOrderStatusByName(entity.StatusName(req.Status)); !ok {
		respondError(w, http.StatusBadRequest, fmt.Errorf("unknown status %q", req.Status))
		return
	}

	err := s.repo.Orders().UpdateOrderStatus(r.Context(), chi.URLParam(r, "uuid"), entity.StatusName(req.Status))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

type trackingRequest struct {
	TrackingNumber string `json:"trackingNumber"`
}

func (s *Server) setTrackingNumber(w http.ResponseWriter, r *http.Request) {
	var req trackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Errorf("can't decode tracking number: %w", err))
		return
	}
	if req.TrackingNumber == "" {
		respondError(w, http.StatusBadRequest, fmt.Errorf("trackingNumber is required"))
		return
	}

	err := s.repo.Orders().SetTrackingNumber(r.Context(), chi.URLParam(r, "uuid"), req.TrackingNumber)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		respondError(w, status, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (s *Server) listStatuses(w http.ResponseWriter, r *http.Request) {
	statuses := s.repo.Cache().GetOrderStatuses()

	type statusResponse struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	out := make([]statusResponse, 0, len(statuses))
	for _, st := range statuses {
		out = append(out, statusResponse{ID: st.ID, Name: st.Name.String(), Color: st.Color})
	}
	respondJSON(w, http.StatusOK, out)
}
