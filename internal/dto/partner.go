package dto

import (
	"time"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

type Supplier struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contactName,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ConvertEntitySupplier(s *entity.Supplier) *Supplier {
	if s == nil {
		return nil
	}
	return &Supplier{
		ID:          s.ID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Email:       s.Email,
		Phone:       s.Phone,
		City:        s.City,
		Country:     s.Country,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ConvertEntitySuppliers(suppliers []entity.Supplier) []Supplier {
	out := make([]Supplier, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *ConvertEntitySupplier(&suppliers[i]))
	}
	return out
}

type Franchisee struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ConvertEntityFranchisee(f *entity.Franchisee) *Franchisee {
	if f == nil {
		return nil
	}
	return &Franchisee{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Address:   f.Address,
		City:      f.City,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func ConvertEntityFranchisees(franchisees []entity.Franchisee) []Franchisee {
	out := make([]Franchisee, 0, len(franchisees))
	for i := range franchisees {
		out = append(out, *ConvertEntityFranchisee(&franchisees[i]))
	}
	return out
}
