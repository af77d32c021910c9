package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	BudgetedAmount float64 `json:"budgeted_amount"`
	Color          string  `json:"color,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categories, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	categoriesDTO := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		categoriesDTO = append(categoriesDTO, ToDTO(category))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(categoriesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new category")
	w.Header().Set("Content-Type", "application/json")

	var categoryDTO CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&categoryDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), FromDTO(categoryDTO))
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	var categoryDTO CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&categoryDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	categoryDTO.ID = vars["id"]

	updated, err := handler.service.Update(r.Context(), FromDTO(categoryDTO))
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ok, err := handler.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidType) || errors.Is(err, ErrEmptyName) || errors.Is(err, ErrDuplicateName)
}

func ToDTO(category Category) CategoryDTO {
	return CategoryDTO{
		ID:             category.ID,
		Name:           category.Name,
		Type:           string(category.Type),
		BudgetedAmount: category.BudgetedAmount,
		Color:          category.Color,
	}
}

func FromDTO(dto CategoryDTO) Category {
	return Category{
		ID:             dto.ID,
		Name:           dto.Name,
		Type:           transaction.Type(dto.Type),
		BudgetedAmount: dto.BudgetedAmount,
		Color:          dto.Color,
	}
}
