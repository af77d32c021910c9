package recurring

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type RecurringTransactionDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Frequency   string  `json:"frequency"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date,omitempty"`
	NextDueDate string  `json:"next_due_date"`
	IsActive    bool    `json:"is_active"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type SweepResultDTO struct {
	Advanced int `json:"advanced"`
}

type Handler struct {
	service Service
	clock   utils.Clock
}

func NewHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	recurrings, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	recurringsDTO := make([]RecurringTransactionDTO, 0, len(recurrings))
	for _, recurring := range recurrings {
		recurringsDTO = append(recurringsDTO, ToDTO(recurring))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(recurringsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new recurring transaction")
	w.Header().Set("Content-Type", "application/json")

	recurring, ok := decode(w, r)
	if !ok {
		return
	}

	created, err := handler.service.Create(r.Context(), recurring)
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

	recurring, ok := decode(w, r)
	if !ok {
		return
	}
	recurring.ID = vars["id"]

	updated, err := handler.service.Update(r.Context(), recurring)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
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
		http.Error(w, "Recurring transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) Materialize(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	created, err := handler.service.Materialize(r.Context(), vars["id"])
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(transaction.ToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	advanced, err := handler.service.SweepDueDates(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SweepResultDTO{Advanced: advanced}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func decode(w http.ResponseWriter, r *http.Request) (RecurringTransaction, bool) {
	var recurringDTO RecurringTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&recurringDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return RecurringTransaction{}, false
	}
	recurring, err := FromDTO(recurringDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return RecurringTransaction{}, false
	}
	return recurring, true
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidFrequency) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrNoStartDate)
}

func ToDTO(recurring RecurringTransaction) RecurringTransactionDTO {
	var createdAt string
	if !recurring.CreatedAt.IsZero() {
		createdAt = recurring.CreatedAt.Format(time.RFC3339)
	}
	var endDate string
	if !recurring.EndDate.IsZero() {
		endDate = recurring.EndDate.String()
	}
	return RecurringTransactionDTO{
		ID:          recurring.ID,
		Name:        recurring.Name,
		Amount:      recurring.Amount,
		Type:        string(recurring.Type),
		Category:    recurring.Category,
		Frequency:   string(recurring.Frequency),
		StartDate:   recurring.StartDate.String(),
		EndDate:     endDate,
		NextDueDate: recurring.NextDueDate.String(),
		IsActive:    recurring.IsActive,
		Description: recurring.Description,
		CreatedAt:   createdAt,
	}
}

func FromDTO(dto RecurringTransactionDTO) (RecurringTransaction, error) {
	recurring := RecurringTransaction{
		ID:          dto.ID,
		Name:        dto.Name,
		Amount:      dto.Amount,
		Type:        transaction.Type(dto.Type),
		Category:    dto.Category,
		Frequency:   Frequency(dto.Frequency),
		IsActive:    dto.IsActive,
		Description: dto.Description,
	}
	for _, field := range []struct {
		value  string
		target *utils.Date
	}{
		{dto.StartDate, &recurring.StartDate},
		{dto.EndDate, &recurring.EndDate},
		{dto.NextDueDate, &recurring.NextDueDate},
	} {
		if field.value == "" {
			continue
		}
		parsed, err := utils.ParseDate(field.value)
		if err != nil {
			return RecurringTransaction{}, err
		}
		*field.target = parsed
	}
	return recurring, nil
}
