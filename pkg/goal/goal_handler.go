package goal

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

type GoalDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"`
	Category      string  `json:"category,omitempty"`
	Type          string  `json:"type"`
	Description   string  `json:"description,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`

	// Derived fields, never accepted as input.
	ProgressPercent float64 `json:"progress_percent"`
	DaysRemaining   int     `json:"days_remaining"`
	NeededPerDay    float64 `json:"needed_per_day"`
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

	goals, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	today := handler.clock.Today()
	goalsDTO := make([]GoalDTO, 0, len(goals))
	for _, goal := range goals {
		goalsDTO = append(goalsDTO, ToDTO(goal, today))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(goalsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new goal")
	w.Header().Set("Content-Type", "application/json")

	goal, ok := handler.decode(w, r)
	if !ok {
		return
	}

	created, err := handler.service.Create(r.Context(), goal)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ToDTO(created, handler.clock.Today())); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	goal, ok := handler.decode(w, r)
	if !ok {
		return
	}
	goal.ID = vars["id"]

	updated, err := handler.service.Update(r.Context(), goal)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(updated, handler.clock.Today())); err != nil {
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
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) decode(w http.ResponseWriter, r *http.Request) (Goal, bool) {
	var goalDTO GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&goalDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return Goal{}, false
	}
	goal, err := FromDTO(goalDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return Goal{}, false
	}
	return goal, true
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrInvalidType) || errors.Is(err, ErrEmptyName) || errors.Is(err, ErrNoDeadline)
}

func ToDTO(goal Goal, today utils.Date) GoalDTO {
	var createdAt string
	if !goal.CreatedAt.IsZero() {
		createdAt = goal.CreatedAt.Format(time.RFC3339)
	}
	return GoalDTO{
		ID:              goal.ID,
		Name:            goal.Name,
		TargetAmount:    goal.TargetAmount,
		CurrentAmount:   goal.CurrentAmount,
		Deadline:        goal.Deadline.String(),
		Category:        goal.Category,
		Type:            string(goal.Type),
		Description:     goal.Description,
		CreatedAt:       createdAt,
		ProgressPercent: goal.ProgressPercent(),
		DaysRemaining:   goal.DaysRemaining(today),
		NeededPerDay:    goal.NeededPerDay(today),
	}
}

func FromDTO(dto GoalDTO) (Goal, error) {
	var deadline utils.Date
	if dto.Deadline != "" {
		parsed, err := utils.ParseDate(dto.Deadline)
		if err != nil {
			return Goal{}, err
		}
		deadline = parsed
	}
	return Goal{
		ID:            dto.ID,
		Name:          dto.Name,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: dto.CurrentAmount,
		Deadline:      deadline,
		Category:      dto.Category,
		Type:          transaction.Type(dto.Type),
		Description:   dto.Description,
	}, nil
}
