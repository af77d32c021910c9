package alert

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// AlertDTO carries both the current field names and the legacy aliases
// (severity, read) that older exports used, so backups from previous versions
// import cleanly.
type AlertDTO struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Title         string  `json:"title,omitempty"`
	Message       string  `json:"message"`
	DueDate       string  `json:"due_date,omitempty"`
	Priority      string  `json:"priority"`
	Severity      string  `json:"severity,omitempty"`
	IsRead        bool    `json:"is_read"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Category      string  `json:"category,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAll lists alerts, optionally filtered with ?unread=true and
// ?priority=high|medium|low. Unread alerts sort first, then by priority,
// then newest first.
func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	alerts, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("unread") == "true" {
		alerts = filter(alerts, func(a Alert) bool { return !a.IsRead })
	}
	if priority := r.URL.Query().Get("priority"); priority != "" {
		if !Priority(priority).Valid() {
			http.Error(w, "unknown priority: "+priority, http.StatusBadRequest)
			return
		}
		alerts = filter(alerts, func(a Alert) bool { return a.Priority == Priority(priority) })
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].IsRead != alerts[j].IsRead {
			return !alerts[i].IsRead
		}
		if alerts[i].Priority != alerts[j].Priority {
			return alerts[i].Priority.Rank() > alerts[j].Priority.Rank()
		}
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})

	alertsDTO := make([]AlertDTO, 0, len(alerts))
	for _, alert := range alerts {
		alertsDTO = append(alertsDTO, ToDTO(alert))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(alertsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	log.Debug("Refreshing alerts")
	w.Header().Set("Content-Type", "application/json")

	alerts, err := handler.service.Refresh(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	alertsDTO := make([]AlertDTO, 0, len(alerts))
	for _, alert := range alerts {
		alertsDTO = append(alertsDTO, ToDTO(alert))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(alertsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Import(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var alertDTO AlertDTO
	if err := json.NewDecoder(r.Body).Decode(&alertDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	alert, err := FromDTO(alertDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported, err := handler.service.Import(r.Context(), alert)
	if err != nil {
		if errors.Is(err, ErrInvalidPriority) || errors.Is(err, ErrEmptyMessage) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ToDTO(imported)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ok, err := handler.service.MarkRead(r.Context(), vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Alert not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.MarkAllRead(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ok, err := handler.service.Delete(r.Context(), vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Alert not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.ClearAll(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func filter(alerts []Alert, keep func(Alert) bool) []Alert {
	filtered := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		if keep(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func ToDTO(alert Alert) AlertDTO {
	var createdAt string
	if !alert.CreatedAt.IsZero() {
		createdAt = alert.CreatedAt.Format(time.RFC3339)
	}
	var dueDate string
	if !alert.DueDate.IsZero() {
		dueDate = alert.DueDate.String()
	}
	return AlertDTO{
		ID:            alert.ID,
		Type:          string(alert.Type),
		Title:         alert.Title,
		Message:       alert.Message,
		DueDate:       dueDate,
		Priority:      string(alert.Priority),
		Severity:      string(alert.Priority),
		IsRead:        alert.IsRead,
		TransactionID: alert.TransactionID,
		Category:      alert.Category,
		Amount:        alert.Amount,
		CreatedAt:     createdAt,
	}
}

// FromDTO normalizes input: a payload carrying only the legacy severity
// field still yields a priority.
func FromDTO(dto AlertDTO) (Alert, error) {
	priority := dto.Priority
	if priority == "" {
		priority = dto.Severity
	}

	var dueDate utils.Date
	if dto.DueDate != "" {
		parsed, err := utils.ParseDate(dto.DueDate)
		if err != nil {
			return Alert{}, err
		}
		dueDate = parsed
	}

	var createdAt time.Time
	if dto.CreatedAt != "" {
		parsed, err := time.Parse(time.RFC3339, dto.CreatedAt)
		if err != nil {
			return Alert{}, err
		}
		createdAt = parsed
	}

	return Alert{
		ID:            dto.ID,
		Type:          AlertType(dto.Type),
		Title:         dto.Title,
		Message:       dto.Message,
		DueDate:       dueDate,
		Priority:      Priority(priority),
		IsRead:        dto.IsRead,
		TransactionID: dto.TransactionID,
		Category:      dto.Category,
		Amount:        dto.Amount,
		CreatedAt:     createdAt,
	}, nil
}
