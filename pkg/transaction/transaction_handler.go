package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type TransactionDTO struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type Handler struct {
	service  Service
	renderer *CsvTransactionsRendererImpl
	clock    utils.Clock
}

func NewHandler(service Service, renderer *CsvTransactionsRendererImpl, clock utils.Clock) *Handler {
	return &Handler{service: service, renderer: renderer, clock: clock}
}

func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	transactions, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	transactionsDTO := make([]TransactionDTO, 0, len(transactions))
	for _, transaction := range transactions {
		transactionsDTO = append(transactionsDTO, ToDTO(transaction))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(transactionsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new transaction")
	w.Header().Set("Content-Type", "application/json")

	var transactionDTO TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&transactionDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	transaction, err := FromDTO(transactionDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), transaction)
	if err != nil {
		if errors.Is(err, ErrInvalidType) || errors.Is(err, ErrNegativeAmount) {
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

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	ok, err := handler.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	transactions, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("finance-tracker-%s.csv", handler.clock.Today())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(handler.renderer.RenderTransactions(transactions))); err != nil {
		log.Errorf("failed to write CSV export: %v", err)
	}
}

func ToDTO(transaction Transaction) TransactionDTO {
	var createdAt string
	if !transaction.CreatedAt.IsZero() {
		createdAt = transaction.CreatedAt.Format(time.RFC3339)
	}
	return TransactionDTO{
		ID:          transaction.ID,
		Date:        transaction.Date.String(),
		Amount:      transaction.Amount,
		Type:        string(transaction.Type),
		Category:    transaction.Category,
		Description: transaction.Description,
		CreatedAt:   createdAt,
	}
}

func FromDTO(dto TransactionDTO) (Transaction, error) {
	var date utils.Date
	if dto.Date != "" {
		parsed, err := utils.ParseDate(dto.Date)
		if err != nil {
			return Transaction{}, err
		}
		date = parsed
	}
	return Transaction{
		ID:          dto.ID,
		Date:        date,
		Amount:      dto.Amount,
		Type:        Type(dto.Type),
		Category:    dto.Category,
		Description: dto.Description,
	}, nil
}
