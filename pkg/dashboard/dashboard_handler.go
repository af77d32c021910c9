package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/transaction"
)

type MonthlySummaryDTO struct {
	Month            string  `json:"month"`
	Year             int     `json:"year"`
	ExpectedIncome   float64 `json:"expected_income"`
	ActualIncome     float64 `json:"actual_income"`
	ExpectedExpenses float64 `json:"expected_expenses"`
	ActualExpenses   float64 `json:"actual_expenses"`
	ExpectedSavings  float64 `json:"expected_savings"`
	ActualSavings    float64 `json:"actual_savings"`
}

type CategorySummaryDTO struct {
	Category   string  `json:"category"`
	Budgeted   float64 `json:"budgeted"`
	Actual     float64 `json:"actual"`
	Difference float64 `json:"difference"`
	Type       string  `json:"type"`
}

type SnapshotDTO struct {
	Summary            MonthlySummaryDTO            `json:"summary"`
	IncomeSummary      []CategorySummaryDTO         `json:"income_summary"`
	ExpenseSummary     []CategorySummaryDTO         `json:"expense_summary"`
	SavingSummary      []CategorySummaryDTO         `json:"saving_summary"`
	RecentTransactions []transaction.TransactionDTO `json:"recent_transactions"`
}

type Handler struct {
	service Service
	clock   utils.Clock
}

func NewHandler(service Service, clock utils.Clock) *Handler {
	return &Handler{service: service, clock: clock}
}

// GetSnapshot serves the dashboard for ?month=March&year=2024. The month
// accepts a name or a number and both parameters default to the current
// month.
func (handler *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	today := handler.clock.Today()
	month := today.Month()
	year := today.Year()

	if monthParam := r.URL.Query().Get("month"); monthParam != "" {
		parsed, err := parseMonth(monthParam)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		month = parsed
	}
	if yearParam := r.URL.Query().Get("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			http.Error(w, "invalid year: "+yearParam, http.StatusBadRequest)
			return
		}
		year = parsed
	}

	snapshot, err := handler.service.GetSnapshot(r.Context(), month, year)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(snapshot)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func parseMonth(s string) (time.Month, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, &strconv.NumError{Func: "parseMonth", Num: s, Err: strconv.ErrRange}
		}
		return time.Month(n), nil
	}
	return utils.MonthByName(s)
}

func ToDTO(snapshot Snapshot) SnapshotDTO {
	recent := make([]transaction.TransactionDTO, 0, len(snapshot.RecentTransactions))
	for _, t := range snapshot.RecentTransactions {
		recent = append(recent, transaction.ToDTO(t))
	}
	return SnapshotDTO{
		Summary: MonthlySummaryDTO{
			Month:            snapshot.Summary.Month,
			Year:             snapshot.Summary.Year,
			ExpectedIncome:   snapshot.Summary.ExpectedIncome,
			ActualIncome:     snapshot.Summary.ActualIncome,
			ExpectedExpenses: snapshot.Summary.ExpectedExpenses,
			ActualExpenses:   snapshot.Summary.ActualExpenses,
			ExpectedSavings:  snapshot.Summary.ExpectedSavings,
			ActualSavings:    snapshot.Summary.ActualSavings,
		},
		IncomeSummary:      toCategoryDTOs(snapshot.IncomeSummary),
		ExpenseSummary:     toCategoryDTOs(snapshot.ExpenseSummary),
		SavingSummary:      toCategoryDTOs(snapshot.SavingSummary),
		RecentTransactions: recent,
	}
}

func toCategoryDTOs(summaries []CategorySummary) []CategorySummaryDTO {
	dtos := make([]CategorySummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, CategorySummaryDTO{
			Category:   s.Category,
			Budgeted:   s.Budgeted,
			Actual:     s.Actual,
			Difference: s.Difference,
			Type:       string(s.Type),
		})
	}
	return dtos
}
