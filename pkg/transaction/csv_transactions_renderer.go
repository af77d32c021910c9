package transaction

import (
	"strconv"
	"strings"
)

type CsvTransactionsRendererImpl struct {
}

func NewCsvTransactionsRenderer() *CsvTransactionsRendererImpl {
	return &CsvTransactionsRendererImpl{}
}

// RenderTransactions renders the export format consumed by existing
// spreadsheets: a header row and one comma-joined row per transaction.
// Fields are written verbatim, without CSV quoting or escaping — the format
// predates proper quoting and changing it would break old imports.
func (r *CsvTransactionsRendererImpl) RenderTransactions(transactions []Transaction) string {
	rows := make([]string, 0, len(transactions)+1)
	rows = append(rows, "Date,Type,Category,Amount,Description")
	for _, t := range transactions {
		fields := []string{
			t.Date.String(),
			string(t.Type),
			t.Category,
			strconv.FormatFloat(t.Amount, 'f', -1, 64),
			t.Description,
		}
		rows = append(rows, strings.Join(fields, ","))
	}
	return strings.Join(rows, "\n")
}
