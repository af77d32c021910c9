package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transaction/export", deps.TransactionHandler.ExportCSV).Methods("GET")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/category", deps.CategoryHandler.Create).Methods("POST")
	r.HandleFunc("/api/category/{id}", deps.CategoryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/category/{id}", deps.CategoryHandler.Delete).Methods("DELETE")

	// Goals
	r.HandleFunc("/api/goal", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goal", deps.GoalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goal/{id}", deps.GoalHandler.Update).Methods("PUT")
	r.HandleFunc("/api/goal/{id}", deps.GoalHandler.Delete).Methods("DELETE")

	// Recurring transactions
	r.HandleFunc("/api/recurring", deps.RecurringHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/recurring", deps.RecurringHandler.Create).Methods("POST")
	r.HandleFunc("/api/recurring/sweep", deps.RecurringHandler.Sweep).Methods("POST")
	r.HandleFunc("/api/recurring/{id}", deps.RecurringHandler.Update).Methods("PUT")
	r.HandleFunc("/api/recurring/{id}", deps.RecurringHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/recurring/{id}/materialize", deps.RecurringHandler.Materialize).Methods("POST")

	// Alerts
	r.HandleFunc("/api/alert", deps.AlertHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/alert", deps.AlertHandler.Import).Methods("POST")
	r.HandleFunc("/api/alert", deps.AlertHandler.ClearAll).Methods("DELETE")
	r.HandleFunc("/api/alert/refresh", deps.AlertHandler.Refresh).Methods("POST")
	r.HandleFunc("/api/alert/read", deps.AlertHandler.MarkAllRead).Methods("PUT")
	r.HandleFunc("/api/alert/{id}/read", deps.AlertHandler.MarkRead).Methods("PUT")
	r.HandleFunc("/api/alert/{id}", deps.AlertHandler.Delete).Methods("DELETE")

	// Dashboard
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.GetSnapshot).Methods("GET")
}
