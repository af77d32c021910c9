package app

import (
	"database/sql"

	"github.com/budgetwise/budgetwise/internal/config"
	"github.com/budgetwise/budgetwise/internal/event_bus"
	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/budgetwise/budgetwise/pkg/alert"
	"github.com/budgetwise/budgetwise/pkg/category"
	"github.com/budgetwise/budgetwise/pkg/dashboard"
	"github.com/budgetwise/budgetwise/pkg/goal"
	"github.com/budgetwise/budgetwise/pkg/recurring"
	"github.com/budgetwise/budgetwise/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	TransactionRepo    transaction.Repository
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler
	CsvRenderer        *transaction.CsvTransactionsRendererImpl

	CategoryRepo    category.Repository
	CategoryService category.Service
	CategoryHandler *category.Handler

	GoalRepo    goal.Repository
	GoalService goal.Service
	GoalHandler *goal.Handler

	RecurringRepo    recurring.Repository
	RecurringService recurring.Service
	RecurringHandler *recurring.Handler

	AlertRepo      alert.Repository
	AlertGenerator *alert.Generator
	AlertService   alert.Service
	AlertHandler   *alert.Handler

	DashboardService dashboard.Service
	DashboardHandler *dashboard.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.TransactionRepo = transaction.NewRepository(db)
	deps.TransactionService = transaction.NewService(deps.TransactionRepo, deps.Bus, deps.Clock)
	deps.CsvRenderer = transaction.NewCsvTransactionsRenderer()
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService, deps.CsvRenderer, deps.Clock)

	deps.CategoryRepo = category.NewRepository(db)
	deps.CategoryService = category.NewService(deps.CategoryRepo)
	deps.CategoryHandler = category.NewHandler(deps.CategoryService)

	deps.GoalRepo = goal.NewRepository(db)
	deps.GoalService = goal.NewService(deps.GoalRepo, deps.TransactionService, deps.Clock)
	deps.GoalHandler = goal.NewHandler(deps.GoalService, deps.Clock)

	deps.RecurringRepo = recurring.NewRepository(db)
	deps.RecurringService = recurring.NewService(deps.RecurringRepo, deps.TransactionService, deps.Bus, deps.Clock)
	deps.RecurringHandler = recurring.NewHandler(deps.RecurringService, deps.Clock)

	deps.AlertRepo = alert.NewRepository(db)
	deps.AlertGenerator = alert.NewGenerator(cfg.Currency.Symbol)
	deps.AlertService = alert.NewService(deps.AlertRepo, deps.RecurringService, deps.AlertGenerator, deps.Clock)
	deps.AlertHandler = alert.NewHandler(deps.AlertService)

	deps.DashboardService = dashboard.NewService(deps.TransactionService, deps.CategoryService)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService, deps.Clock)

	subscribeRecomputations(deps)

	return deps
}

// subscribeRecomputations keeps derived state current: transaction changes
// refresh goal progress, schedule changes refresh reminder alerts.
func subscribeRecomputations(deps *Dependencies) {
	refreshGoals := func(e event_bus.Event) error {
		return deps.GoalService.RefreshProgress(e.Context())
	}
	deps.Bus.Subscribe(event_bus.TransactionCreated, refreshGoals)
	deps.Bus.Subscribe(event_bus.TransactionDeleted, refreshGoals)

	refreshAlerts := func(e event_bus.Event) error {
		_, err := deps.AlertService.Refresh(e.Context())
		if err != nil {
			log.Errorf("failed to refresh alerts: %v", err)
		}
		return err
	}
	deps.Bus.Subscribe(event_bus.RecurringChanged, refreshAlerts)
	deps.Bus.Subscribe(event_bus.RecurringMaterialized, refreshAlerts)
}
