package event_bus

// Events published by the domain services. Subscribers recompute derived
// state: goal progress follows the transaction log, reminder alerts follow
// the recurring-transaction schedule.
const (
	// TransactionCreated is published after a transaction is stored.
	// Payload: the created transaction.
	TransactionCreated EventType = "transaction.created"

	// TransactionDeleted is published after a transaction is removed.
	// Payload: the transaction id (string).
	TransactionDeleted EventType = "transaction.deleted"

	// RecurringChanged is published after a recurring transaction is created,
	// updated, deleted, or its due date advanced by a sweep.
	// Payload: the recurring transaction id (string), empty for sweeps.
	RecurringChanged EventType = "recurring.changed"

	// RecurringMaterialized is published after a recurring transaction is
	// turned into a real transaction. Payload: the created transaction.
	RecurringMaterialized EventType = "recurring.materialized"
)
