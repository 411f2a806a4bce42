package repository

import "gorm.io/gorm"

//go:generate mockgen -source=transaction.go -destination=../mocks/transaction_mocks.go -package=mocks

// TransactionManagerInterface runs a unit of work against shift and runner
// storage inside one transaction. A cascading delete (shift plus its
// captured runner) and its undo must commit or roll back as a single
// unit; partial application is a correctness bug.
type TransactionManagerInterface interface {
	InTransaction(fn func(shifts ShiftRepositoryInterface, runners RunnerRepositoryInterface) error) error
}

// TransactionManager is the gorm-backed TransactionManagerInterface
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// InTransaction runs fn with repositories bound to one database transaction
func (m *TransactionManager) InTransaction(fn func(shifts ShiftRepositoryInterface, runners RunnerRepositoryInterface) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewShiftRepository(tx), NewRunnerRepository(tx))
	})
}
