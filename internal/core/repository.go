package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

type OperationKind string

const (
	OperationDeposit    OperationKind = "deposit"
	OperationWithdrawal OperationKind = "withdrawal"
)

type JournalEntry struct {
	ID            uuid.UUID
	Holder        string
	AccountNumber int
	Kind          OperationKind
	Amount        decimal.Decimal
	Fee           decimal.Decimal
	Balance       decimal.Decimal
	Description   string
	CreatedAt     time.Time
}

type Journal interface {
	Record(ctx context.Context, entry JournalEntry) error
}
