package core

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const timestampLayout = "02/01/2006 15:04:05"

type OperationRecord struct {
	Timestamp   time.Time
	Description string
}

func (r OperationRecord) String() string {
	return fmt.Sprintf("[%s] %s", r.Timestamp.Format(timestampLayout), r.Description)
}

// Policy holds the per-account withdrawal rules. DailyWithdrawalLimit caps a
// single withdrawal; withdrawals are not accumulated over a day.
type Policy struct {
	Currency             string
	WithdrawalFee        decimal.Decimal
	DailyWithdrawalLimit decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		Currency:             DefaultCurrency,
		WithdrawalFee:        DefaultWithdrawalFee,
		DailyWithdrawalLimit: DefaultDailyWithdrawalLimit,
	}
}

type AccountOption func(*Account)

func WithPolicy(p Policy) AccountOption {
	return func(a *Account) {
		a.currency = p.Currency
		a.withdrawalFee = p.WithdrawalFee
		a.dailyWithdrawalLimit = p.DailyWithdrawalLimit
	}
}

func WithWithdrawalFee(fee decimal.Decimal) AccountOption {
	return func(a *Account) { a.withdrawalFee = fee }
}

func WithDailyWithdrawalLimit(limit decimal.Decimal) AccountOption {
	return func(a *Account) { a.dailyWithdrawalLimit = limit }
}

func WithCurrency(currency string) AccountOption {
	return func(a *Account) { a.currency = currency }
}

func WithClock(now func() time.Time) AccountOption {
	return func(a *Account) { a.now = now }
}

// Account is not safe for concurrent use; Service serializes access to it.
type Account struct {
	holderName           string
	balance              decimal.Decimal
	history              []OperationRecord
	currency             string
	withdrawalFee        decimal.Decimal
	dailyWithdrawalLimit decimal.Decimal
	now                  func() time.Time
}

func NewAccount(holderName string, opts ...AccountOption) *Account {
	a := &Account{
		holderName:           NormalizeName(holderName),
		balance:              decimal.Zero,
		currency:             DefaultCurrency,
		withdrawalFee:        DefaultWithdrawalFee,
		dailyWithdrawalLimit: DefaultDailyWithdrawalLimit,
		now:                  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *Account) HolderName() string                    { return a.holderName }
func (a *Account) Balance() decimal.Decimal              { return a.balance }
func (a *Account) Currency() string                      { return a.currency }
func (a *Account) WithdrawalFee() decimal.Decimal        { return a.withdrawalFee }
func (a *Account) DailyWithdrawalLimit() decimal.Decimal { return a.dailyWithdrawalLimit }

// History returns a copy of the operation log in chronological order.
func (a *Account) History() []OperationRecord {
	return slices.Clone(a.history)
}

func (a *Account) HasSufficientFunds(totalRequired decimal.Decimal) bool {
	return a.balance.GreaterThanOrEqual(totalRequired)
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	a.balance = a.balance.Add(amount)
	a.record(fmt.Sprintf("Deposit: %s", FormatMoney(a.currency, amount)))

	return nil
}

// Withdraw debits amount plus the withdrawal fee. Checks run in a fixed order:
// positive amount, then funds for the fee-inclusive cost, then the limit.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	totalCost := amount.Add(a.withdrawalFee)
	if !a.HasSufficientFunds(totalCost) {
		return ErrInsufficientFunds
	}

	if amount.GreaterThan(a.dailyWithdrawalLimit) {
		return fmt.Errorf("%w: limit is %s", ErrLimitExceeded, FormatMoney(a.currency, a.dailyWithdrawalLimit))
	}

	a.balance = a.balance.Sub(totalCost)
	a.record(fmt.Sprintf(
		"Withdrawal: %s (Fee: %s)",
		FormatMoney(a.currency, amount),
		FormatMoney(a.currency, a.withdrawalFee),
	))

	return nil
}

func (a *Account) record(description string) {
	a.history = append(a.history, OperationRecord{
		Timestamp:   a.now(),
		Description: description,
	})
}

// Statement yields the holder header, every operation in insertion order and
// the current balance. Each call to the returned sequence starts over.
func (a *Account) Statement() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(fmt.Sprintf("=== Statement for %s ===", a.holderName)) {
			return
		}

		if len(a.history) == 0 {
			if !yield("No operations yet") {
				return
			}
		}

		for _, r := range a.history {
			if !yield(r.String()) {
				return
			}
		}

		yield("Balance: " + FormatMoney(a.currency, a.balance))
	}
}

func (a *Account) StatementLines() []string {
	return slices.Collect(a.Statement())
}
