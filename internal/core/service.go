package core

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Registration struct {
	Customer      *Customer
	Account       *Account
	AccountNumber int
}

// Service is the teller in front of a Bank. A single mutex serializes every
// operation so concurrent callers cannot break the non-negative balance rule.
type Service struct {
	mu      *sync.Mutex
	bank    *Bank
	journal Journal
	logger  Logger
	policy  Policy
}

func NewService(bank *Bank, journal Journal, logger Logger, policy Policy) *Service {
	return &Service{
		mu:      &sync.Mutex{},
		bank:    bank,
		journal: journal,
		logger:  logger,
		policy:  policy,
	}
}

func (s *Service) BankName() string {
	return s.bank.Name()
}

// Register opens an account for name, creating the customer first when the
// bank does not know it yet.
func (s *Service) Register(ctx context.Context, name string) (Registration, error) {
	if strings.TrimSpace(name) == "" {
		return Registration{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, found := s.bank.FindCustomer(name)
	if !found {
		customer = NewCustomer(name)
	}

	reg, err := s.openAccount(customer)
	if err != nil {
		return Registration{}, err
	}

	if !found {
		s.bank.AddCustomer(customer)
	}

	s.logger.InfoContext(ctx, "account opened",
		"bank", s.bank.Name(),
		"holder", customer.Name(),
		"account", reg.AccountNumber,
		"new_customer", !found,
	)

	return reg, nil
}

func (s *Service) OpenAccount(ctx context.Context, name string) (Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, found := s.bank.FindCustomer(name)
	if !found {
		return Registration{}, ErrCustomerNotFound
	}

	reg, err := s.openAccount(customer)
	if err != nil {
		return Registration{}, err
	}

	s.logger.InfoContext(ctx, "account opened", "holder", customer.Name(), "account", reg.AccountNumber)

	return reg, nil
}

func (s *Service) openAccount(customer *Customer) (Registration, error) {
	account := NewAccount(customer.Name(), WithPolicy(s.policy))
	if err := customer.AddAccount(account); err != nil {
		return Registration{}, err
	}

	return Registration{
		Customer:      customer,
		Account:       account,
		AccountNumber: len(customer.ListAccounts()),
	}, nil
}

func (s *Service) Deposit(ctx context.Context, name string, number int, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, account, err := s.lookup(name, number)
	if err != nil {
		return decimal.Zero, err
	}

	if err = account.Deposit(amount); err != nil {
		s.logger.WarnContext(ctx, "deposit rejected",
			"holder", customer.Name(),
			"account", number,
			"amount", amount.String(),
			"error", err,
		)
		return decimal.Zero, err
	}

	s.recordLast(ctx, customer.Name(), number, OperationDeposit, amount, decimal.Zero, account)

	return account.Balance(), nil
}

func (s *Service) Withdraw(ctx context.Context, name string, number int, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, account, err := s.lookup(name, number)
	if err != nil {
		return decimal.Zero, err
	}

	if err = account.Withdraw(amount); err != nil {
		s.logger.WarnContext(ctx, "withdrawal rejected",
			"holder", customer.Name(),
			"account", number,
			"amount", amount.String(),
			"balance", account.Balance().String(),
			"error", err,
		)
		return decimal.Zero, err
	}

	s.recordLast(ctx, customer.Name(), number, OperationWithdrawal, amount, account.WithdrawalFee(), account)

	return account.Balance(), nil
}

func (s *Service) Statement(_ context.Context, name string, number int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, account, err := s.lookup(name, number)
	if err != nil {
		return nil, err
	}

	return account.StatementLines(), nil
}

func (s *Service) lookup(name string, number int) (*Customer, *Account, error) {
	customer, found := s.bank.FindCustomer(name)
	if !found {
		return nil, nil, ErrCustomerNotFound
	}

	account, err := customer.Account(number)
	if err != nil {
		return nil, nil, err
	}

	return customer, account, nil
}

// recordLast mirrors the newest history record into the journal. The ledger
// is authoritative, so a journal failure is logged and the operation stands.
func (s *Service) recordLast(
	ctx context.Context,
	holder string,
	number int,
	kind OperationKind,
	amount decimal.Decimal,
	fee decimal.Decimal,
	account *Account,
) {
	last := account.history[len(account.history)-1]

	entry := JournalEntry{
		ID:            uuid.New(),
		Holder:        holder,
		AccountNumber: number,
		Kind:          kind,
		Amount:        amount,
		Fee:           fee,
		Balance:       account.Balance(),
		Description:   last.Description,
		CreatedAt:     last.Timestamp,
	}

	if err := s.journal.Record(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "failed to record journal entry",
			"holder", holder,
			"account", number,
			"kind", string(kind),
			"error", err,
		)
	}
}
