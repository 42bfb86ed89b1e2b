package core

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedClock() time.Time {
	return fixedTime
}

func fundedAccount(t *testing.T, balance string) *Account {
	t.Helper()

	account := NewAccount("Maria Souza", WithClock(fixedClock))
	require.NoError(t, account.Deposit(dec(balance)))

	return account
}

func TestNewAccount_Defaults(t *testing.T) {
	t.Parallel()

	account := NewAccount("  maria SOUZA ")

	require.Equal(t, "Maria Souza", account.HolderName())
	require.Equal(t, "0.00", account.Balance().StringFixed(2))
	require.Equal(t, "2.00", account.WithdrawalFee().StringFixed(2))
	require.Equal(t, "1000.00", account.DailyWithdrawalLimit().StringFixed(2))
	require.Equal(t, "R$", account.Currency())
	require.Empty(t, account.History())
}

func TestNewAccount_WithPolicy(t *testing.T) {
	t.Parallel()

	account := NewAccount("Ana", WithPolicy(Policy{
		Currency:             "EUR",
		WithdrawalFee:        dec("0.50"),
		DailyWithdrawalLimit: dec("250"),
	}))

	require.Equal(t, "EUR", account.Currency())
	require.Equal(t, "0.50", account.WithdrawalFee().StringFixed(2))
	require.Equal(t, "250.00", account.DailyWithdrawalLimit().StringFixed(2))
}

func TestAccount_Deposit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		initialBalance  string
		amount          string
		expectedBalance string
		expectedRecords []string
		expectedError   error
	}{
		{
			name:            "deposit into empty account",
			initialBalance:  "0",
			amount:          "500.00",
			expectedBalance: "500.00",
			expectedRecords: []string{"Deposit: R$ 500.00"},
		},
		{
			name:            "fractional deposit keeps two decimals",
			initialBalance:  "0",
			amount:          "0.1",
			expectedBalance: "0.10",
			expectedRecords: []string{"Deposit: R$ 0.10"},
		},
		{
			name:            "zero amount is rejected",
			initialBalance:  "10",
			amount:          "0",
			expectedBalance: "10.00",
			expectedRecords: []string{"Deposit: R$ 10.00"},
			expectedError:   ErrInvalidAmount,
		},
		{
			name:            "negative amount is rejected",
			initialBalance:  "10",
			amount:          "-5.25",
			expectedBalance: "10.00",
			expectedRecords: []string{"Deposit: R$ 10.00"},
			expectedError:   ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := NewAccount("Maria Souza", WithClock(fixedClock))
			if !dec(tt.initialBalance).IsZero() {
				require.NoError(t, account.Deposit(dec(tt.initialBalance)))
			}

			err := account.Deposit(dec(tt.amount))
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.expectedBalance, account.Balance().StringFixed(2))

			history := account.History()
			require.Len(t, history, len(tt.expectedRecords))
			for i, record := range history {
				require.Equal(t, tt.expectedRecords[i], record.Description)
				require.Equal(t, fixedTime, record.Timestamp)
			}
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		initialBalance  string
		amount          string
		expectedBalance string
		expectedRecord  string
		expectedError   error
	}{
		{
			name:            "successful withdrawal charges the fee",
			initialBalance:  "500.00",
			amount:          "100.00",
			expectedBalance: "398.00",
			expectedRecord:  "Withdrawal: R$ 100.00 (Fee: R$ 2.00)",
		},
		{
			name:            "withdrawal of exact balance minus fee",
			initialBalance:  "102.00",
			amount:          "100.00",
			expectedBalance: "0.00",
			expectedRecord:  "Withdrawal: R$ 100.00 (Fee: R$ 2.00)",
		},
		{
			name:            "withdrawal at the limit is allowed",
			initialBalance:  "2000.00",
			amount:          "1000.00",
			expectedBalance: "998.00",
			expectedRecord:  "Withdrawal: R$ 1000.00 (Fee: R$ 2.00)",
		},
		{
			name:            "zero amount is rejected",
			initialBalance:  "500.00",
			amount:          "0",
			expectedBalance: "500.00",
			expectedError:   ErrInvalidAmount,
		},
		{
			name:            "negative amount is rejected",
			initialBalance:  "500.00",
			amount:          "-1",
			expectedBalance: "500.00",
			expectedError:   ErrInvalidAmount,
		},
		{
			name:            "fee makes the cost exceed the balance",
			initialBalance:  "100.00",
			amount:          "99.00",
			expectedBalance: "100.00",
			expectedError:   ErrInsufficientFunds,
		},
		{
			name:            "amount above the limit with enough funds",
			initialBalance:  "2000.00",
			amount:          "1500.00",
			expectedBalance: "2000.00",
			expectedError:   ErrLimitExceeded,
		},
		{
			name:            "insufficient funds wins over limit exceeded",
			initialBalance:  "398.00",
			amount:          "1500.00",
			expectedBalance: "398.00",
			expectedError:   ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account := fundedAccount(t, tt.initialBalance)
			before := len(account.History())

			err := account.Withdraw(dec(tt.amount))
			require.Equal(t, tt.expectedBalance, account.Balance().StringFixed(2))

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				require.Len(t, account.History(), before)
				return
			}

			require.NoError(t, err)
			history := account.History()
			require.Len(t, history, before+1)
			require.Equal(t, tt.expectedRecord, history[len(history)-1].Description)
		})
	}
}

func TestAccount_WithdrawLimitErrorNamesTheLimit(t *testing.T) {
	t.Parallel()

	account := fundedAccount(t, "5000")

	err := account.Withdraw(dec("1000.01"))
	require.ErrorIs(t, err, ErrLimitExceeded)
	require.Contains(t, err.Error(), "R$ 1000.00")
}

func TestAccount_LimitIsPerTransaction(t *testing.T) {
	t.Parallel()

	account := fundedAccount(t, "5000")

	for range 3 {
		require.NoError(t, account.Withdraw(dec("1000")))
	}

	require.Equal(t, "1994.00", account.Balance().StringFixed(2))
}

func TestAccount_Scenario(t *testing.T) {
	t.Parallel()

	account := NewAccount("Maria Souza", WithClock(fixedClock))

	require.NoError(t, account.Deposit(dec("500.00")))
	require.Equal(t, "500.00", account.Balance().StringFixed(2))
	require.Equal(t, []OperationRecord{{Timestamp: fixedTime, Description: "Deposit: R$ 500.00"}}, account.History())

	require.NoError(t, account.Withdraw(dec("100.00")))
	require.Equal(t, "398.00", account.Balance().StringFixed(2))

	// 1502.00 exceeds the balance, so the funds check fires before the limit.
	require.ErrorIs(t, account.Withdraw(dec("1500.00")), ErrInsufficientFunds)
	require.Equal(t, "398.00", account.Balance().StringFixed(2))

	require.ErrorIs(t, account.Withdraw(dec("400.00")), ErrInsufficientFunds)
	require.Equal(t, "398.00", account.Balance().StringFixed(2))
	require.Len(t, account.History(), 2)

	require.NoError(t, account.Deposit(dec("2000.00")))
	require.ErrorIs(t, account.Withdraw(dec("1500.00")), ErrLimitExceeded)
	require.Equal(t, "2398.00", account.Balance().StringFixed(2))
	require.Len(t, account.History(), 3)
}

func TestAccount_Statement(t *testing.T) {
	t.Parallel()

	t.Run("fresh account", func(t *testing.T) {
		t.Parallel()

		account := NewAccount("ana silva")
		require.Equal(t, []string{
			"=== Statement for Ana Silva ===",
			"No operations yet",
			"Balance: R$ 0.00",
		}, account.StatementLines())
	})

	t.Run("operations in insertion order", func(t *testing.T) {
		t.Parallel()

		account := fundedAccount(t, "500")
		require.NoError(t, account.Withdraw(dec("100")))

		require.Equal(t, []string{
			"=== Statement for Maria Souza ===",
			"[05/03/2024 14:30:00] Deposit: R$ 500.00",
			"[05/03/2024 14:30:00] Withdrawal: R$ 100.00 (Fee: R$ 2.00)",
			"Balance: R$ 398.00",
		}, account.StatementLines())
	})

	t.Run("sequence is restartable and stops early", func(t *testing.T) {
		t.Parallel()

		account := fundedAccount(t, "10")
		seq := account.Statement()

		var first []string
		for line := range seq {
			first = append(first, line)
			break
		}
		require.Equal(t, []string{"=== Statement for Maria Souza ==="}, first)

		var all []string
		for line := range seq {
			all = append(all, line)
		}
		require.Len(t, all, 3)
		require.Equal(t, "Balance: R$ 10.00", all[2])
	})
}

func TestAccount_HistoryIsACopy(t *testing.T) {
	t.Parallel()

	account := fundedAccount(t, "10")
	history := account.History()
	history[0].Description = "tampered"

	require.Equal(t, "Deposit: R$ 10.00", account.History()[0].Description)
}
