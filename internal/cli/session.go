package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"bankledger/internal/core"
)

type Teller interface {
	BankName() string
	Register(ctx context.Context, name string) (core.Registration, error)
	Deposit(ctx context.Context, name string, number int, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, name string, number int, amount decimal.Decimal) (decimal.Decimal, error)
	Statement(ctx context.Context, name string, number int) ([]string, error)
}

const (
	optionDeposit   = "1"
	optionWithdraw  = "2"
	optionStatement = "3"
	optionExit      = "4"
)

// Session drives one interactive customer over a line based terminal. It
// owns all prompting and printing; the ledger itself never does I/O.
type Session struct {
	teller Teller
	in     *bufio.Scanner
	out    io.Writer
}

func NewSession(teller Teller, in io.Reader, out io.Writer) *Session {
	return &Session{
		teller: teller,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run registers the customer and serves the operations menu until the user
// exits or the input ends.
func (s *Session) Run(ctx context.Context) error {
	s.println("Welcome!")

	reg, err := s.register(ctx)
	if err != nil {
		return ignoreEOF(err)
	}

	holder := reg.Customer.Name()
	s.printf("Account created successfully for %s at %s!\n", holder, s.teller.BankName())

	for {
		if err = ctx.Err(); err != nil {
			return err
		}

		option, err := s.menu()
		if err != nil {
			return ignoreEOF(err)
		}

		switch option {
		case optionDeposit:
			err = s.moveFunds(ctx, "Amount to deposit: ", func(amount decimal.Decimal) error {
				_, err := s.teller.Deposit(ctx, holder, reg.AccountNumber, amount)
				return err
			})
		case optionWithdraw:
			err = s.moveFunds(ctx, "Amount to withdraw: ", func(amount decimal.Decimal) error {
				_, err := s.teller.Withdraw(ctx, holder, reg.AccountNumber, amount)
				return err
			})
		case optionStatement:
			err = s.statement(ctx, holder, reg.AccountNumber)
		case optionExit:
			s.printf("Thank you for using our services, %s!\n", holder)
			return nil
		default:
			s.println("Invalid option! Please choose between 1 and 4.")
		}

		if err != nil {
			return ignoreEOF(err)
		}
	}
}

func (s *Session) register(ctx context.Context) (core.Registration, error) {
	for {
		name, err := s.prompt("Enter the account holder name: ")
		if err != nil {
			return core.Registration{}, err
		}

		reg, err := s.teller.Register(ctx, name)
		if err != nil {
			if errors.Is(err, core.ErrEmptyName) {
				s.printf("Error: %v\n", err)
				continue
			}
			return core.Registration{}, err
		}

		return reg, nil
	}
}

func (s *Session) menu() (string, error) {
	s.println()
	s.println("=== Banking System ===")
	s.println("1. Deposit")
	s.println("2. Withdraw")
	s.println("3. Statement")
	s.println("4. Exit")

	return s.prompt("Choose an operation (1-4): ")
}

// moveFunds reads an amount and applies op. Domain rejections are reported
// and the session continues.
func (s *Session) moveFunds(ctx context.Context, label string, op func(decimal.Decimal) error) error {
	amount, err := s.readAmount(label)
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = op(amount); err != nil {
		if isLedgerRejection(err) {
			s.printf("Error: %v\n", err)
			return nil
		}
		return err
	}

	s.println("Operation completed successfully!")
	return nil
}

func (s *Session) readAmount(label string) (decimal.Decimal, error) {
	for {
		raw, err := s.prompt(label)
		if err != nil {
			return decimal.Zero, err
		}

		amount, err := core.ParseAmount(raw)
		if err == nil {
			return amount, nil
		}

		s.println("Please enter a valid numeric value.")
	}
}

func (s *Session) statement(ctx context.Context, holder string, number int) error {
	lines, err := s.teller.Statement(ctx, holder, number)
	if err != nil {
		return err
	}

	s.println()
	for _, line := range lines {
		s.println(line)
	}
	s.println(strings.Repeat("=", 40))

	return nil
}

func (s *Session) prompt(label string) (string, error) {
	s.printf("%s", label)

	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func isLedgerRejection(err error) bool {
	return errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrInsufficientFunds) ||
		errors.Is(err, core.ErrLimitExceeded)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
