package http

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bankledger/internal/core"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type CustomerRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type AmountRequest struct {
	Amount string `json:"amount" validate:"required,numeric"`
}

func (req AmountRequest) ToDomain() (decimal.Decimal, error) {
	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %s: %w", req.Amount, err)
	}

	return amount, nil
}

type RegistrationResponse struct {
	Name          string `json:"name"`
	AccountNumber int    `json:"account_number"`
}

func NewRegistrationResponse(reg core.Registration) RegistrationResponse {
	return RegistrationResponse{
		Name:          reg.Customer.Name(),
		AccountNumber: reg.AccountNumber,
	}
}

type BalanceResponse struct {
	Balance string `json:"balance"`
}

type StatementResponse struct {
	Lines []string `json:"lines"`
}

func ParseAccountNumber(number string) (int, error) {
	n, err := strconv.Atoi(number)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid account number %q", number)
	}

	return n, nil
}
