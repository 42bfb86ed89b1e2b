package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"bankledger/internal/core"
)

//go:generate go tool go.uber.org/mock/mockgen -source=accounts.go -destination=service_mock.go -package=http

type Teller interface {
	Register(ctx context.Context, name string) (core.Registration, error)
	OpenAccount(ctx context.Context, name string) (core.Registration, error)
	Deposit(ctx context.Context, name string, number int, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, name string, number int, amount decimal.Decimal) (decimal.Decimal, error)
	Statement(ctx context.Context, name string, number int) ([]string, error)
}

type Handler struct {
	teller Teller
	logger core.Logger
}

func NewHandler(teller Teller, logger core.Logger) Handler {
	return Handler{
		teller: teller,
		logger: logger,
	}
}

func (h Handler) PostCustomers(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reg, err := h.teller.Register(r.Context(), req.Name)
	if err != nil {
		h.writeError(r.Context(), w, err, "Failed to register customer")
		return
	}

	writeJSON(w, http.StatusCreated, NewRegistrationResponse(reg))
}

func (h Handler) PostAccounts(w http.ResponseWriter, r *http.Request) {
	reg, err := h.teller.OpenAccount(r.Context(), r.PathValue("name"))
	if err != nil {
		h.writeError(r.Context(), w, err, "Failed to open account")
		return
	}

	writeJSON(w, http.StatusCreated, NewRegistrationResponse(reg))
}

func (h Handler) PostDeposits(w http.ResponseWriter, r *http.Request) {
	h.moveFunds(w, r, h.teller.Deposit, "Failed to process deposit")
}

func (h Handler) PostWithdrawals(w http.ResponseWriter, r *http.Request) {
	h.moveFunds(w, r, h.teller.Withdraw, "Failed to process withdrawal")
}

type fundsOperation func(ctx context.Context, name string, number int, amount decimal.Decimal) (decimal.Decimal, error)

func (h Handler) moveFunds(w http.ResponseWriter, r *http.Request, op fundsOperation, failure string) {
	number, err := ParseAccountNumber(r.PathValue("number"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req AmountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	amount, err := req.ToDomain()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance, err := op(r.Context(), r.PathValue("name"), number, amount)
	if err != nil {
		h.writeError(r.Context(), w, err, failure)
		return
	}

	writeJSON(w, http.StatusOK, BalanceResponse{Balance: balance.StringFixed(2)})
}

func (h Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	number, err := ParseAccountNumber(r.PathValue("number"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lines, err := h.teller.Statement(r.Context(), r.PathValue("name"), number)
	if err != nil {
		h.writeError(r.Context(), w, err, "Failed to build statement")
		return
	}

	writeJSON(w, http.StatusOK, StatementResponse{Lines: lines})
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}

func (h Handler) writeError(ctx context.Context, w http.ResponseWriter, err error, failure string) {
	switch {
	case errors.Is(err, core.ErrInvalidAmount), errors.Is(err, core.ErrEmptyName):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, core.ErrCustomerNotFound), errors.Is(err, core.ErrAccountNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, core.ErrHolderMismatch):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, core.ErrInsufficientFunds), errors.Is(err, core.ErrLimitExceeded):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		h.logger.ErrorContext(ctx, failure, "error", err)
		http.Error(w, failure, http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
