package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"bankledger/internal/core"
	"bankledger/internal/http"
	"bankledger/internal/sqlite"
)

const (
	ModeCLI  = "cli"
	ModeHTTP = "http"
)

type Config struct {
	LogLevel int    `envconfig:"LOG_LEVEL" default:"-4"`
	Mode     string `envconfig:"MODE" default:"cli" validate:"oneof=cli http"`
	BankName string `envconfig:"BANK_NAME" default:"xAI Bank" validate:"required"`
	Ledger   Ledger
	Database sqlite.Config
	HTTP     http.Config
}

type Ledger struct {
	Currency             string          `envconfig:"CURRENCY" default:"R$" validate:"required"`
	WithdrawalFee        decimal.Decimal `envconfig:"WITHDRAWAL_FEE" default:"2.00"`
	DailyWithdrawalLimit decimal.Decimal `envconfig:"DAILY_WITHDRAWAL_LIMIT" default:"1000.00"`
}

func (l Ledger) Policy() core.Policy {
	return core.Policy{
		Currency:             l.Currency,
		WithdrawalFee:        l.WithdrawalFee,
		DailyWithdrawalLimit: l.DailyWithdrawalLimit,
	}
}

func Load() (Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Ledger.WithdrawalFee.IsNegative() {
		return fmt.Errorf("invalid config: withdrawal fee cannot be negative")
	}

	if !c.Ledger.DailyWithdrawalLimit.IsPositive() {
		return fmt.Errorf("invalid config: daily withdrawal limit must be positive")
	}

	return nil
}
