package core

type Customer struct {
	name     string
	accounts []*Account
}

func NewCustomer(name string) *Customer {
	return &Customer{
		name: NormalizeName(name),
	}
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) AddAccount(account *Account) error {
	if account.HolderName() != c.name {
		return ErrHolderMismatch
	}

	c.accounts = append(c.accounts, account)
	return nil
}

// ListAccounts returns the customer's accounts. The pointers are the live
// accounts, not snapshots.
func (c *Customer) ListAccounts() []*Account {
	return c.accounts
}

// Account looks up an account by its 1-based position.
func (c *Customer) Account(number int) (*Account, error) {
	if number < 1 || number > len(c.accounts) {
		return nil, ErrAccountNotFound
	}

	return c.accounts[number-1], nil
}
