package core

type Bank struct {
	name      string
	customers []*Customer
}

func NewBank(name string) *Bank {
	return &Bank{
		name: name,
	}
}

func (b *Bank) Name() string {
	return b.name
}

// AddCustomer appends unconditionally; duplicate names are allowed.
func (b *Bank) AddCustomer(customer *Customer) {
	b.customers = append(b.customers, customer)
}

// FindCustomer normalizes name and returns the first customer with that name.
func (b *Bank) FindCustomer(name string) (*Customer, bool) {
	name = NormalizeName(name)
	for _, c := range b.customers {
		if c.Name() == name {
			return c, true
		}
	}

	return nil, false
}

func (b *Bank) Customers() []*Customer {
	return b.customers
}
