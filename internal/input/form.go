package input

import (
	"github.com/carson-networks/budget-ledger/internal/ledger"
)

// Form holds the raw fields a user submits to record a transaction.
type Form struct {
	Name     string
	Amount   string
	Kind     string
	Category string
	Date     string
}

// Parse converts the raw fields and validates the result. Any failure is a
// *ledger.ValidationError.
func (f Form) Parse() (ledger.NewTransaction, error) {
	kind, err := ledger.ParseKind(f.Kind)
	if err != nil {
		return ledger.NewTransaction{}, err
	}

	date, err := ledger.ParseDate(f.Date)
	if err != nil {
		return ledger.NewTransaction{}, err
	}

	n := ledger.NewTransaction{
		Name:     f.Name,
		Amount:   ParseFormattedNumber(f.Amount),
		Kind:     kind,
		Category: f.Category,
		Date:     date,
	}
	if err := n.Validate(); err != nil {
		return ledger.NewTransaction{}, err
	}
	return n, nil
}
