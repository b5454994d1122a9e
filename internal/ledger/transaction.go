package ledger

import (
	"strings"
	"time"
)

// Kind classifies a transaction as income or expense.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ParseKind converts a raw kind string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIncome:
		return KindIncome, nil
	case KindExpense:
		return KindExpense, nil
	}
	return "", &ValidationError{Field: "kind", Message: "must be income or expense"}
}

func (k Kind) valid() bool {
	return k == KindIncome || k == KindExpense
}

const dateLayout = "2006-01-02"

// Date is an optional calendar date. The zero value means no date was given.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD date. An empty string yields the absent date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Message: "must be formatted YYYY-MM-DD"}
	}
	return Date{Time: t}, nil
}

// IsEmpty reports whether no date was given.
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// Transaction is one recorded income or expense event.
type Transaction struct {
	ID       int64
	Name     string
	Amount   int64 // smallest currency unit
	Kind     Kind
	Category string
	Date     Date
}

// NewTransaction holds the fields needed to add a transaction to a ledger.
type NewTransaction struct {
	Name     string
	Amount   int64
	Kind     Kind
	Category string
	Date     Date
}

// Validate checks the fields required to record a transaction.
func (n NewTransaction) Validate() error {
	if n.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if n.Amount <= 0 {
		return &ValidationError{Field: "amount", Message: "must be positive"}
	}
	if !n.Kind.valid() {
		return &ValidationError{Field: "kind", Message: "must be income or expense"}
	}
	if n.Category == "" {
		return &ValidationError{Field: "category", Message: "must not be empty"}
	}
	return nil
}
