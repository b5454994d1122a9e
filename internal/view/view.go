// Package view maps ledger values to display-ready models. It never touches the
// ledger itself, so any front end can render the same rows and cards.
package view

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/carson-networks/budget-ledger/internal/ledger"
)

const (
	DefaultCurrencyPrefix = "Rp "
	DefaultIcon           = "💰"

	todayLabel  = "Today"
	dateDisplay = "Jan 2, 2006"
)

var categoryIcons = map[string]string{
	// income
	"salary":     "💰",
	"freelance":  "💼",
	"investment": "📈",
	"business":   "🏢",
	// expense
	"food":          "🍕",
	"transport":     "🚗",
	"shopping":      "🛒",
	"bills":         "📱",
	"entertainment": "🎬",
	"health":        "🏥",
}

// CategoryIcon returns the icon for a category, or DefaultIcon when unknown.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return DefaultIcon
}

// Row is one history line.
type Row struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Kind   ledger.Kind `json:"kind"`
	Icon   string      `json:"icon"`
	Amount string      `json:"amount"`
	Date   string      `json:"date"`
	Style  string      `json:"style"`
}

// Cards holds the summary figures shown above the history.
type Cards struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
	Count   string `json:"count"`
}

type Formatter struct {
	CurrencyPrefix string
}

func NewFormatter(prefix string) Formatter {
	return Formatter{CurrencyPrefix: prefix}
}

// Money renders an amount with dot thousands grouping, e.g. "Rp 5.000.000".
func (f Formatter) Money(amount int64) string {
	return f.CurrencyPrefix + strings.ReplaceAll(humanize.Comma(amount), ",", ".")
}

// SignedMoney prefixes Money with "+" for income and "-" for expense.
func (f Formatter) SignedMoney(kind ledger.Kind, amount int64) string {
	sign := "-"
	if kind == ledger.KindIncome {
		sign = "+"
	}
	return sign + f.Money(amount)
}

func DisplayDate(d ledger.Date) string {
	if d.IsEmpty() {
		return todayLabel
	}
	return d.Format(dateDisplay)
}

// Rows builds one Row per transaction, in the order given.
func (f Formatter) Rows(txs []ledger.Transaction) []Row {
	rows := make([]Row, len(txs))
	for i, tx := range txs {
		rows[i] = Row{
			ID:     tx.ID,
			Name:   tx.Name,
			Kind:   tx.Kind,
			Icon:   CategoryIcon(tx.Category),
			Amount: f.SignedMoney(tx.Kind, tx.Amount),
			Date:   DisplayDate(tx.Date),
			Style:  string(tx.Kind) + "-item",
		}
	}
	return rows
}

func (f Formatter) Cards(income, expense, balance int64, count int) Cards {
	return Cards{
		Income:  f.Money(income),
		Expense: f.Money(expense),
		Balance: f.Money(balance),
		Count:   strconv.Itoa(count),
	}
}
