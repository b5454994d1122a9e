// Package terminal is a line-oriented front end for the ledger.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-ledger/internal/input"
	"github.com/carson-networks/budget-ledger/internal/ledger"
	"github.com/carson-networks/budget-ledger/internal/service"
	"github.com/carson-networks/budget-ledger/internal/view"
)

const helpText = `Commands:
  add          record a transaction
  list         show history, newest first
  summary      show totals
  delete <id>  delete one transaction
  clear        delete every transaction
  dump         print raw transactions
  help         show this text
  quit         leave the shell`

// ledgerService is the part of service.LedgerService the shell uses.
type ledgerService interface {
	AddTransaction(ctx context.Context, input ledger.NewTransaction) (ledger.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) (bool, error)
	ClearTransactions(ctx context.Context) (int, error)
	Summary(ctx context.Context) service.Summary
	History(ctx context.Context) []ledger.Transaction
}

type Shell struct {
	in         *bufio.Scanner
	out        io.Writer
	svc        ledgerService
	formatter  view.Formatter
	controller *input.Controller
	logger     *logrus.Logger
}

func NewShell(in io.Reader, out io.Writer, svc ledgerService, formatter view.Formatter, logger *logrus.Logger) *Shell {
	s := &Shell{
		in:        bufio.NewScanner(in),
		out:       out,
		svc:       svc,
		formatter: formatter,
		logger:    logger,
	}
	s.controller = input.NewController(svc, prompter{shell: s})
	return s
}

// ask writes prompt and reads one line. ok is false at end of input.
func (s *Shell) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// Run reads commands until quit, end of input, or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, `Budget ledger. Type "help" for commands.`)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := s.ask("> ")
		if !ok {
			return s.in.Err()
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch strings.ToLower(fields[0]) {
		case "add":
			err = s.add(ctx)
		case "list":
			s.list(ctx)
		case "summary":
			s.summary(ctx)
		case "delete":
			err = s.delete(ctx, fields[1:])
		case "clear":
			err = s.clear(ctx)
		case "dump":
			spew.Fdump(s.out, s.svc.History(ctx))
		case "help":
			fmt.Fprintln(s.out, helpText)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(s.out, "unknown command %q, try help\n", fields[0])
		}
		if err != nil {
			if ledger.IsValidationError(err) {
				continue
			}
			s.logger.WithError(err).Errorf("Shell.Run.%s error", fields[0])
			fmt.Fprintln(s.out, "error:", err)
		}
	}
}

func (s *Shell) add(ctx context.Context) error {
	var form input.Form
	prompts := []struct {
		label string
		field *string
	}{
		{"Name: ", &form.Name},
		{"Amount: ", &form.Amount},
		{"Kind (income/expense): ", &form.Kind},
		{"Category: ", &form.Category},
		{"Date (YYYY-MM-DD, blank for none): ", &form.Date},
	}
	for _, p := range prompts {
		line, ok := s.ask(p.label)
		if !ok {
			return nil
		}
		*p.field = line
	}

	tx, err := s.controller.Submit(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "added #%d %s %s\n", tx.ID, tx.Name, s.formatter.SignedMoney(tx.Kind, tx.Amount))
	return nil
}

func (s *Shell) list(ctx context.Context) {
	rows := s.formatter.Rows(s.svc.History(ctx))
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "no transactions")
		return
	}

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t\tNAME\tAMOUNT\tDATE")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Icon, r.Name, r.Amount, r.Date)
	}
	w.Flush()
}

func (s *Shell) summary(ctx context.Context) {
	sum := s.svc.Summary(ctx)
	cards := s.formatter.Cards(sum.TotalIncome, sum.TotalExpense, sum.Balance, sum.Count)

	w := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Income\t%s\n", cards.Income)
	fmt.Fprintf(w, "Expense\t%s\n", cards.Expense)
	fmt.Fprintf(w, "Balance\t%s\n", cards.Balance)
	fmt.Fprintf(w, "Transactions\t%s\n", cards.Count)
	w.Flush()
}

func (s *Shell) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: delete <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(s.out, "invalid id %q\n", args[0])
		return nil
	}

	removed, err := s.controller.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(s.out, "deleted #%d\n", id)
	}
	return nil
}

func (s *Shell) clear(ctx context.Context) error {
	removed, err := s.controller.DeleteAll(ctx)
	if err != nil {
		return err
	}
	if removed > 0 {
		fmt.Fprintf(s.out, "deleted %d transactions\n", removed)
	}
	return nil
}
