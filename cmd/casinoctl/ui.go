package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"casino-backend/internal/model"

	"github.com/fatih/color"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	warn    = color.New(color.FgYellow, color.Bold)
	danger  = color.New(color.FgRed, color.Bold)
	neutral = color.New(color.FgHiWhite)
)

func statusColor(s model.TransactionStatus) *color.Color {
	switch s {
	case model.StatusApproved:
		return success
	case model.StatusRejected:
		return danger
	case model.StatusAwaitingPayment, model.StatusPending:
		return warn
	default:
		return neutral
	}
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 2, 2, ' ', 0)
}

func header(w io.Writer, cols ...string) {
	fmt.Fprintln(w, accent.Sprint(strings.Join(cols, "\t")))
}

func printDeposits(out io.Writer, deposits []*model.Transaction) {
	w := newTable(out)
	header(w, "ID", "USER", "ORDER", "AMOUNT", "STATUS", "CREATED")
	for _, d := range deposits {
		order := "-"
		if d.OrderCode != nil {
			order = fmt.Sprintf("%d", *d.OrderCode)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.UserID, order, d.Amount.StringFixed(0),
			statusColor(d.Status).Sprint(d.Status), d.CreatedAt.Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}

func printPromotions(out io.Writer, promotions []*model.Promotion) {
	w := newTable(out)
	header(w, "ID", "TITLE", "TYPE", "BONUS", "USES", "ACTIVE")
	for _, p := range promotions {
		bonus := "-"
		switch {
		case p.BonusPercentage.Valid && p.BonusPercentage.Decimal.IsPositive():
			bonus = p.BonusPercentage.Decimal.String() + "%"
		case p.BonusAmount.Valid:
			bonus = p.BonusAmount.Decimal.StringFixed(0) + " VND"
		}
		uses := fmt.Sprintf("%d", p.CurrentUses)
		if p.MaxUses != nil {
			uses = fmt.Sprintf("%d/%d", p.CurrentUses, *p.MaxUses)
		}
		active := danger.Sprint("no")
		if p.IsActive {
			active = success.Sprint("yes")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Type, bonus, uses, active)
	}
	_ = w.Flush()
}

func printSettlement(out io.Writer, result *model.SettlementResult) {
	t := result.Transaction
	fmt.Fprintf(out, "%s %s is now %s\n", accent.Sprint("deposit"), t.ID, statusColor(t.Status).Sprint(t.Status))
	if t.Status == model.StatusApproved {
		fmt.Fprintf(out, "  balance: %s VND\n", result.Balance.StringFixed(0))
	}
	if result.Bonus != nil {
		fmt.Fprintf(out, "  bonus:   %s VND (%s)\n", success.Sprint(result.Bonus.Amount.StringFixed(0)), result.Bonus.AdminNote)
	}
}
