// Command demo seeds three users and a group, issues one expense of each
// split type, and prints every user's balance sheet.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"splitledger/internal/expense"
	expensesplit "splitledger/internal/expense/split"
	"splitledger/internal/group"
	"splitledger/internal/ledger"
	"splitledger/internal/user"
	"splitledger/pkg/logging"
)

func main() {
	logging.Setup("warn")

	if err := run(context.Background()); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	bookkeeper := ledger.New()
	users := user.NewService(user.NewRepository(), bookkeeper)
	expenses := expense.NewService(expense.NewRepository(), expensesplit.NewFactory(), bookkeeper)
	groups := group.NewService(group.NewRepository(), users, expenses)

	for _, u := range []struct{ id, name string }{
		{"U1001", "User1"},
		{"U2001", "User2"},
		{"U3001", "User3"},
	} {
		if _, err := users.Create(ctx, &user.CreateUserRequest{ID: u.id, Name: u.name}); err != nil {
			return err
		}
	}

	if _, err := groups.Create(ctx, &group.CreateGroupRequest{
		ID:        "G1001",
		Name:      "Outing with Friends",
		FounderID: "U1001",
	}); err != nil {
		return err
	}
	for _, id := range []string{"U2001", "U3001"} {
		if _, err := groups.AddMember(ctx, "G1001", id); err != nil {
			return err
		}
	}

	// Breakfast, 900 split equally three ways, paid by U1001.
	if _, err := groups.CreateExpense(ctx, "G1001", "U1001", &expense.CreateExpenseRequest{
		ID:          "Exp1001",
		Description: "Breakfast",
		Amount:      900,
		SplitType:   "EQUAL",
		Splits: []*expense.SplitRequest{
			{UserID: "U1001", Value: 300},
			{UserID: "U2001", Value: 300},
			{UserID: "U3001", Value: 300},
		},
	}); err != nil {
		return err
	}

	// Lunch, 500 split exactly 400/100, paid by U2001.
	if _, err := groups.CreateExpense(ctx, "G1001", "U2001", &expense.CreateExpenseRequest{
		ID:          "Exp1002",
		Description: "Lunch",
		Amount:      500,
		SplitType:   "EXACT",
		Splits: []*expense.SplitRequest{
			{UserID: "U1001", Value: 400},
			{UserID: "U2001", Value: 100},
		},
	}); err != nil {
		return err
	}

	// Taxi, 200 split 50%/50%, paid by U1001.
	if _, err := groups.CreateExpense(ctx, "G1001", "U1001", &expense.CreateExpenseRequest{
		ID:          "Exp1003",
		Description: "Taxi",
		Amount:      200,
		SplitType:   "PERCENTAGE",
		Splits: []*expense.SplitRequest{
			{UserID: "U1001", Value: 50},
			{UserID: "U2001", Value: 50},
		},
	}); err != nil {
		return err
	}

	all, err := users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range all {
		sheet, err := users.BalanceSheet(ctx, u.ID)
		if err != nil {
			return err
		}
		printBalanceSheet(u, sheet)
	}
	return nil
}

func printBalanceSheet(u *user.User, sheet *ledger.BalanceSheet) {
	fmt.Println("---------------------------------------")
	fmt.Printf("Balance sheet of %s (%s)\n", u.Name, u.ID)
	fmt.Printf("  total expense:  %.2f\n", sheet.TotalExpense)
	fmt.Printf("  total paid:     %.2f\n", sheet.TotalPayment)
	fmt.Printf("  total you owe:  %.2f\n", sheet.TotalOwed)
	fmt.Printf("  total get back: %.2f\n", sheet.TotalGetBack)

	counterparties := make([]string, 0, len(sheet.Balances))
	for id := range sheet.Balances {
		counterparties = append(counterparties, id)
	}
	sort.Strings(counterparties)
	for _, id := range counterparties {
		b := sheet.Balances[id]
		fmt.Printf("  vs %s: owe %.2f, get back %.2f\n", id, b.AmountOwed, b.AmountGetBack)
	}
	fmt.Println("---------------------------------------")
}
