package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/fintrack/internal/aggregate"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/export"
	"github.com/iho/fintrack/internal/gateway"
	"github.com/iho/fintrack/internal/infrastructure/config"
	"github.com/iho/fintrack/internal/infrastructure/logger"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/session"
	"github.com/iho/fintrack/internal/store"
	"github.com/iho/fintrack/internal/usecase"
)

// app wires the client stack: credential store, gateway, entity store,
// session manager and the use cases on top.
type app struct {
	cfg     *config.Config
	store   *store.Store
	session *session.Manager

	accounts     *usecase.AccountUseCase
	transactions *usecase.TransactionUseCase
	categories   *usecase.CategoryUseCase
	budgets      *usecase.BudgetUseCase
	sync         *usecase.SyncUseCase
	reports      *usecase.ReportUseCase
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		tokenPath = gateway.DefaultTokenPath()
	}
	creds := gateway.NewCredentialStore(tokenPath)

	m := metrics.NewDefault()
	gw := gateway.New(cfg.APIBaseURL, cfg.HTTPTimeout, creds, log, m)

	st := store.New()
	sess := session.NewManager(gw, st, log, m)

	accounts := usecase.NewAccountUseCase(gw, st)
	transactions := usecase.NewTransactionUseCase(gw, st)

	return &app{
		cfg:          cfg,
		store:        st,
		session:      sess,
		accounts:     accounts,
		transactions: transactions,
		categories:   usecase.NewCategoryUseCase(gw, st),
		budgets:      usecase.NewBudgetUseCase(gw, st),
		sync:         usecase.NewSyncUseCase(accounts, transactions, st),
		reports:      usecase.NewReportUseCase(gw, st, cfg.TrendMonths, cfg.RecentLimit),
	}, nil
}

// requireSession restores the persisted credential and fails when no
// valid session exists.
func (a *app) requireSession(ctx context.Context) error {
	if !a.session.Restore(ctx) {
		return fmt.Errorf("not logged in, run \"fintrack login\" first")
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "fintrack",
		Short: "Personal finance tracker CLI",
		Long:  `A command line client for the fintrack API: accounts, transactions, categories, budgets and reports.`,
	}

	rootCmd.AddCommand(
		loginCmd(),
		signupCmd(),
		logoutCmd(),
		whoamiCmd(),
		accountsCmd(),
		transactionsCmd(),
		categoriesCmd(),
		budgetsCmd(),
		reportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			user, err := a.session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func signupCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new user and open a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			user, err := a.session.Signup(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and discard the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			a.session.Logout(cmd.Context())
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session's identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			user := a.session.User()
			fmt.Printf("%s <%s>\n", user.Name, user.Email)
			return nil
		},
	}
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts with derived balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if err := a.sync.RefreshAll(cmd.Context()); err != nil {
				return err
			}
			for _, line := range a.accounts.Balances() {
				fmt.Printf("%s  %-20s %-8s %8s %s\n",
					line.Account.ID, line.Account.Name, line.Account.Type,
					line.Balance.StringFixed(2), line.Account.Currency)
			}
			return nil
		},
	})

	var name, accType, currency, balance string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			opening, err := decimal.NewFromString(balance)
			if err != nil {
				return fmt.Errorf("invalid balance %q: %w", balance, err)
			}
			account, err := a.accounts.Create(cmd.Context(), usecase.AccountInput{
				Name:     name,
				Type:     domain.AccountType(accType),
				Currency: currency,
				Balance:  opening,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created account %s\n", account.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Account name")
	addCmd.Flags().StringVar(&accType, "type", "checking", "Account type (checking, savings, credit)")
	addCmd.Flags().StringVar(&currency, "currency", "USD", "Currency code")
	addCmd.Flags().StringVar(&balance, "balance", "0", "Opening balance")
	addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an account and its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if err := a.accounts.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	})

	return cmd
}

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Transaction operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			txs, err := a.transactions.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, tx := range txs {
				fmt.Printf("%s  %s  %-24s %-14s %8s %s\n",
					tx.ID, tx.Date.Format("2006-01-02"), tx.Description,
					tx.Category(), tx.Amount.StringFixed(2), tx.Type)
			}
			return nil
		},
	})

	var description, amount, category, account, txType, date string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}
			when := time.Now()
			if date != "" {
				when, err = time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
			}
			tx, err := a.transactions.Create(cmd.Context(), usecase.TransactionInput{
				Description: description,
				Amount:      value,
				CategoryID:  category,
				AccountID:   account,
				Type:        domain.TransactionType(txType),
				Date:        when,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Recorded transaction %s\n", tx.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "What the money moved for")
	addCmd.Flags().StringVar(&amount, "amount", "", "Positive amount")
	addCmd.Flags().StringVar(&category, "category", "", "Category id (optional)")
	addCmd.Flags().StringVar(&account, "account", "", "Account id")
	addCmd.Flags().StringVar(&txType, "type", "expense", "income or expense")
	addCmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today)")
	addCmd.MarkFlagRequired("description")
	addCmd.MarkFlagRequired("amount")
	addCmd.MarkFlagRequired("account")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if err := a.transactions.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	})

	return cmd
}

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Category operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			categories, err := a.categories.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Printf("%s  %-20s %s\n", c.ID, c.Name, c.Kind)
			}
			return nil
		},
	})

	var name, kind string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			category, err := a.categories.Create(cmd.Context(), usecase.CategoryInput{
				Name: name,
				Kind: domain.CategoryKind(kind),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created category %s\n", category.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Category name")
	addCmd.Flags().StringVar(&kind, "type", "expense", "income or expense")
	addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if err := a.categories.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	})

	return cmd
}

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Budget operations",
	}

	var month string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show budgets and spending for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if month == "" {
				month = time.Now().Format(domain.MonthLayout)
			}
			if _, err := a.budgets.List(cmd.Context(), month); err != nil {
				return err
			}
			if _, err := a.transactions.List(cmd.Context()); err != nil {
				return err
			}
			for _, line := range a.budgets.Summary(month) {
				fmt.Printf("%-20s limit %8s  spent %8s  remaining %8s\n",
					line.Category, line.Limit.StringFixed(2),
					line.Spent.StringFixed(2), line.Remaining.StringFixed(2))
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&month, "month", "", "Month as YYYY-MM (default current)")
	cmd.AddCommand(listCmd)

	var categoryID, budgetMonth, limit string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			capAmount, err := decimal.NewFromString(limit)
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", limit, err)
			}
			if budgetMonth == "" {
				budgetMonth = time.Now().Format(domain.MonthLayout)
			}
			budget, err := a.budgets.Create(cmd.Context(), usecase.BudgetInput{
				CategoryID: categoryID,
				Month:      budgetMonth,
				Limit:      capAmount,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Created budget %s\n", budget.ID)
			return nil
		},
	}
	addCmd.Flags().StringVar(&categoryID, "category", "", "Category id")
	addCmd.Flags().StringVar(&budgetMonth, "month", "", "Month as YYYY-MM (default current)")
	addCmd.Flags().StringVar(&limit, "limit", "", "Spending cap")
	addCmd.MarkFlagRequired("category")
	addCmd.MarkFlagRequired("limit")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			if err := a.budgets.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted")
			return nil
		},
	})

	return cmd
}

func reportCmd() *cobra.Command {
	var months int
	var csvOut string
	var remote bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show totals, trend and category breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			if remote {
				summary, err := a.reports.RemoteSummary(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Printf("Income:  %s\nExpense: %s\n",
					summary.TotalIncome.StringFixed(2), summary.TotalExpense.StringFixed(2))
				for _, p := range summary.Trend {
					fmt.Printf("  %s  income %10s  expense %10s\n",
						p.Month, p.Income.StringFixed(2), p.Expense.StringFixed(2))
				}
				return nil
			}

			if err := a.sync.RefreshAll(cmd.Context()); err != nil {
				return err
			}

			var report aggregate.Report
			if months > 0 {
				report = aggregate.ReportSummary(a.store.Transactions(), time.Now(), months, a.cfg.RecentLimit)
			} else {
				report = a.reports.Summary(time.Now())
			}

			fmt.Printf("Income:  %s\nExpense: %s\n\n",
				report.TotalIncome.StringFixed(2), report.TotalExpense.StringFixed(2))

			fmt.Println("Trend:")
			for _, p := range report.Trend {
				fmt.Printf("  %s  income %10s  expense %10s\n",
					p.Month, p.Income.StringFixed(2), p.Expense.StringFixed(2))
			}

			if len(report.CategoryBreakdown) > 0 {
				fmt.Println("\nSpending by category:")
				for _, c := range report.CategoryBreakdown {
					fmt.Printf("  %-20s %10s\n", c.Name, c.Value.StringFixed(2))
				}
			}

			if csvOut != "" {
				f, err := os.Create(csvOut)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := export.WriteRecentCSV(f, report.Recent); err != nil {
					return err
				}
				fmt.Printf("\nWrote %d transactions to %s\n", len(report.Recent), csvOut)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&months, "months", 0, "Trend window in months (default from config)")
	cmd.Flags().StringVar(&csvOut, "csv", "", "Write recent transactions to a CSV file")
	cmd.Flags().BoolVar(&remote, "remote", false, "Use the server-side rollup instead of the local ledger")
	return cmd
}
