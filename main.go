// Command bankcore runs a scripted demonstration of the banking core: it
// builds one account of each variant from the configuration file, applies a
// few transactions, and prints statements, classifications and audit
// reports. All domain logic lives in the packages; this file is wiring.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"bankcore/account"
	"bankcore/audit"
	"bankcore/classify"
	"bankcore/config"
	"bankcore/model"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "bankcore",
	Short: "Run the banking core demo scenario",
	Long: `Builds a savings, a checking and a business account from the
configuration file, runs a short scripted scenario over them, and prints
each account's statement, transaction classifications and audit reports.`,
	RunE: runDemo,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "bankcore.toml", "Path to the TOML configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	savings := account.NewSavings("alice", dec("1000"), cfg.InterestRate())
	checking := account.NewChecking("bob", dec("0"), cfg.OverdraftLimit())
	business := account.NewBusiness("acme", dec("10000"), cfg.DailyCap())

	accounts := []account.Account{savings, checking, business}
	for _, acc := range accounts {
		for _, r := range cfg.Rules.Build() {
			acc.AddRule(r)
		}
		acc.Subscribe(func(ev model.BalanceChange) {
			log.Printf("balance changed: %s -> %s (%s)", ev.Previous, ev.New, ev.Transaction)
		})
		// The audit capability is reachable only through an explicit
		// assertion; checking accounts do not have it.
		if aud, ok := acc.(account.Auditable); ok {
			aud.AttachAuditSink(func(e audit.Entry) {
				log.Printf("audit [%s]: %s", e.AccountID[:8], e.Event)
			})
		}
	}

	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC) // a Monday
	apply := func(acc account.Account, res account.Result) {
		log.Printf("%s/%s: %s", acc.Kind(), acc.Owner(), res)
	}

	tx, _ := model.NewDeposit(dec("50"), "payroll", now)
	apply(savings, savings.Deposit(tx))

	tx, _ = model.NewWithdrawal(dec("2000"), "car repair", now.Add(time.Hour))
	apply(savings, savings.Withdraw(tx))

	tx, _ = model.NewWithdrawal(dec("150"), "groceries", now.Add(2*time.Hour))
	apply(checking, checking.Withdraw(tx))

	res, err := business.Transfer(dec("3000"), "supplier invoice", now.Add(3*time.Hour), checking)
	if err != nil {
		return err
	}
	apply(business, res)

	res, err = business.Transfer(dec("3000"), "second invoice", now.Add(4*time.Hour), checking)
	if err != nil {
		return err
	}
	apply(business, res)

	if ev, ok := savings.AccrueInterest(now.Add(5 * time.Hour)); ok {
		log.Printf("savings interest: +%s", ev.Delta())
	}

	for _, acc := range accounts {
		printStatement(acc)
		if aud, ok := acc.(account.Auditable); ok {
			report := aud.GenerateReport()
			log.Printf("audit report %s/%s: %d events between %s and %s",
				acc.Kind(), acc.Owner(), report.Count,
				report.First.Format(time.RFC3339), report.Last.Format(time.RFC3339))
		}
	}
	return nil
}

func printStatement(acc account.Account) {
	fmt.Printf("\nStatement — %s account of %s (opening %s)\n", acc.Kind(), acc.Owner(), acc.OpeningBalance())
	for entry := range acc.Statement() {
		tx := entry.Transaction
		fmt.Printf("  %2d  %-50s balance %10s  [%s/%s/%s]\n",
			entry.Position, tx.String(), entry.RunningBalance,
			classify.Classify(tx), classify.Risk(tx), classify.AmountBand(tx))
	}
	fmt.Printf("  closing balance: %s\n", acc.Balance())
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("bad literal %q: %v", s, err)
	}
	return d
}
