/*
main.go - leavectl command-line entry point

PURPOSE:
  A thin CLI over the leave calculation engine for one-off runs without
  the HTTP server. Reads a YAML case file, runs the same pipeline the
  API exposes, and prints a plain-text report.

COMMANDS:
  leavectl rules                     List the rule profile catalog
  leavectl summarize -f case.yaml    Aggregate attendance records
  leavectl calculate -f case.yaml    Run the entitlement + payout pipeline

CASE FILE (YAML):
  rule: law_basic
  service:
    full_years: 3
    full_months: 0
    attendance_rate: 95
  wage:
    type: monthly
    amount: 2000000
    monthly_work_days: 20
  granted_days: 16
  used_days: 5
  records:
    - category: 병가
      duration: 1일5시간
      hours_per_day: 8

SEE ALSO:
  - commands.go: Command implementations
*/
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leavectl",
	Short: "Annual-leave entitlement and payout calculator",
	Long:  `leavectl computes annual-leave entitlements and unused-leave payouts for a single employee record, driven by a selectable rule profile.`,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(calculateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
