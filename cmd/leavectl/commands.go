package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/warp/leave-engine/duration"
	"github.com/warp/leave-engine/pipeline"
	"github.com/warp/leave-engine/rules"
	"github.com/warp/leave-engine/wage"
)

// =============================================================================
// CASE FILE
// =============================================================================

// caseFile is the YAML input for summarize and calculate.
type caseFile struct {
	Rule    string `yaml:"rule"`
	Service struct {
		FullYears      int     `yaml:"full_years"`
		FullMonths     int     `yaml:"full_months"`
		AttendanceRate float64 `yaml:"attendance_rate"`
	} `yaml:"service"`
	Wage struct {
		Type            string  `yaml:"type"`
		Amount          float64 `yaml:"amount"`
		HoursPerDay     float64 `yaml:"hours_per_day"`
		MonthlyWorkDays float64 `yaml:"monthly_work_days"`
	} `yaml:"wage"`
	GrantedDays float64 `yaml:"granted_days"`
	UsedDays    float64 `yaml:"used_days"`
	Records     []struct {
		Category    string  `yaml:"category"`
		Duration    string  `yaml:"duration"`
		HoursPerDay float64 `yaml:"hours_per_day"`
	} `yaml:"records"`
}

func loadCase(path string) (*caseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file %s: %w", path, err)
	}
	var c caseFile
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse case file %s: %w", path, err)
	}
	return &c, nil
}

func (c *caseFile) records() []duration.Record {
	out := make([]duration.Record, len(c.Records))
	for i, r := range c.Records {
		out[i] = duration.Record{
			Category:    r.Category,
			RawDuration: r.Duration,
			HoursPerDay: decimal.NewFromFloat(r.HoursPerDay),
		}
	}
	return out
}

// =============================================================================
// COMMANDS
// =============================================================================

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rule profile catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range rules.All() {
			fmt.Printf("%-20s %-26s round down to %d\n", p.ID, p.Name, p.RoundingStep)
		}
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Aggregate attendance records by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		c, err := loadCase(path)
		if err != nil {
			return err
		}

		summaries := duration.Summarize(c.records())
		if len(summaries) == 0 {
			fmt.Println("No records.")
			return nil
		}
		for _, s := range summaries {
			fmt.Printf("%s: %d record(s) | %s | %s hours | %s\n",
				s.Category, s.Count, s.TotalDisplay, s.TotalHoursDecimal, s.ConvertedDisplay)
		}
		return nil
	},
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the entitlement + payout pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		c, err := loadCase(path)
		if err != nil {
			return err
		}

		result := pipeline.Run(
			rules.ID(c.Rule),
			rules.ServiceSummary{
				FullYears:      c.Service.FullYears,
				FullMonths:     c.Service.FullMonths,
				AttendanceRate: c.Service.AttendanceRate,
			},
			wage.Spec{
				Type:            wage.Type(c.Wage.Type),
				Amount:          decimal.NewFromFloat(c.Wage.Amount),
				HoursPerDay:     decimal.NewFromFloat(c.Wage.HoursPerDay),
				MonthlyWorkDays: decimal.NewFromFloat(c.Wage.MonthlyWorkDays),
			},
			decimal.NewFromFloat(c.GrantedDays),
			decimal.NewFromFloat(c.UsedDays),
		)

		fmt.Printf("Rule:       %s (%s)\n", result.Rule.Name, result.Rule.ID)
		if result.Suggestion.SuggestedDays != nil {
			fmt.Printf("Suggested:  %d days\n", *result.Suggestion.SuggestedDays)
		} else {
			fmt.Printf("Suggested:  manual entry\n")
		}
		fmt.Printf("            %s\n", result.Suggestion.Description)
		fmt.Printf("Leave:      granted %s, used %s, unused %s\n",
			result.Payout.GrantedDays, result.Payout.UsedDays, result.Payout.UnusedDays)
		fmt.Printf("Daily wage: %s won (raw %s)\n",
			humanize.Comma(result.Payout.DailyWageRounded), result.Payout.DailyWageRaw)
		fmt.Printf("Payout:     %s won (raw %s)\n",
			humanize.Comma(result.Payout.PayoutRounded), result.Payout.PayoutRaw)
		return nil
	},
}

func init() {
	summarizeCmd.Flags().StringP("file", "f", "case.yaml", "YAML case file")
	calculateCmd.Flags().StringP("file", "f", "case.yaml", "YAML case file")
}
