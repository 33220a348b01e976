package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/0xjuang/portal22/internal/config"
	"github.com/0xjuang/portal22/internal/doctor"
	"github.com/0xjuang/portal22/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	doctorJSON bool
	doctorFix  bool
)

// doctorCmd diagnoses the local provisioning environment
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose keys and SSH config state",
	Long: `Run read-only diagnostic checks against the local environment.

Checks:
  - ssh-keygen availability
  - managed keys directory and public key parseability
  - sentinel header presence in the SSH config
  - duplicate Host aliases (re-runs append duplicate blocks)

Examples:
  portal22 doctor
  portal22 doctor --json
  portal22 doctor --fix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "attempt automatic fixes where possible")
	rootCmd.AddCommand(doctorCmd)
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

// doctorCommand implements the doctor command logic.
func doctorCommand() error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return err
	}

	checks := doctor.DefaultChecks(paths)
	results := doctor.RunAll(checks)

	if doctorFix {
		results = attemptFixes(checks, results)
	}

	if doctorJSON {
		return outputDoctorJSON(checks, results)
	}

	return outputDoctorText(checks, results)
}

// attemptFixes tries to fix issues where possible and re-runs fixed checks.
func attemptFixes(checks []doctor.Check, results []doctor.CheckResult) []doctor.CheckResult {
	for i, result := range results {
		if result.Fixable && result.Status != doctor.StatusPass {
			if err := checks[i].Fix(); err == nil {
				results[i] = checks[i].Run()
			}
		}
	}
	return results
}

// outputDoctorJSON outputs results in JSON format.
func outputDoctorJSON(checks []doctor.Check, results []doctor.CheckResult) error {
	grouped := make(map[string][]doctor.CheckResult)
	var categoryOrder []string

	for i, check := range checks {
		cat := check.Category()
		if _, exists := grouped[cat]; !exists {
			categoryOrder = append(categoryOrder, cat)
		}
		grouped[cat] = append(grouped[cat], results[i])
	}

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(categoryOrder)),
	}
	for _, cat := range categoryOrder {
		output.Categories = append(output.Categories, CategoryOutput{
			Name:    cat,
			Results: grouped[cat],
		})
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// outputDoctorText outputs results in human-readable format.
func outputDoctorText(checks []doctor.Check, results []doctor.CheckResult) error {
	ui.ConfigureColorProfile()

	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Println()
	fmt.Println(headerStyle.Render("Portal-22 Diagnostic Report"))
	fmt.Println()

	lastCategory := ""
	for i, check := range checks {
		if check.Category() != lastCategory {
			if lastCategory != "" {
				fmt.Println()
			}
			lastCategory = check.Category()
			fmt.Println(headerStyle.Render(lastCategory))
		}

		r := results[i]
		var symbol string
		switch r.Status {
		case doctor.StatusPass:
			symbol = successStyle.Render(ui.SymbolSuccess)
		case doctor.StatusWarn:
			symbol = warnStyle.Render("!")
		default:
			symbol = errorStyle.Render(ui.SymbolFail)
		}

		fmt.Printf("  %s %s\n", symbol, r.Message)
		if r.Suggestion != "" && r.Status != doctor.StatusPass {
			fmt.Printf("    %s\n", mutedStyle.Render(r.Suggestion))
		}

		// List per-key fingerprints under the keys check.
		if keysCheck, ok := check.(*doctor.KeysDirCheck); ok && r.Status == doctor.StatusPass {
			for name, fp := range keysCheck.Fingerprints() {
				fmt.Printf("    %s\n", mutedStyle.Render(name+"  "+fp))
			}
		}
	}

	counts := doctor.CountByStatus(results)
	fmt.Println()
	fmt.Printf("%d pass, %d warn, %d fail\n",
		counts[doctor.StatusPass], counts[doctor.StatusWarn], counts[doctor.StatusFail])

	return nil
}
