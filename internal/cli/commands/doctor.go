package commands

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/roman/internal/cli/config"
	"github.com/leapstack-labs/roman/internal/cli/output"
	"github.com/leapstack-labs/roman/internal/store"
	"github.com/leapstack-labs/roman/pkg/numeral"
	"github.com/spf13/cobra"
)

// Check statuses.
const (
	StatusPass  = "pass"
	StatusWarn  = "warn"
	StatusError = "error"
)

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, store and stored records",
		Long: `Run health checks against the current configuration and store.

The doctor command reports:
- Which configuration file is in use
- Whether the store can be opened and pinged
- The applied schema version for SQL stores
- Stored person records that no longer decode or validate
- A full encode/decode round trip over [1, 3999]

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Check the default configuration
  roman doctor

  # Check a SQLite store as JSON
  roman doctor --store sqlite -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd)
		},
	}
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Summary         DoctorSummary `json:"summary"`
	HealthChecks    []HealthCheck `json:"health_checks"`
	Score           int           `json:"score"`
	Recommendations []string      `json:"recommendations"`
	IssueCount      int           `json:"issue_count"`
}

// DoctorSummary describes the checked environment.
type DoctorSummary struct {
	ConfigFile    string `json:"config_file,omitempty"`
	Driver        string `json:"driver"`
	Collection    string `json:"collection"`
	Records       int    `json:"records"`
	SchemaVersion int64  `json:"schema_version,omitempty"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Group      string   `json:"group"`
	Status     string   `json:"status"`
	IssueCount int      `json:"issue_count"`
	Details    []string `json:"details,omitempty"`
}

func runDoctor(cmd *cobra.Command) error {
	cc := NewCommandContextWithoutStore(cmd)
	ctx := cmd.Context()

	out := &DoctorOutput{
		Summary: DoctorSummary{
			ConfigFile: config.GetConfigFileUsed(),
			Driver:     cc.Cfg.Store.Driver,
			Collection: cc.Cfg.Collection,
		},
	}

	out.HealthChecks = append(out.HealthChecks, checkConfigFile(out.Summary.ConfigFile))

	st, err := openStore(ctx, cc.Cfg, cc.Logger)
	if err != nil {
		out.HealthChecks = append(out.HealthChecks, failedCheck("ST01", "Store reachable", "store", err))
	} else {
		defer func() {
			if err := st.Close(); err != nil {
				cc.Logger.Warn("failed to close store", "error", err)
			}
		}()
		out.HealthChecks = append(out.HealthChecks, checkStore(ctx, st, &out.Summary)...)
	}

	out.HealthChecks = append(out.HealthChecks, checkRoundTrip())

	for _, check := range out.HealthChecks {
		out.IssueCount += check.IssueCount
	}
	out.Score = calculateHealthScore(out.HealthChecks)
	out.Recommendations = generateRecommendations(out.HealthChecks)

	r := cc.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(out)
	case output.ModeMarkdown:
		renderDoctorMarkdown(r, out)
	default:
		renderDoctorText(r, out)
	}
	return nil
}

func failedCheck(id, name, group string, err error) HealthCheck {
	return HealthCheck{
		ID:         id,
		Name:       name,
		Group:      group,
		Status:     StatusError,
		IssueCount: 1,
		Details:    []string{err.Error()},
	}
}

func checkConfigFile(path string) HealthCheck {
	check := HealthCheck{ID: "CF01", Name: "Configuration file", Group: "configuration", Status: StatusPass}
	if path == "" {
		check.Status = StatusWarn
		check.IssueCount = 1
		check.Details = []string{"no roman.yaml found, using built-in defaults"}
		return check
	}
	check.Details = []string{path}
	return check
}

// checkStore pings st, reads its schema version and validates every record.
func checkStore(ctx context.Context, st store.Store, summary *DoctorSummary) []HealthCheck {
	if err := st.Ping(ctx); err != nil {
		return []HealthCheck{failedCheck("ST01", "Store reachable", "store", err)}
	}
	checks := []HealthCheck{{ID: "ST01", Name: "Store reachable", Group: "store", Status: StatusPass}}

	if summary.Driver != store.DriverMemory {
		version, err := store.SchemaVersion(ctx, st)
		switch {
		case err != nil:
			checks = append(checks, failedCheck("ST02", "Schema migrated", "store", err))
		case version < 1:
			checks = append(checks, HealthCheck{
				ID: "ST02", Name: "Schema migrated", Group: "store", Status: StatusError, IssueCount: 1,
				Details: []string{fmt.Sprintf("schema version %d", version)},
			})
		default:
			summary.SchemaVersion = version
			checks = append(checks, HealthCheck{ID: "ST02", Name: "Schema migrated", Group: "store", Status: StatusPass})
		}
	}

	names, err := st.ListKeys(ctx, summary.Collection)
	if err != nil {
		return append(checks, failedCheck("RC01", "Records decode", "records", err))
	}
	summary.Records = len(names)

	records := HealthCheck{ID: "RC01", Name: "Records decode", Group: "records", Status: StatusPass}
	for _, name := range names {
		p, err := getPerson(ctx, st, summary.Collection, name)
		if err == nil {
			err = p.Validate()
		}
		if err == nil && p.Name != name {
			err = fmt.Errorf("stored under %q but named %q", name, p.Name)
		}
		if err != nil {
			records.IssueCount++
			records.Details = append(records.Details, fmt.Sprintf("%s: %v", name, err))
		}
	}
	if records.IssueCount > 0 {
		records.Status = StatusWarn
	}
	return append(checks, records)
}

func checkRoundTrip() HealthCheck {
	check := HealthCheck{ID: "NM01", Name: "Numeral round trip", Group: "numerals", Status: StatusPass}
	for n := numeral.MinValue; n <= numeral.MaxValue; n++ {
		s, err := numeral.Encode(n)
		if err == nil {
			var got int
			if got, err = numeral.Decode(s); err == nil && got != n {
				err = fmt.Errorf("%s decodes to %d", s, got)
			}
		}
		if err != nil {
			check.IssueCount++
			check.Details = append(check.Details, fmt.Sprintf("%d: %v", n, err))
		}
	}
	if check.IssueCount > 0 {
		check.Status = StatusError
	}
	return check
}

// calculateHealthScore computes a health score from 0-100.
// Errors cost twice as much as warnings.
func calculateHealthScore(checks []HealthCheck) int {
	score := 100
	for _, check := range checks {
		switch check.Status {
		case StatusError:
			score -= 25
		case StatusWarn:
			score -= 10
		}
	}
	return max(score, 0)
}

// generateRecommendations creates actionable recommendations based on findings.
func generateRecommendations(checks []HealthCheck) []string {
	var recommendations []string
	for _, check := range checks {
		if check.Status == StatusPass {
			continue
		}
		if rec := getRecommendation(check.ID); rec != "" {
			recommendations = append(recommendations, rec)
		}
	}
	return recommendations
}

func getRecommendation(id string) string {
	switch id {
	case "CF01":
		return "Run 'roman init' to write a roman.yaml with every option"
	case "ST01":
		return "Check --store, --store-path and --store-dsn point at a reachable database"
	case "ST02":
		return "Open the store once with a writable connection to apply migrations"
	case "RC01":
		return "Re-add or overwrite the listed records with 'roman names add'"
	case "NM01":
		return "The numeral tables are inconsistent; rebuild roman from a clean checkout"
	default:
		return ""
	}
}

func statusLabel(status string) string {
	switch status {
	case StatusWarn:
		return "WARN"
	case StatusError:
		return "ERROR"
	default:
		return "PASS"
	}
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header.Render("roman Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	r.Println(styles.Header.Render("Summary"))
	r.Printf("   Store: %s | Collection: %s | Records: %d\n", out.Summary.Driver, out.Summary.Collection, out.Summary.Records)
	if out.Summary.SchemaVersion > 0 {
		r.Printf("   Schema version: %d\n", out.Summary.SchemaVersion)
	}
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.Success.Render(output.IconPass)
		switch check.Status {
		case StatusWarn:
			icon = styles.Warning.Render(output.IconWarn)
		case StatusError:
			icon = styles.Error.Render(output.IconFail)
		}
		r.Printf("   %s %s: %s\n", icon, check.ID, check.Name)

		// Show first 3 details
		for i, detail := range check.Details {
			if i >= 3 {
				r.Println(styles.Muted.Render(fmt.Sprintf("       ... and %d more", len(check.Details)-3)))
				break
			}
			r.Println(styles.Muted.Render("       - " + detail))
		}
	}
	r.Println("")

	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")

	if len(out.Recommendations) > 0 {
		r.Println(styles.Header.Render("Recommendations"))
		for i, rec := range out.Recommendations {
			r.Printf("   %d. %s\n", i+1, rec)
		}
		r.Println("")
	}
}

func renderDoctorMarkdown(r *output.Renderer, out *DoctorOutput) {
	r.Println("# roman Health Report")
	r.Println("")

	r.Println("## Summary")
	r.Println("")
	if out.Summary.ConfigFile != "" {
		r.Printf("- **Config**: %s\n", out.Summary.ConfigFile)
	}
	r.Printf("- **Store**: %s\n", out.Summary.Driver)
	r.Printf("- **Collection**: %s\n", out.Summary.Collection)
	r.Printf("- **Records**: %d\n", out.Summary.Records)
	r.Println("")

	r.Println("## Health Checks")
	r.Println("")
	for _, check := range out.HealthChecks {
		r.Printf("- **[%s]** %s: %s\n", statusLabel(check.Status), check.ID, check.Name)
		for _, detail := range check.Details {
			r.Printf("  - %s\n", detail)
		}
	}
	r.Println("")

	r.Println("## Health Score")
	r.Println("")
	r.Printf("**%d/100**\n", out.Score)

	if len(out.Recommendations) > 0 {
		r.Println("")
		r.Println("## Recommendations")
		r.Println("")
		for i, rec := range out.Recommendations {
			r.Printf("%d. %s\n", i+1, rec)
		}
	}
}
