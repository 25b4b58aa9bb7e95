package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/portfolio/internal/ui/markup"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check page markup against the UI element contract",
	Long: `Check parses an HTML file and reports every element the browser code
binds to. Missing required elements make the command fail; missing
animation classes and nav links without a matching section are reported
but do not fail.

Without an argument, <dir>/index.html is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("dir", "web", "directory containing index.html")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := filepath.Join(serveViper.GetString("dir"), "index.html")
	if dir, _ := cmd.Flags().GetString("dir"); cmd.Flags().Changed("dir") {
		path = filepath.Join(dir, "index.html")
	}
	if len(args) == 1 {
		path = args[0]
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	report, err := markup.Check(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, finding := range report.Findings {
		status := "ok"
		switch {
		case finding.Count == 0 && finding.Requirement.Optional:
			status = "absent"
		case finding.Count == 0:
			status = "MISSING"
		}
		fmt.Fprintf(out, "%-8s %-48s %d\n", status, finding.Requirement.Selector, finding.Count)
	}
	for _, href := range report.DanglingLinks {
		fmt.Fprintf(out, "%-8s nav link %s has no matching section\n", "warn", href)
	}
	return report.Err()
}
