package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/usecase"
)

func validateCmd() *cobra.Command {
	var corpus string
	var format string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate every record in a corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadCorpus(corpus)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateCorpus(ws.records, ws.catalog, ws.cfg)
			report, err := uc.Execute(cmd.Context(), ws.root)
			if err != nil {
				return err
			}

			if err := printReport(os.Stdout, report, format); err != nil {
				return err
			}

			if fails := report.Failures(); fails > 0 {
				return fmt.Errorf("validation failed (%d error(s))", fails)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&corpus, "corpus", "c", "", "Corpus root (optional; autodetected if omitted)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printReport(w io.Writer, report domain.ValidationReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "pretty", "":
		printPrettyReport(w, report)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.ValidationReport) {
	total := report.EndedAt.Sub(report.StartedAt)
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Corpus:   %s\n", report.Root)
	fmt.Fprintf(w, "Records:  %d logic(s), %d theory(ies)\n", report.LogicCount, report.TheoryCount)
	fmt.Fprintf(w, "Duration: %s\n", total)
	fmt.Fprintln(w)

	for _, f := range report.Files {
		status := "OK"
		if f.Failed() {
			status = "FAIL"
		}

		rel, err := filepath.Rel(report.Root, f.Path)
		if err != nil {
			rel = f.Path
		}

		fmt.Fprintf(w, "- [%s] %s %s (%s)\n", status, f.Kind, f.Name, rel)
		for _, fin := range f.Findings {
			fmt.Fprintf(w, "    %s %s: %s\n", severityMark(fin.Severity), fin.Severity, fin.Message)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d error(s), %d warning(s)\n", report.Failures(), report.WarningCount())
}

func severityMark(s domain.Severity) string {
	if s == domain.SeverityError {
		return "✗"
	}
	return "!"
}
