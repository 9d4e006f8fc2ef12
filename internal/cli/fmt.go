package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/trail-of-forks/smtcat/internal/usecase"
)

func fmtCmd() *cobra.Command {
	var corpus string
	var check bool

	c := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite records into canonical form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadCorpus(corpus)
			if err != nil {
				return err
			}

			uc := usecase.NewFormatRecords(ws.formatter, ws.catalog)
			report, err := uc.Execute(cmd.Context(), ws.root, check)
			if err != nil {
				return err
			}

			for _, p := range report.Changed {
				rel, rerr := filepath.Rel(ws.root, p)
				if rerr != nil {
					rel = p
				}
				fmt.Println(rel)
			}

			if check && len(report.Changed) > 0 {
				return fmt.Errorf("%d of %d record(s) not in canonical form", len(report.Changed), report.Total)
			}
			if !check {
				fmt.Printf("formatted %d of %d record(s)\n", len(report.Changed), report.Total)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&corpus, "corpus", "c", "", "Corpus root (optional; autodetected if omitted)")
	c.Flags().BoolVar(&check, "check", false, "List non-canonical records without rewriting them")
	return c
}
