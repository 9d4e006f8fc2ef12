package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trail-of-forks/smtcat/internal/usecase"
)

func exportCmd() *cobra.Command {
	var corpus string
	var query string
	var output string

	c := &cobra.Command{
		Use:   "export",
		Short: "Export the corpus catalog as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadCorpus(corpus)
			if err != nil {
				return err
			}

			uc := usecase.NewExportCatalog(ws.records, ws.catalog)
			out, err := uc.Execute(cmd.Context(), ws.root, query)
			if err != nil {
				return err
			}

			if output != "" {
				if werr := os.WriteFile(output, append(out, '\n'), 0o644); werr != nil {
					return fmt.Errorf("write export to %q: %w", output, werr)
				}
				fmt.Printf("wrote %s\n", output)
				return nil
			}

			fmt.Println(string(out))
			return nil
		},
	}

	c.Flags().StringVarP(&corpus, "corpus", "c", "", "Corpus root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&query, "query", "q", "", "JSONPath filter over the export (e.g. $.logics[*].name)")
	c.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	return c
}
