package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func theoriesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "theories",
		Short: "Work with theory records in a corpus",
	}

	c.AddCommand(theoriesListCmd())
	return c
}

func theoriesListCmd() *cobra.Command {
	var corpus string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List theory records",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadCorpus(corpus)
			if err != nil {
				return err
			}

			refs, err := ws.catalog.ListTheories(ws.root)
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no theories found)")
				return nil
			}

			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&corpus, "corpus", "c", "", "Corpus root (optional; autodetected if omitted)")
	return cmd
}
