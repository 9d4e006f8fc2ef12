package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func logicsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "logics",
		Short: "Work with logic records in a corpus",
	}

	c.AddCommand(logicsListCmd())
	return c
}

func logicsListCmd() *cobra.Command {
	var corpus string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logic records",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadCorpus(corpus)
			if err != nil {
				return err
			}

			refs, err := ws.catalog.ListLogics(ws.root)
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no logics found)")
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
