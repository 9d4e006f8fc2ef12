package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/trail-of-forks/smtcat/internal/usecase"
)

func indexCmd() *cobra.Command {
	var corpus string

	c := &cobra.Command{
		Use:   "index",
		Short: "Generate the corpus index document",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadCorpus(corpus)
			if err != nil {
				return err
			}

			uc := usecase.NewBuildIndex(ws.records, ws.catalog, ws.index)
			path, err := uc.Execute(cmd.Context(), ws.root)
			if err != nil {
				return err
			}

			rel, rerr := filepath.Rel(ws.root, path)
			if rerr != nil {
				rel = path
			}
			fmt.Printf("wrote %s\n", rel)
			return nil
		},
	}

	c.Flags().StringVarP(&corpus, "corpus", "c", "", "Corpus root (optional; autodetected if omitted)")
	return c
}
