package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trail-of-forks/smtcat/internal/infra/fscorpus"
	"github.com/trail-of-forks/smtcat/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize a corpus with starter records",
		RunE: func(_ *cobra.Command, _ []string) error {
			root := strings.TrimSpace(path)
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				root = wd
			}

			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid corpus path: %w", err)
			}

			uc := usecase.NewInitCorpus(fscorpus.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}

			fmt.Printf("initialized corpus at %s\n", abs)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (defaults to the current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite starter files that already exist")
	return c
}
