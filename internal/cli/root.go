package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/trail-of-forks/smtcat/internal/infra/corpusfinder"
	"github.com/trail-of-forks/smtcat/internal/infra/fscorpus"
	"github.com/trail-of-forks/smtcat/internal/infra/logger"
	"github.com/trail-of-forks/smtcat/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "smtcat",
		Short:        "smtcat browses, validates, and formats SMT-LIB logic and theory records",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := corpusfinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				CorpusLocator:     finder,
				CorpusInitializer: fscorpus.NewInitializer(),
				Logger:            logger.L(),
				Debug:             debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .smtcat/logs/smtcat.log")

	cmd.AddCommand(
		logicsCmd(),
		theoriesCmd(),
		showCmd(),
		validateCmd(),
		fmtCmd(),
		exportCmd(),
		indexCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
