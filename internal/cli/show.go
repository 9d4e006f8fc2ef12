package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trail-of-forks/smtcat/internal/domain"
	"github.com/trail-of-forks/smtcat/internal/infra/smt2"
)

func showCmd() *cobra.Command {
	var corpus string

	c := &cobra.Command{
		Use:   "show <logic-or-theory>",
		Short: "Show a record's summary and canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ws, err := loadCorpus(corpus)
			if err != nil {
				return err
			}

			path, kind, err := resolveRecordArg(ws, args[0])
			if err != nil {
				return err
			}

			var summary string
			var canonical []byte
			var warns []domain.Warning

			switch kind {
			case domain.RecordTheory:
				thy, w, lerr := ws.records.LoadTheory(path)
				if lerr != nil {
					return lerr
				}
				summary, canonical, warns = thy.Summary(), smt2.FormatTheory(thy), w
			default:
				lg, w, lerr := ws.records.LoadLogic(path)
				if lerr != nil {
					return lerr
				}
				summary, canonical, warns = lg.Summary(), smt2.FormatLogic(lg), w
			}

			for _, w := range warns {
				fmt.Fprintf(os.Stderr, "warning: %s\n", w)
			}

			fmt.Println(summary)
			fmt.Println()
			fmt.Print(string(canonical))
			return nil
		},
	}

	c.Flags().StringVarP(&corpus, "corpus", "c", "", "Corpus root (optional; autodetected if omitted)")
	return c
}
