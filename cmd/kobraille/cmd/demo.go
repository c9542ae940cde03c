package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/kobraille/internal/demo"
	kberrors "github.com/msto63/kobraille/pkg/core/errors"
	kblog "github.com/msto63/kobraille/pkg/core/log"
)

var demoSamplesFile string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Wandelt die Beispielausdrücke mit allen Zwischenschritten um",
	Long: `Wandelt eine feste Liste von Beispielausdrücken um und zeigt für
jeden Ausdruck Token, Syntaxbaum, Struktur, Braille und Punktnummern.

Eigene Beispiele lassen sich als YAML-Datei angeben (--samples oder
demo.samples_file in der Konfiguration):

  samples:
    - input: "2 + 3 * 4"
      description: Punkt vor Strich
      structure: "(2 + (3 * 4))"`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().StringVar(&demoSamplesFile, "samples", "", "YAML-Datei mit Beispielausdrücken")
}

func runDemo(cmd *cobra.Command, args []string) error {
	samples := demo.Samples()

	path := demoSamplesFile
	if path == "" {
		path = appConfig.Demo.SamplesFile
	}
	if path != "" {
		loaded, err := demo.LoadSamples(path)
		if err != nil {
			return err
		}
		samples = loaded
		appLogger.Debug("loaded demo samples", kblog.Fields{"path": path, "count": len(samples)})
	}

	sum := demo.NewRunner(engine, cmd.OutOrStdout(), styles).Run(samples)
	if !sum.OK() {
		return reportedError{kberrors.Newf("%d of %d samples did not match", sum.Mismatched+sum.Failed, sum.Total)}
	}
	return nil
}
