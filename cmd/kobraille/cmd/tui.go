package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/kobraille/internal/tui/converter"
	kblog "github.com/msto63/kobraille/pkg/core/log"
	"github.com/msto63/kobraille/pkg/kobraille"
)

var tuiNoDots bool

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"interactive", "i"},
	Short:   "Startet den interaktiven Konverter",
	Long: `Startet den interaktiven Konverter.

Die Umwandlung wird während der Eingabe angezeigt; Enter übernimmt
den Ausdruck in den Verlauf.

Tastenkuerzel:
  Enter       Ausdruck übernehmen
  Ctrl+D      Punktnummern ein/aus
  Ctrl+T      Syntaxbaum ein/aus
  Ctrl+L      Verlauf leeren
  PgUp/PgDn   Verlauf scrollen
  Esc/Ctrl+C  Beenden`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiNoDots, "no-dots", false, "Punktnummern ausblenden")
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Logging to the terminal would corrupt the alt screen
	eng, err := kobraille.New(kobraille.Options{
		Logger:         kblog.NewNop(),
		MaxInputLength: appConfig.Converter.MaxInputLength,
	})
	if err != nil {
		return err
	}

	return converter.Run(converter.Config{
		Engine:      eng,
		HistorySize: appConfig.TUI.HistorySize,
		ShowDots:    !tuiNoDots,
		ShowTree:    appConfig.Output.ShowStructure,
	})
}
