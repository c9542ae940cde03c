package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/kobraille/internal/render"
	"github.com/msto63/kobraille/pkg/core/config"
	kblog "github.com/msto63/kobraille/pkg/core/log"
	"github.com/msto63/kobraille/pkg/kobraille"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

// Initialized by loadApp before any subcommand runs
var (
	appConfig *config.Config
	appLogger *kblog.Logger
	engine    *kobraille.Engine
	styles    = render.DefaultStyles()
)

var rootCmd = &cobra.Command{
	Use:   "kobraille",
	Short: "kobraille - Rechenausdrücke in koreanische Mathematik-Braille",
	Long: `kobraille überträgt Rechenausdrücke aus Ziffern, + - * / und
Klammern in koreanische Mathematik-Braille (Punktschrift).

Ein optionales $...$ um den Ausdruck wird ignoriert. Jede Zahl,
die einen neuen Zahlkontext eröffnet, erhält das Zahlzeichen ⠼.

Befehle:
  convert    - Ausdruck umwandeln
  tokens     - Token-Liste anzeigen
  tree       - Syntaxbaum anzeigen
  structure  - vollständig geklammerte Struktur anzeigen
  demo       - Beispielausdrücke mit allen Zwischenschritten
  tui        - interaktiver Konverter`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadApp,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output (Log-Level debug)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format: json, text oder console")
}

// loadApp resolves the configuration and builds the logger and engine
func loadApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}

	if verbose {
		cfg.General.LogLevel = "debug"
	}
	if logFormat != "" {
		cfg.General.LogFormat = logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	kblog.SetDefault(logger)

	eng, err := kobraille.New(kobraille.Options{
		Logger:         logger,
		MaxInputLength: cfg.Converter.MaxInputLength,
	})
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded", kblog.Fields{
		"config":      cfgFile,
		"output_mode": cfg.Output.Mode,
	})

	appConfig, appLogger, engine = cfg, logger, eng
	return nil
}

// expressionArg joins the arguments so unquoted expressions like
// "kobraille tokens 2 + 3" work.
func expressionArg(args []string) string {
	return strings.Join(args, " ")
}

// reportedError marks an error the command already printed
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// reportConversionError prints err with a position marker and returns it
// marked as reported.
func reportConversionError(cmd *cobra.Command, err error, input string) error {
	fmt.Fprintln(cmd.ErrOrStderr(), render.Error(err, input, styles))
	return reportedError{err}
}

func printError(err error) {
	var reported reportedError
	if errors.As(err, &reported) {
		return
	}
	fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
}
