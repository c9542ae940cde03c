package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/kobraille/pkg/core/config"
	kberrors "github.com/msto63/kobraille/pkg/core/errors"
	kblog "github.com/msto63/kobraille/pkg/core/log"
	"github.com/msto63/kobraille/pkg/kobraille"
)

var (
	convertDots      bool
	convertJSON      bool
	convertStructure bool
)

var convertCmd = &cobra.Command{
	Use:     "convert [ausdruck]",
	Aliases: []string{"c", "braille"},
	Short:   "Wandelt einen Ausdruck in Braille um",
	Long: `Wandelt einen Rechenausdruck in koreanische Mathematik-Braille um.

Ohne Argument wird jede Zeile der Standardeingabe als eigener Ausdruck
gelesen. Leere Zeilen werden übersprungen.

Beispiele:
  kobraille convert '(2 + 3) * 4'
  kobraille convert --dots '$7 - 3$'
  echo '10 / 2' | kobraille convert --json`,
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVar(&convertDots, "dots", false, "Punktnummern statt Braille-Zeichen ausgeben")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Vollständiges Ergebnis als JSON ausgeben")
	convertCmd.Flags().BoolVar(&convertStructure, "structure", false, "Struktur zusätzlich ausgeben")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return convertOne(cmd, expressionArg(args))
	}

	var failed, total int
	var firstErr error
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if err := convertOne(cmd, line); err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return kberrors.Wrap(err, "failed to read input").WithCode(kberrors.CodeInternal)
	}

	if failed > 0 {
		appLogger.Warn("some conversions failed", kblog.Fields{
			"failed": failed,
			"total":  total,
		})
		return firstErr
	}
	return nil
}

func convertOne(cmd *cobra.Command, input string) error {
	res, err := engine.Convert(input)
	if err != nil {
		if convertJSON {
			writeJSONError(cmd.OutOrStdout(), input, err)
			return reportedError{err}
		}
		return reportConversionError(cmd, err, input)
	}

	out := cmd.OutOrStdout()
	if convertJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		return enc.Encode(res)
	}

	writeResult(out, res, outputMode(), convertStructure || appConfig.Output.ShowStructure)
	return nil
}

// outputMode applies the --dots flag on top of the configured mode
func outputMode() string {
	if convertDots {
		return config.OutputDots
	}
	return appConfig.Output.Mode
}

func writeResult(w io.Writer, res *kobraille.Result, mode string, showStructure bool) {
	if showStructure {
		fmt.Fprintln(w, res.Structure)
	}
	switch mode {
	case config.OutputDots:
		fmt.Fprintln(w, res.Dots)
	case config.OutputBoth:
		fmt.Fprintln(w, res.Braille)
		fmt.Fprintln(w, res.Dots)
	default:
		fmt.Fprintln(w, styles.Braille.Render(res.Braille))
	}
}

func writeJSONError(w io.Writer, input string, err error) {
	payload := map[string]interface{}{
		"input": input,
		"error": map[string]interface{}{
			"code":    kberrors.CodeOf(err),
			"message": err.Error(),
		},
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(payload)
}
