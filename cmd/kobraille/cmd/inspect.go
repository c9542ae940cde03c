package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	kbast "github.com/msto63/kobraille/internal/mathexpr/ast"
	"github.com/msto63/kobraille/internal/render"
)

var treePlain bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <ausdruck>",
	Short: "Zeigt die Token-Liste des Lexers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokens,
}

var treeCmd = &cobra.Command{
	Use:     "tree <ausdruck>",
	Aliases: []string{"ast"},
	Short:   "Zeigt den Syntaxbaum",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runTree,
}

var structureCmd = &cobra.Command{
	Use:   "structure <ausdruck>",
	Short: "Zeigt die vollständig geklammerte Struktur",
	Long: `Zeigt den Ausdruck vollständig geklammert, z.B. "2 + 3 * 4" als
"(2 + (3 * 4))". Klammern aus der Eingabe erscheinen als [...].`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStructure,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(structureCmd)

	treeCmd.Flags().BoolVar(&treePlain, "plain", false, "Einfache Textausgabe mit [L]/[R]/[inner]-Markierungen")
}

func runTokens(cmd *cobra.Command, args []string) error {
	input := expressionArg(args)
	res, err := engine.Convert(input)
	if err != nil {
		return reportConversionError(cmd, err, input)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Rule).
		Headers("POS", "TYPE", "VALUE")
	for _, tok := range res.Tokens {
		t.Row(strconv.Itoa(tok.Position), tok.Type.String(), tok.Value)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	input := expressionArg(args)
	res, err := engine.Convert(input)
	if err != nil {
		return reportConversionError(cmd, err, input)
	}

	if treePlain {
		fmt.Fprint(cmd.OutOrStdout(), kbast.Dump(res.Tree))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.TreeString(res.Tree, styles))
	return nil
}

func runStructure(cmd *cobra.Command, args []string) error {
	input := expressionArg(args)
	res, err := engine.Convert(input)
	if err != nil {
		return reportConversionError(cmd, err, input)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Structure)
	return nil
}
