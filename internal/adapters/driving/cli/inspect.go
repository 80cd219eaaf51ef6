package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

var (
	inspectInput string
	inspectJSON  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [text...]",
	Short: "Count characters and marks in text",
	Long: `Count the characters of a text: all runes, base characters, decoration
marks per class, grapheme clusters and terminal display width.`,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectInput, "input", "i", "", "read text from FILE (- for stdin)")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if decorationService == nil {
		return errors.New("decoration service not configured")
	}

	in, err := openInput(cmd, args, inspectInput)
	if errors.Is(err, errNoInput) {
		_ = cmd.Usage()
	}
	if err != nil {
		return err
	}
	defer in.Close()

	stats, err := decorationService.InspectStream(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("failed to inspect input: %w", err)
	}

	if inspectJSON {
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("Runes:     %d\n", stats.Runes)
	cmd.Printf("Base:      %d\n", stats.Base)
	cmd.Printf("Marks:     %d\n", stats.TotalMarks())
	for _, c := range domain.Classes {
		cmd.Printf("  %-7s  %d\n", c.String()+":", stats.Marks[c])
	}
	cmd.Printf("Density:   %.2f marks per character\n", stats.Density())
	cmd.Printf("Graphemes: %d\n", stats.Graphemes)
	cmd.Printf("Width:     %d\n", stats.Width)
	return nil
}
