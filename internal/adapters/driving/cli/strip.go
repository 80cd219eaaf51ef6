package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zalgo-cli/internal/logger"
)

var (
	stripInput  string
	stripOutput string
)

var stripCmd = &cobra.Command{
	Use:     "strip [text...]",
	Aliases: []string{"unapply", "clean"},
	Short:   "Remove combining marks from text",
	Long: `Remove every decoration mark from text, leaving all other characters
as they were. Accents and marks outside the decoration alphabet are kept.`,
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().StringVarP(&stripInput, "input", "i", "", "read text from FILE (- for stdin)")
	stripCmd.Flags().StringVarP(&stripOutput, "output", "o", "", "write to FILE instead of stdout")
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	if decorationService == nil {
		return errors.New("decoration service not configured")
	}

	in, err := openInput(cmd, args, stripInput)
	if errors.Is(err, errNoInput) {
		_ = cmd.Usage()
	}
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(cmd, stripOutput)
	if err != nil {
		return err
	}
	defer out.Close()

	n, err := decorationService.StripStream(cmd.Context(), out, in)
	if err != nil {
		return fmt.Errorf("strip failed: %w", err)
	}
	logger.Info("%d bytes written", n)

	if in.fromArgs && !out.isFile() {
		fmt.Fprintln(out)
	}
	if err := out.Commit(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
