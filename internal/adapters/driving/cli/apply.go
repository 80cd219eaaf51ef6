package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zalgo-cli/internal/adapters/driven/stream"
	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
	"github.com/custodia-labs/zalgo-cli/internal/core/ports/driving"
	"github.com/custodia-labs/zalgo-cli/internal/logger"
)

var (
	applyFlags  decorationFlags
	applyInput  string
	applyOutput string
	applySample bool
)

var applyCmd = &cobra.Command{
	Use:     "apply [text...]",
	Aliases: []string{"decorate"},
	Short:   "Decorate text with combining marks",
	Long: `Decorate text with combining marks.

Text is taken from the arguments, from --input or from piped stdin, in that
order. Without a class flag the configured classes apply (within and below
unless changed with 'zalgo config set').

Intensities:
  tiny    - a few marks per character (alias mini)
  normal  - a moderate pile
  large   - a tall pile (alias maxi)
  random  - one of the above, chosen per character
  --exact a,w,b  - exactly a above, w within and b below marks per character

Examples:
  zalgo apply -u -d "he comes"
  echo "he comes" | zalgo apply -s large
  zalgo apply -i notes.txt -o notes.zalgo.txt --rng pcg --seed 7
  zalgo apply --sample --rate 40`,
	RunE: runApply,
}

func init() {
	applyFlags.register(applyCmd)
	applyCmd.Flags().StringVarP(&applyInput, "input", "i", "", "read text from FILE (- for stdin)")
	applyCmd.Flags().StringVarP(&applyOutput, "output", "o", "", "write to FILE instead of stdout")
	applyCmd.Flags().BoolVar(&applySample, "sample", false, "decorate the built-in invocation text")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	if decorationService == nil {
		return errors.New("decoration service not configured")
	}

	opts, err := applyFlags.resolve(cmd)
	if err != nil {
		return err
	}

	if applySample {
		args = []string{domain.Invocation}
	}
	in, err := openInput(cmd, args, applyInput)
	if errors.Is(err, errNoInput) {
		_ = cmd.Usage()
	}
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(cmd, applyOutput)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := decorateTo(cmd, out, in, opts); err != nil {
		return err
	}
	if in.fromArgs && !out.isFile() {
		fmt.Fprintln(out)
	}
	if err := out.Commit(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// decorateTo streams r into w with the resolved options, throttled when a
// rate is set.
func decorateTo(cmd *cobra.Command, w io.Writer, r io.Reader, opts resolvedOptions) error {
	ctx := cmd.Context()
	sink := stream.Throttle(ctx, w, opts.rate)

	result, err := decorationService.Stream(ctx, sink, r, driving.StreamRequest{
		Options: opts.options,
		Stages:  opts.stages,
	})
	if err != nil {
		return fmt.Errorf("decoration failed: %w", err)
	}
	if f, ok := sink.(*stream.RateLimitedWriter); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("decoration failed: %w", err)
		}
	}

	logger.Info("%d characters decorated with %s (%s)", result.BaseRunes,
		strings.Join(opts.options.Kind.Names(), "+"), opts.options.Intensity)
	return nil
}
