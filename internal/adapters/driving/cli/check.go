package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check [char|U+XXXX...]",
	Short: "Report whether characters are decoration marks",
	Long: `Report whether each character is one of the decoration marks.

Arguments may be literal text, in which case every character is checked, or
code points written as U+0300 or 0x300.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if decorationService == nil {
		return errors.New("decoration service not configured")
	}

	for _, arg := range args {
		runes, err := parseRunes(arg)
		if err != nil {
			return err
		}
		for _, r := range runes {
			if !decorationService.IsMark(r) {
				cmd.Printf("%U is not a mark\n", r)
				continue
			}
			class, _ := domain.ClassOf(r)
			cmd.Printf("%U is a mark (%s)\n", r, class)
		}
	}
	return nil
}

// parseRunes reads arg as a code point when it has a U+ or 0x prefix and
// as literal text otherwise.
func parseRunes(arg string) ([]rune, error) {
	upper := strings.ToUpper(arg)
	for _, prefix := range []string{"U+", "0X"} {
		if !strings.HasPrefix(upper, prefix) || len(arg) == len(prefix) {
			continue
		}
		v, err := strconv.ParseUint(arg[len(prefix):], 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return nil, fmt.Errorf("%w: invalid code point %q", domain.ErrInvalidInput, arg)
		}
		return []rune{rune(v)}, nil
	}
	return []rune(arg), nil
}
