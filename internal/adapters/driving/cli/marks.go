package cli

import (
	"encoding/json"
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

// dottedCircle carries a mark when it is displayed on its own.
const dottedCircle = '\u25cc'

var (
	marksClass   string
	marksJSON    bool
	marksReverse bool
)

var marksCmd = &cobra.Command{
	Use:   "marks",
	Short: "List the decoration alphabet",
	Long: `List every decoration mark with its position in the combined alphabet
(above, then within, then below), its class and its code point.`,
	Args: cobra.NoArgs,
	RunE: runMarks,
}

func init() {
	marksCmd.Flags().StringVarP(&marksClass, "class", "c", "all", "classes to list, e.g. above,below")
	marksCmd.Flags().BoolVar(&marksJSON, "json", false, "output as JSON")
	marksCmd.Flags().BoolVarP(&marksReverse, "reverse", "r", false, "list from the end of the alphabet")
	rootCmd.AddCommand(marksCmd)
}

// markEntry is one row of the marks listing.
type markEntry struct {
	Index     int    `json:"index"`
	Mark      string `json:"mark"`
	CodePoint string `json:"code_point"`
	Class     string `json:"class"`
}

func runMarks(cmd *cobra.Command, _ []string) error {
	kind, err := domain.ParseKind(marksClass)
	if err != nil {
		return err
	}

	entries := listMarks(kind, marksReverse)
	if marksJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal marks: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%3d  %s  %-6s  %c%s\n", e.Index, e.CodePoint, e.Class, dottedCircle, e.Mark)
	}
	return nil
}

// listMarks walks the combined alphabet in either direction, keeping the
// marks whose class is in kind.
func listMarks(kind domain.Kind, reverse bool) []markEntry {
	it := domain.AllMarks()
	seq, index, step := it.All(), 0, 1
	if reverse {
		seq, index, step = it.Backward(), domain.TotalMarks-1, -1
	}

	var entries []markEntry
	for i, r := range enumerate(seq, index, step) {
		class, _ := domain.ClassOf(r)
		if !kind.Has(class) {
			continue
		}
		entries = append(entries, markEntry{
			Index:     i,
			Mark:      string(r),
			CodePoint: fmt.Sprintf("%U", r),
			Class:     class.String(),
		})
	}
	return entries
}

func enumerate(seq iter.Seq[rune], start, step int) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		i := start
		for r := range seq {
			if !yield(i, r) {
				return
			}
			i += step
		}
	}
}
