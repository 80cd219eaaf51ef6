package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/zalgo-cli/internal/adapters/driven/stream"
)

// errNoInput is returned when there is nothing to read and stdin is a terminal.
var errNoInput = errors.New("no input: pass text, --input FILE or pipe into stdin")

// isTerminal is replaced in tests.
var isTerminal = term.IsTerminal

// input is an opened text source.
type input struct {
	io.Reader
	// fromArgs is set for argument text, which is printed with a trailing newline.
	fromArgs bool
	close    func() error
}

func (in input) Close() error {
	if in.close == nil {
		return nil
	}
	return in.close()
}

// openInput picks the text source: arguments first, then --input, then piped stdin.
func openInput(cmd *cobra.Command, args []string, path string) (input, error) {
	if len(args) > 0 {
		return input{Reader: strings.NewReader(strings.Join(args, " ")), fromArgs: true}, nil
	}

	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return input{}, fmt.Errorf("failed to open input: %w", err)
		}
		return input{Reader: f, close: f.Close}, nil
	}

	stdin := cmd.InOrStdin()
	if f, ok := stdin.(*os.File); ok && path != "-" && isTerminal(int(f.Fd())) {
		return input{}, errNoInput
	}
	return input{Reader: stdin}, nil
}

// output is an opened text sink. Commit must be called for file output to
// appear; Close discards it otherwise.
type output struct {
	io.Writer
	file *stream.AtomicFile
}

// openOutput writes to path through an atomic file, or to the command's
// stdout when path is empty or "-".
func openOutput(cmd *cobra.Command, path string) (*output, error) {
	if path == "" || path == "-" {
		return &output{Writer: cmd.OutOrStdout()}, nil
	}
	f, err := stream.CreateAtomic(path)
	if err != nil {
		return nil, err
	}
	return &output{Writer: f, file: f}, nil
}

func (o *output) isFile() bool {
	return o.file != nil
}

func (o *output) Commit() error {
	if o.file == nil {
		return nil
	}
	return o.file.Commit()
}

// Close aborts an uncommitted file. It is a no-op after Commit.
func (o *output) Close() error {
	if o.file == nil {
		return nil
	}
	return o.file.Abort()
}
