package services

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/zalgo-cli/internal/core/domain"
)

func decorated() string {
	var b strings.Builder
	i := 0
	for _, r := range domain.Invocation {
		b.WriteRune(r)
		if r != '\n' {
			m, _, _ := domain.MarkAt(i % domain.TotalMarks)
			b.WriteRune(m)
			i += 7
		}
	}
	return b.String()
}

func TestStripTransformer_String(t *testing.T) {
	out, _, err := transform.String(StripTransformer(), decorated())

	require.NoError(t, err)
	assert.Equal(t, domain.Invocation, out)
}

func TestStripTransformer_Reader(t *testing.T) {
	r := transform.NewReader(iotest.HalfReader(strings.NewReader(decorated())), StripTransformer())

	got, err := io.ReadAll(r)

	require.NoError(t, err)
	assert.Equal(t, domain.Invocation, string(got))
}

func TestStripTransformer_LargeInput(t *testing.T) {
	input := strings.Repeat(decorated(), 200)

	got, err := io.ReadAll(transform.NewReader(strings.NewReader(input), StripTransformer()))

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat(domain.Invocation, 200), string(got))
}

func TestStripTransformer_SplitWrites(t *testing.T) {
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, StripTransformer())

	input := []byte(decorated())
	for len(input) > 0 {
		n := min(3, len(input))
		_, err := w.Write(input[:n])
		require.NoError(t, err)
		input = input[n:]
	}
	require.NoError(t, w.Close())

	assert.Equal(t, domain.Invocation, buf.String())
}
