package renderer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePDF(t *testing.T) {
	l := testLayout()
	pages := Paginate(makeRows(45), testHeader, l)
	require.Len(t, pages, 3)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "7d1c0f55-4b8e-4a25-9f0e-3f7c1e6c2b10", pages, l))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Equal(t, 3, bytes.Count(out, []byte("<</Type /Page\n")), "one physical page per page")
	assert.Contains(t, buf.String(), "report 7d1c0f55-4b8e-4a25-9f0e-3f7c1e6c2b10")
}

func TestWritePDF_DefaultLayout(t *testing.T) {
	sim := simulateSample(t, "Income")
	l := DefaultLayout()

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, "income", ReportPages(sim, l), l))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("<</Type /Page\n")))
}
