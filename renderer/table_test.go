package renderer

import (
	"testing"

	"github.com/etnz/assetflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulateSample(t *testing.T, model string) *assetflow.Simulation {
	t.Helper()
	m, err := assetflow.DefaultCatalog().Lookup(model)
	require.NoError(t, err)
	sim, err := assetflow.Simulate(assetflow.SampleAllocation(), m, assetflow.CompareOptions{})
	require.NoError(t, err)
	return sim
}

func TestComparisonTable(t *testing.T) {
	sim := simulateSample(t, "Balanced")
	header, cells := ComparisonTable("Balanced", sim.Rows)

	assert.Equal(t, []string{"Asset Type", "Current (%)", "Balanced Model (%)", "Gap (%)", "Suggested Action"}, header)
	require.Len(t, cells, 6)
	assert.Equal(t, []string{"Cash", "5.7", "20", "-14.3", "2503 buy"}, cells[0])
	assert.Equal(t, []string{"Savings", "17.1", "0", "17.1", "2993 sell"}, cells[1])
	assert.Equal(t, []string{"KR_Stock", "40.0", "30", "10.0", "1750 sell"}, cells[2])
}

func TestReportPages(t *testing.T) {
	sim := simulateSample(t, "Growth")
	pages := ReportPages(sim, DefaultLayout())

	require.Len(t, pages, 1)
	assert.Equal(t, 6, pages[0].Rows)
	title := cellsWith(pages[0], Title)
	require.Len(t, title, 1)
	assert.Equal(t, "Rebalancing Report (Growth Portfolio)", title[0].Text)
	assert.Equal(t, "Growth Model (%)", cellsWith(pages[0], Bold)[2].Text)
}

func TestCatalogMarkdown(t *testing.T) {
	got := CatalogMarkdown(assetflow.DefaultCatalog())

	assert.Contains(t, got, "# Model Portfolios")
	for _, name := range []string{"Income", "Growth", "Balanced"} {
		assert.Contains(t, got, "## "+name)
	}
	assert.Contains(t, got, "Target (%)")
	assert.NotContains(t, got, "TARGET")
	assert.Contains(t, got, "KR_Stock")
}

func TestModelMarkdown(t *testing.T) {
	m, err := assetflow.DefaultCatalog().Lookup("income")
	require.NoError(t, err)

	got := ModelMarkdown(m)
	assert.Contains(t, got, "## Income")
	assert.NotContains(t, got, "# Model Portfolios")
	assert.NotContains(t, got, "## Growth")
}

func TestCompositionShare_Bar(t *testing.T) {
	testCases := []struct {
		percent float64
		want    string
	}{
		{0, ""},
		{1, "█"},
		{12.5, "███"},
		{40, "████████"},
		{100, "████████████████████"},
	}
	for _, tc := range testCases {
		s := CompositionShare{Percent: assetflow.Pct(tc.percent)}
		assert.Equal(t, tc.want, s.Bar(), "Bar() for %v%%", tc.percent)
	}
}

func TestNewComparison(t *testing.T) {
	sim := simulateSample(t, "Balanced")
	c := NewComparison(sim, "KRW", "")

	assert.Equal(t, "Balanced", c.Model)
	assert.True(t, c.Total.Equal(assetflow.A(17500)))
	require.Len(t, c.Rows, 6)
	assert.Equal(t, "2503 buy", c.Rows[0].Action)
	assert.Contains(t, RenderComparison(c), "| Cash | 5.7 | 20.0 | -14.3 | 2503 buy |")
}
