package template

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kingvictorvector/portfolio-note-generator/internal/models"
)

func testRecord() models.StructuredRecord {
	return models.StructuredRecord{
		ClientName: "ALICE EXAMPLE",
		TimePeriod: "1/1/2024 to 12/31/2024",
		TrailingYear: models.PerformanceBlock{
			TimePeriod:         "1/1/2024 to 12/31/2024",
			TimeWeightedReturn: "12.34",
			BenchmarkReturn:    "5.67",
		},
		YTD: models.PerformanceBlock{
			TimeWeightedReturn: "3.21",
			BenchmarkReturn:    "2.10",
		},
		AssetAllocation: map[string]string{
			models.AssetUSStock:    "50",
			models.AssetNonUSStock: "20",
			models.AssetCash:       "10",
			models.AssetBond:       "15",
			models.AssetOther:      "5",
		},
		TotalPortfolioValue: 1000000,
	}
}

func TestComputeDerived(t *testing.T) {
	derived := ComputeDerived(testRecord())

	assert.Equal(t, "70.0", derived.TotalEquityPct)
	assert.Equal(t, "25.0", derived.TotalFixedIncomePct)
	assert.Equal(t, "250,000", derived.TotalBondCashDollars)
}

func TestComputeDerived_RoundsDollarsToNearestThousand(t *testing.T) {
	record := testRecord()
	record.TotalPortfolioValue = 1234567

	derived := ComputeDerived(record)

	// 25% of 1,234,567 = 308,641.75, rounded to the nearest 1000.
	assert.Equal(t, "309,000", derived.TotalBondCashDollars)
}

func TestComputeDerived_MalformedPercentagesCountAsZero(t *testing.T) {
	record := testRecord()
	record.AssetAllocation[models.AssetUSStock] = "not a number"

	derived := ComputeDerived(record)

	assert.Equal(t, "20.0", derived.TotalEquityPct)
}

func TestRender_SubstitutesCatalogPlaceholders(t *testing.T) {
	tpl := "Client: {{clientName}}, equity {{totalEquityPercentage}}%, bond+cash ${{totalBondCashDollars}}"
	got := Render(testRecord(), tpl)

	assert.Equal(t, "Client: ALICE EXAMPLE, equity 70.0%, bond+cash $250,000", got)
}

func TestRender_UnknownPlaceholdersPassThrough(t *testing.T) {
	tpl := "Hello {{nobody}} and {{ spaced }} and {{clientName}}"
	got := Render(testRecord(), tpl)

	assert.Equal(t, "Hello {{nobody}} and {{ spaced }} and ALICE EXAMPLE", got)
}

func TestRender_IdempotentWithoutRecognizedPlaceholders(t *testing.T) {
	tpl := "Plain note text with {{unrecognized}} token."
	assert.Equal(t, tpl, Render(testRecord(), tpl))
}

func TestRender_MissingFieldsSubstituteEmpty(t *testing.T) {
	record := models.StructuredRecord{TotalPortfolioValue: 1000000}
	got := Render(record, "[{{clientName}}][{{ytdReturn}}][{{cashPercentage}}]")

	assert.Equal(t, "[][][]", got)
}

func TestRender_SubstitutedValuesNotRescanned(t *testing.T) {
	record := testRecord()
	record.ClientName = "{{ytdReturn}}"

	got := Render(record, "{{clientName}}")

	assert.Equal(t, "{{ytdReturn}}", got)
}

func TestRender_EmptyTemplateFallsBackToDefault(t *testing.T) {
	record := testRecord()

	assert.Equal(t, RenderDefault(record), Render(record, ""))
	assert.Equal(t, RenderDefault(record), Render(record, "  \n\t "))
}

func TestRenderDefault(t *testing.T) {
	got := RenderDefault(testRecord())

	assert.Contains(t, got, "Portfolio review for **ALICE EXAMPLE** covering the period **1/1/2024 to 12/31/2024**.")
	assert.Contains(t, got, "- US Stock: 50%")
	assert.Contains(t, got, "- Time Weighted Return: 12.34%")
	assert.Contains(t, got, "- Benchmark Return: 2.10%")
}

func TestRenderDefault_OmitsAbsentAssetBullets(t *testing.T) {
	record := testRecord()
	delete(record.AssetAllocation, models.AssetOther)

	got := RenderDefault(record)

	assert.NotContains(t, got, "- Other:")
	assert.Contains(t, got, "- Bond: 15%")
}

func TestRenderDefault_AbsentPerformanceRendersEmpty(t *testing.T) {
	record := testRecord()
	record.YTD = models.PerformanceBlock{}

	got := RenderDefault(record)

	// The bullet line is still present, with an empty value.
	assert.Contains(t, got, "**Performance Summary (YTD):**\n- Time Weighted Return: %\n- Benchmark Return: %\n")
}

// stubStore is an in-memory TemplateStore for render tests.
type stubStore struct {
	active string
	quick  map[string]models.QuickTemplate
}

func (s *stubStore) LoadActiveTemplate(ctx context.Context) string { return s.active }
func (s *stubStore) SaveActiveTemplate(ctx context.Context, content string) error {
	s.active = content
	return nil
}
func (s *stubStore) LoadQuickTemplates(ctx context.Context) map[string]models.QuickTemplate {
	return s.quick
}
func (s *stubStore) SaveQuickTemplates(ctx context.Context, templates map[string]models.QuickTemplate) error {
	s.quick = templates
	return nil
}
func (s *stubStore) SaveQuickTemplate(ctx context.Context, key, name, content string) (string, error) {
	s.quick[key] = models.QuickTemplate{Name: name, Content: content}
	return key, nil
}
func (s *stubStore) DeleteQuickTemplate(ctx context.Context, key string) error {
	delete(s.quick, key)
	return nil
}

func TestRenderByID_QuickTemplate(t *testing.T) {
	store := &stubStore{
		active: "active {{clientName}}",
		quick: map[string]models.QuickTemplate{
			"brief": {Name: "Brief", Content: "brief {{clientName}}"},
		},
	}

	got := RenderByID(context.Background(), testRecord(), "brief", store)
	assert.Equal(t, "brief ALICE EXAMPLE", got)
}

func TestRenderByID_UnknownIDFallsBackToActive(t *testing.T) {
	store := &stubStore{
		active: "active {{clientName}}",
		quick:  map[string]models.QuickTemplate{},
	}

	got := RenderByID(context.Background(), testRecord(), "missing", store)
	assert.Equal(t, "active ALICE EXAMPLE", got)
}

func TestRenderByID_EmptyIDUsesActive(t *testing.T) {
	store := &stubStore{active: "active {{ytdBenchmark}}"}

	got := RenderByID(context.Background(), testRecord(), "", store)
	assert.Equal(t, "active 2.10", got)
}

func TestVariables_CoversCatalog(t *testing.T) {
	var names []string
	for _, group := range Variables() {
		for _, v := range group.Variables {
			names = append(names, v.Name)
		}
	}

	values := placeholderValues(testRecord())
	assert.Len(t, names, len(values))
	for _, name := range names {
		_, ok := values[name]
		assert.True(t, ok, "variable %q missing from catalog values", name)
	}
}
