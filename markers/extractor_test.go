package markers_test

import (
	"testing"

	"github.com/kpawlak/catcheck"
	"github.com/kpawlak/catcheck/markers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `<!DOCTYPE html>
<html>
<head><title>Mobility Aids</title></head>
<body>
<div class="category-header">
	Canes and Crutches
</div>
<div class="product-card">
	<div class="product-name">Single-Point Cane</div>
	<span class="hcpcs-code">E0100</span>
</div>
<div class="product-card">
	<div class="product-name">Grab Bar</div>
</div>
<div class="category-header">Walkers</div>
<div class="product-card">
	<div class="product-name">Folding Walker</div>
	<span class="hcpcs-code">E0135</span>
</div>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	snap, err := markers.NewExtractor().Extract(sampleCatalog)
	require.NoError(t, err)

	assert.Equal(t, []string{"Canes and Crutches", "Walkers"}, snap.Categories)
	assert.Equal(t, []catcheck.Product{
		{Name: "Single-Point Cane", Code: "E0100"},
		{Name: "Grab Bar"},
		{Name: "Folding Walker", Code: "E0135"},
	}, snap.Products)
	assert.Equal(t, 2, snap.Stats.Categories)
	assert.Equal(t, 3, snap.Stats.Products)
	assert.Equal(t, 2, snap.Stats.UniqueCodes)
}

func TestExtractor_SkipsNamelessBlocks(t *testing.T) {
	t.Parallel()

	html := `<div class="product-card">
	<span class="hcpcs-code">E0100</span>
</div>
<div class="product-card">
	<div class="product-name">Folding Walker</div>
</div>`

	snap, err := markers.NewExtractor().Extract(html)
	require.NoError(t, err)

	require.Len(t, snap.Products, 1)
	assert.Equal(t, "Folding Walker", snap.Products[0].Name)
}

func TestExtractor_AbsentCodeStaysAbsent(t *testing.T) {
	t.Parallel()

	t.Run("no code marker", func(t *testing.T) {
		t.Parallel()

		html := `<div class="product-card"><div class="product-name">Grab Bar</div></div>`

		snap, err := markers.NewExtractor().Extract(html)
		require.NoError(t, err)

		require.Len(t, snap.Products, 1)
		assert.Empty(t, snap.Products[0].Code)
		assert.Empty(t, snap.CodeSet())
	})

	t.Run("whitespace-only code marker", func(t *testing.T) {
		t.Parallel()

		html := `<div class="product-card"><div class="product-name">Grab Bar</div><span class="hcpcs-code">  </span></div>`

		snap, err := markers.NewExtractor().Extract(html)
		require.NoError(t, err)

		require.Len(t, snap.Products, 1)
		assert.Empty(t, snap.Products[0].Code)
	})
}

func TestExtractor_DiscardsWhitespaceCategories(t *testing.T) {
	t.Parallel()

	html := `<div class="category-header">
</div>
<div class="category-header">Walkers</div>`

	snap, err := markers.NewExtractor().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, []string{"Walkers"}, snap.Categories)
}

func TestExtractor_ToleratesNestedMarkup(t *testing.T) {
	t.Parallel()

	// Extra attributes or tags after the literal marker text do not
	// disturb flat scanning as long as the marker matches first.
	html := `<div class="product-card">
	<div class="product-header"><div class="product-name">Bath Bench</div></div>
	<div class="codes"><span class="hcpcs-code">E0245</span></div>
</div>`

	snap, err := markers.NewExtractor().Extract(html)
	require.NoError(t, err)

	require.Len(t, snap.Products, 1)
	assert.Equal(t, catcheck.Product{Name: "Bath Bench", Code: "E0245"}, snap.Products[0])
}

func TestExtractor_EmptyDocument(t *testing.T) {
	t.Parallel()

	snap, err := markers.NewExtractor().Extract("")
	require.NoError(t, err)

	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Products)
	assert.Equal(t, catcheck.Stats{}, snap.Stats)
}

func TestExtractor_CustomMarkers(t *testing.T) {
	t.Parallel()

	m := markers.Markers{
		CategoryOpen:  "[cat]",
		CategoryClose: "[/cat]",
		Card:          "[card]",
		NameOpen:      "[name]",
		NameClose:     "[/name]",
		CodeOpen:      "[code]",
		CodeClose:     "[/code]",
	}

	snap, err := markers.NewExtractorWithMarkers(m).Extract("[cat]Misc[/cat][card][name]Cane[/name][code]E0100[/code]")
	require.NoError(t, err)

	assert.Equal(t, []string{"Misc"}, snap.Categories)
	assert.Equal(t, []catcheck.Product{{Name: "Cane", Code: "E0100"}}, snap.Products)
}
