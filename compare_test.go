package catcheck_test

import (
	"testing"

	"github.com/kpawlak/catcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_Identical(t *testing.T) {
	t.Parallel()

	snap := catcheck.NewSnapshot(
		[]string{"Mobility", "Diabetic"},
		[]catcheck.Product{
			{Name: "Cane", Code: "E0100"},
			{Name: "Walker", Code: "E0130"},
		},
	)

	cmp := catcheck.Compare(snap, snap)

	assert.True(t, cmp.AllMatch)
	assert.True(t, cmp.CategoriesMatch)
	assert.True(t, cmp.ProductsMatch)
	assert.Empty(t, cmp.MissingCodes)
	assert.Empty(t, cmp.ExtraCodes)
	assert.Empty(t, cmp.MissingProducts)
	assert.Empty(t, cmp.ExtraProducts)
}

func TestCompare_StrippedProduct(t *testing.T) {
	t.Parallel()

	before := catcheck.NewSnapshot(
		[]string{"Mobility", "Diabetic"},
		[]catcheck.Product{
			{Name: "Cane", Code: "E0100"},
			{Name: "Walker", Code: "E0130"},
		},
	)
	after := catcheck.NewSnapshot(
		[]string{"Mobility", "Diabetic"},
		[]catcheck.Product{
			{Name: "Cane", Code: "E0100"},
		},
	)

	cmp := catcheck.Compare(before, after)

	assert.False(t, cmp.AllMatch)
	assert.True(t, cmp.CategoriesMatch)
	assert.False(t, cmp.ProductsMatch)
	assert.Equal(t, []string{"E0130"}, cmp.MissingCodes)
	assert.Empty(t, cmp.ExtraCodes)
	assert.Equal(t, []string{"Walker"}, cmp.MissingProducts)
	assert.Empty(t, cmp.ExtraProducts)
}

func TestCompare_CaseInsensitiveNames(t *testing.T) {
	t.Parallel()

	t.Run("name casing alone does not mismatch", func(t *testing.T) {
		t.Parallel()

		before := catcheck.NewSnapshot(
			[]string{"Support Surfaces"},
			[]catcheck.Product{{Name: "Wheelchair Cushion", Code: "E2601"}},
		)
		after := catcheck.NewSnapshot(
			[]string{"Support Surfaces"},
			[]catcheck.Product{{Name: "WHEELCHAIR CUSHION", Code: "E2601"}},
		)

		cmp := catcheck.Compare(before, after)

		assert.True(t, cmp.AllMatch)
		assert.Empty(t, cmp.MissingProducts)
		assert.Empty(t, cmp.ExtraProducts)
	})

	t.Run("matching name with differing code still surfaces code mismatch", func(t *testing.T) {
		t.Parallel()

		before := catcheck.NewSnapshot(
			[]string{"Support Surfaces"},
			[]catcheck.Product{{Name: "Wheelchair Cushion", Code: "E2601"}},
		)
		after := catcheck.NewSnapshot(
			[]string{"Support Surfaces"},
			[]catcheck.Product{{Name: "WHEELCHAIR CUSHION", Code: "E2602"}},
		)

		cmp := catcheck.Compare(before, after)

		assert.False(t, cmp.AllMatch)
		assert.Equal(t, []string{"E2601"}, cmp.MissingCodes)
		assert.Equal(t, []string{"E2602"}, cmp.ExtraCodes)
		assert.Empty(t, cmp.MissingProducts)
		assert.Empty(t, cmp.ExtraProducts)
	})
}

func TestCompare_CategoryCountOnly(t *testing.T) {
	t.Parallel()

	// Category names are not diffed; equal counts match even when the
	// headings differ.
	before := catcheck.NewSnapshot([]string{"Mobility"}, nil)
	after := catcheck.NewSnapshot([]string{"Diabetic"}, nil)

	cmp := catcheck.Compare(before, after)

	assert.True(t, cmp.CategoriesMatch)
	assert.True(t, cmp.AllMatch)
}

func TestCompare_DuplicateNamesCollapse(t *testing.T) {
	t.Parallel()

	before := catcheck.NewSnapshot(
		[]string{"Dressings"},
		[]catcheck.Product{
			{Name: "Foam Dressing", Code: "A6209"},
			{Name: "Foam Dressing", Code: "A6210"},
		},
	)
	after := catcheck.NewSnapshot(
		[]string{"Dressings"},
		[]catcheck.Product{
			{Name: "Foam Dressing", Code: "A6209"},
			{Name: "Foam Dressing", Code: "A6210"},
		},
	)

	cmp := catcheck.Compare(before, after)

	assert.True(t, cmp.AllMatch)
	assert.Empty(t, cmp.MissingProducts)
}

func TestCompare_SortedDiffs(t *testing.T) {
	t.Parallel()

	before := catcheck.NewSnapshot(
		[]string{"Misc"},
		[]catcheck.Product{
			{Name: "Zimmer Frame", Code: "E0140"},
			{Name: "Bath Bench", Code: "E0245"},
			{Name: "Arm Sling", Code: "A4565"},
		},
	)
	after := catcheck.NewSnapshot([]string{"Misc"}, nil)

	cmp := catcheck.Compare(before, after)

	require.Equal(t, []string{"A4565", "E0140", "E0245"}, cmp.MissingCodes)
	require.Equal(t, []string{"Arm Sling", "Bath Bench", "Zimmer Frame"}, cmp.MissingProducts)
}

func TestCompare_DeclaredStatsDriveCountMatch(t *testing.T) {
	t.Parallel()

	// The before snapshot carries declared counts that disagree with its
	// parsed product list; the declared counts win.
	before := catcheck.NewSnapshot(
		[]string{"Misc"},
		[]catcheck.Product{{Name: "Cane", Code: "E0100"}},
	)
	before.Stats.Products = 2

	after := catcheck.NewSnapshot(
		[]string{"Misc"},
		[]catcheck.Product{{Name: "Cane", Code: "E0100"}},
	)

	cmp := catcheck.Compare(before, after)

	assert.False(t, cmp.ProductsMatch)
	assert.False(t, cmp.AllMatch)
	assert.Empty(t, cmp.MissingProducts)
}
