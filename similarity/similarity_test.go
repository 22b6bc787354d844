package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, CosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, CosineSimilarity([]float64{1, 0}, []float64{-1, 0}), 1e-9)
	assert.InDelta(t, 0.9, CosineSimilarity([]float64{1, 0}, []float64{0.9, 0.4358898943540673}), 1e-9)
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity([]float64{0, 0}, []float64{1, 2}))
}

func TestGroupItemsThreshold(t *testing.T) {
	items := []Item{
		{Text: "iPhone 15 Pro 256GB", Price: 900},
		{Text: "Apple iPhone 15 Pro (256 GB)", Price: 950},
		{Text: "Samsung washing machine", Price: 400},
	}
	// first two at cosine 0.9, third roughly orthogonal to both
	embeddings := [][]float64{
		{1, 0},
		{0.9, 0.4358898943540673},
		{0.05, -0.998},
	}

	groups := GroupItems(items, embeddings, 0.85)
	require.Len(t, groups, 2)

	assert.Equal(t, "iPhone 15 Pro 256GB", groups[0].Name)
	assert.Equal(t, 2, groups[0].NumberOfPieces)
	assert.Equal(t, 1850.0, groups[0].TotalPrice)
	assert.Equal(t, 925.0, groups[0].AveragePrice)

	assert.Equal(t, "Samsung washing machine", groups[1].Name)
	assert.Equal(t, 1, groups[1].NumberOfPieces)
	assert.Equal(t, 400.0, groups[1].TotalPrice)
}

func TestGroupItemsAveragePriceRounding(t *testing.T) {
	items := []Item{
		{Text: "a", Price: 10},
		{Text: "a again", Price: 10.01},
		{Text: "a once more", Price: 10.01},
	}
	embeddings := [][]float64{{1, 0}, {1, 0}, {1, 0}}

	groups := GroupItems(items, embeddings, 0.85)
	require.Len(t, groups, 1)
	assert.Equal(t, 10.01, groups[0].AveragePrice)
}

func TestGroupItemsEverythingDissimilar(t *testing.T) {
	items := []Item{{Text: "x", Price: 1}, {Text: "y", Price: 2}}
	embeddings := [][]float64{{1, 0}, {0, 1}}

	groups := GroupItems(items, embeddings, 0.85)
	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].NumberOfPieces)
	assert.Equal(t, 1, groups[1].NumberOfPieces)
}
