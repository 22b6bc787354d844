// Package similarity clusters free-text items by embedding cosine
// similarity. Embeddings come from the Cohere embed API; grouping is a
// single greedy pass against a fixed threshold.
package similarity

import (
	"encoding/json"
	"log"
	"math"
	"net/http"

	"mobitrack/utils"

	"github.com/julienschmidt/httprouter"
)

const similarityThreshold = 0.85

type Item struct {
	Text  string  `json:"text"`
	Price float64 `json:"price"`
}

type Group struct {
	Name           string  `json:"name"`
	NumberOfPieces int     `json:"numberOfPieces"`
	TotalPrice     float64 `json:"totalPrice"`
	AveragePrice   float64 `json:"averagePrice"`
	Items          []Item  `json:"items"`
}

// CosineSimilarity of two equal-length vectors.
func CosineSimilarity(a, b []float64) float64 {
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// GroupItems greedily clusters items whose embeddings reach the threshold
// against the group's seed item.
func GroupItems(items []Item, embeddings [][]float64, threshold float64) []Group {
	groups := []Group{}
	used := make([]bool, len(items))

	for i := range items {
		if used[i] {
			continue
		}
		current := []Item{items[i]}
		used[i] = true

		for j := i + 1; j < len(items); j++ {
			if used[j] {
				continue
			}
			if CosineSimilarity(embeddings[i], embeddings[j]) >= threshold {
				current = append(current, items[j])
				used[j] = true
			}
		}

		total := 0.0
		for _, item := range current {
			total += item.Price
		}
		avg := total / float64(len(current))

		groups = append(groups, Group{
			Name:           current[0].Text,
			NumberOfPieces: len(current),
			TotalPrice:     total,
			AveragePrice:   math.Round(avg*100) / 100,
			Items:          current,
		})
	}

	return groups
}

// GroupItemsHandler embeds the item texts and returns threshold groups.
func GroupItemsHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		Items []Item `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Items) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Provide a non-empty array of items with text and price")
		return
	}

	texts := make([]string, len(body.Items))
	for i, item := range body.Items {
		texts[i] = item.Text
	}

	embeddings, err := fetchEmbeddings(r.Context(), texts)
	if err != nil {
		log.Printf("GroupItemsHandler: embeddings: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to group items")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"groups": GroupItems(body.Items, embeddings, similarityThreshold),
	})
}
