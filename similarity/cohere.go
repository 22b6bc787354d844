package similarity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mobitrack/globals"
)

const cohereEmbedURL = "https://api.cohere.ai/v1/embed"

var embedClient = &http.Client{Timeout: 30 * time.Second}

type embedRequest struct {
	Texts     []string `json:"texts"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type"`
}

type embedResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}

func fetchEmbeddings(ctx context.Context, texts []string) ([][]float64, error) {
	payload, err := json.Marshal(embedRequest{
		Texts:     texts,
		Model:     "embed-english-v3.0",
		InputType: "clustering",
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cohereEmbedURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+globals.GetEnv("COHERE_API_KEY", ""))
	req.Header.Set("Content-Type", "application/json")

	resp, err := embedClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cohere embed: unexpected status %d", resp.StatusCode)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Embeddings) != len(texts) {
		return nil, fmt.Errorf("cohere embed: got %d embeddings for %d texts", len(out.Embeddings), len(texts))
	}
	return out.Embeddings, nil
}
