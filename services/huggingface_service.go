package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// HuggingFaceService runs zero-shot image classification through the HF
// Inference API. The model scores the image against our fixed candidate
// label vocabulary; no training or local inference is involved.
type HuggingFaceService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewHuggingFaceService(apiKey, model string) *HuggingFaceService {
	return &HuggingFaceService{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://api-inference.huggingface.co",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type hfClassification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassifyImage scores imageRef against candidateLabels and returns raw
// label/score pairs; filtering and candidate shaping happen in the caller.
func (s *HuggingFaceService) ClassifyImage(ctx context.Context, imageRef string, candidateLabels []string) ([]hfClassification, error) {
	data, err := readImage(imageRef)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"inputs": base64.StdEncoding.EncodeToString(data),
		"parameters": map[string]interface{}{
			"candidate_labels": candidateLabels,
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classification payload: %w", err)
	}

	u := fmt.Sprintf("%s/models/%s", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create classification request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call HuggingFace API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classification response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("huggingface API error %d: %s", resp.StatusCode, string(body))
	}

	var results []hfClassification
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse classification JSON: %w", err)
	}
	return results, nil
}

// readImage loads image bytes from a local path or an http(s) URL; both
// forms appear as image references (temp files from uploads, S3 URLs).
func readImage(imageRef string) ([]byte, error) {
	if strings.HasPrefix(imageRef, "http://") || strings.HasPrefix(imageRef, "https://") {
		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Get(imageRef)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("image fetch returned %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	data, err := os.ReadFile(imageRef)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return data, nil
}
