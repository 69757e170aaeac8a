package services

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meal.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o644))
	return path
}

func TestClassifyImageParsesResponse(t *testing.T) {
	svc := NewHuggingFaceService("test-key", "openai/clip-vit-base-patch32")
	httpmock.ActivateNonDefault(svc.client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost,
		"https://api-inference.huggingface.co/models/openai/clip-vit-base-patch32",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))
			return httpmock.NewJsonResponse(200, []map[string]interface{}{
				{"label": "pizza", "score": 0.82},
				{"label": "salad", "score": 0.11},
			})
		})

	results, err := svc.ClassifyImage(context.Background(), writeTestImage(t), imageLabels)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "pizza", results[0].Label)
	assert.InDelta(t, 0.82, results[0].Score, 0.001)
}

func TestClassifyImageAPIError(t *testing.T) {
	svc := NewHuggingFaceService("test-key", "openai/clip-vit-base-patch32")
	httpmock.ActivateNonDefault(svc.client)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost,
		"https://api-inference.huggingface.co/models/openai/clip-vit-base-patch32",
		httpmock.NewStringResponder(503, `{"error":"model loading"}`))

	_, err := svc.ClassifyImage(context.Background(), writeTestImage(t), imageLabels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestClassifyImageMissingFile(t *testing.T) {
	svc := NewHuggingFaceService("test-key", "openai/clip-vit-base-patch32")

	_, err := svc.ClassifyImage(context.Background(), "/nonexistent/meal.jpg", imageLabels)
	assert.Error(t, err)
}

func TestReadImageLocalFile(t *testing.T) {
	path := writeTestImage(t)
	data, err := readImage(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}
