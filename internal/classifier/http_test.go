package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentimentscope/internal/models"
)

func TestHTTPClassifierBatch(t *testing.T) {
	var gotReq batchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		// Heterogeneous shapes on purpose: the client passes them through raw.
		w.Write([]byte(`[{"label":"POSITIVE","score":0.9},[{"label":"NEGATIVE","score":0.8}],"weird"]`))
	}))
	defer srv.Close()

	clf := NewHTTPClassifier(HTTPOptions{Endpoint: srv.URL, Truncate: true})

	raws, err := clf.Classify(context.Background(), []string{"great", "awful", "???"})
	require.NoError(t, err)
	require.Len(t, raws, 3)

	assert.True(t, gotReq.Truncation)
	assert.Equal(t, []string{"great", "awful", "???"}, gotReq.Inputs)

	assert.Equal(t, models.Prediction{Label: "POSITIVE", Score: 0.9}, Normalize(raws[0]))
	assert.Equal(t, models.Prediction{Label: "NEGATIVE", Score: 0.8}, Normalize(raws[1]))
	assert.Equal(t, models.Prediction{Label: "weird", Score: 0.0}, Normalize(raws[2]))
}

func TestHTTPClassifierClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad batch", http.StatusBadRequest)
	}))
	defer srv.Close()

	clf := NewHTTPClassifier(HTTPOptions{Endpoint: srv.URL})

	_, err := clf.Classify(context.Background(), []string{"hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestHTTPClassifierMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	clf := NewHTTPClassifier(HTTPOptions{Endpoint: srv.URL})

	_, err := clf.Classify(context.Background(), []string{"hello"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal response")
}
