package mistral

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/engine"
	"github.com/medignis/docflow/internal/entity"
)

func chatResponse(content string, tokens int) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
		"usage": map[string]any{"total_tokens": tokens},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func testStep(name string) entity.PipelineStep {
	return entity.PipelineStep{
		ID:      uuid.New(),
		Name:    name,
		Prompt:  "Classify the document.",
		Enabled: true,
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(common.LLMConfig{
		Model:   "mistral-small-latest",
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, nil)
}

func TestInvoke_ParsesJSONObject(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(chatResponse(`{"doc_class": "LAB", "confidence": 0.9}`, 42)))
	})

	out, err := client.Invoke(context.Background(), testStep("classify"), engine.JobContext{
		JobID:       uuid.New(),
		Filename:    "scan.pdf",
		ContentType: "application/pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "mistral-small-latest", gotBody["model"])
	assert.Equal(t, "LAB", out.Fields["doc_class"])
	assert.Equal(t, 42, out.TokensUsed)
}

func TestInvoke_StepModelOverridesDefault(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(chatResponse(`{}`, 1)))
	})

	step := testStep("extract")
	model := "mistral-large-latest"
	step.ModelName = &model

	_, err := client.Invoke(context.Background(), step, engine.JobContext{})
	require.NoError(t, err)
	assert.Equal(t, "mistral-large-latest", gotBody["model"])
}

func TestInvoke_StripsCodeFences(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse("```json\n{\"category\": \"LAB\"}\n```", 5)))
	})

	out, err := client.Invoke(context.Background(), testStep("classify"), engine.JobContext{})
	require.NoError(t, err)
	assert.Equal(t, "LAB", out.Fields["category"])
}

func TestInvoke_LiftsAuxText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"ok": true, "aux_text": "guideline excerpt"}`, 5)))
	})

	out, err := client.Invoke(context.Background(), testStep("guidelines"), engine.JobContext{})
	require.NoError(t, err)
	assert.Equal(t, "guideline excerpt", out.AuxText)
	assert.NotContains(t, out.Fields, "aux_text")
}

func TestInvoke_BackendErrorKind(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := client.Invoke(context.Background(), testStep("classify"), engine.JobContext{})
	require.Error(t, err)
	var cerr *common.CapabilityError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "backend", cerr.Kind)
}

func TestInvoke_NonJSONContentIsBackendError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse("I cannot do that.", 5)))
	})

	_, err := client.Invoke(context.Background(), testStep("classify"), engine.JobContext{})
	require.Error(t, err)
	var cerr *common.CapabilityError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "backend", cerr.Kind)
}

func TestInvoke_TimeoutKind(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(chatResponse(`{}`, 1)))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Invoke(ctx, testStep("classify"), engine.JobContext{})
	require.Error(t, err)
	var cerr *common.CapabilityError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "timeout", cerr.Kind)
}
