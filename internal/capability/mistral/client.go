package mistral

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medignis/docflow/internal/common"
	"github.com/medignis/docflow/internal/engine"
	"github.com/medignis/docflow/internal/entity"
)

const defaultBaseURL = "https://api.mistral.ai/v1"

// Client implements engine.StepCapability against the Mistral
// chat/completions API. Each step's prompt is sent with the job's accumulated
// fields as context; the model is asked for a JSON object which becomes the
// step output.
type Client struct {
	cfg        common.LLMConfig
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg common.LLMConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

func (c *Client) Invoke(ctx context.Context, step entity.PipelineStep, jobCtx engine.JobContext) (engine.StepOutput, error) {
	rid := uuid.New().String()
	start := time.Now()

	model := c.cfg.Model
	if step.ModelName != nil && *step.ModelName != "" {
		model = *step.ModelName
	}

	c.log.Info("mistral.invoke.start",
		"req_id", rid,
		"job_id", jobCtx.JobID,
		"step", step.Name,
		"model", model,
		"artifact_bytes", len(jobCtx.Artifact),
		"field_count", len(jobCtx.Fields),
	)

	body := map[string]any{
		"model":           model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": buildSystemPrompt(step)},
			{"role": "user", "content": buildUserPrompt(jobCtx)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		kind := "backend"
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			kind = "timeout"
		}
		c.log.Error("mistral.invoke.http_error",
			"req_id", rid, "step", step.Name, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return engine.StepOutput{}, &common.CapabilityError{Kind: kind, Message: err.Error(), Cause: err}
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("mistral.invoke.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
		)
		return engine.StepOutput{}, &common.CapabilityError{
			Kind: "backend", Message: "decode mistral response: " + err.Error(), Cause: err,
		}
	}
	if len(cc.Choices) == 0 {
		return engine.StepOutput{}, &common.CapabilityError{
			Kind: "backend", Message: "no choices in mistral response",
		}
	}

	content := stripFences(strings.TrimSpace(cc.Choices[0].Message.Content))
	fields := map[string]any{}
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		c.log.Error("mistral.invoke.bad_json",
			"req_id", rid, "step", step.Name, "error", err, "content_len", len(content),
		)
		return engine.StepOutput{}, &common.CapabilityError{
			Kind: "backend", Message: "model did not return a JSON object: " + err.Error(), Cause: err,
		}
	}

	out := engine.StepOutput{Fields: fields, TokensUsed: cc.Usage.TotalTokens}
	// aux_text is side material (cached reference text), not a result field
	if aux, ok := fields["aux_text"].(string); ok {
		out.AuxText = aux
		delete(fields, "aux_text")
	}

	c.log.Info("mistral.invoke.ok",
		"req_id", rid,
		"job_id", jobCtx.JobID,
		"step", step.Name,
		"fields", len(fields),
		"tokens", out.TokensUsed,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("mistral http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("mistral response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("mistral status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func buildSystemPrompt(step entity.PipelineStep) string {
	parts := []string{
		step.Prompt,
		"Return ONLY a single JSON object, with no surrounding prose or code fences.",
		"Never output null. If a value is not present, omit the key.",
	}
	if step.IsBranching && step.BranchingField != "" {
		parts = append(parts, "The object must include the key "+quote(step.BranchingField)+".")
		if len(step.BranchLabels) > 0 {
			parts = append(parts, "Its value must be one of: "+strings.Join(step.BranchLabels, ", ")+".")
		}
	}
	return strings.Join(parts, " ")
}

func buildUserPrompt(jobCtx engine.JobContext) string {
	var b strings.Builder
	b.WriteString("Filename: ")
	b.WriteString(jobCtx.Filename)
	b.WriteString("\nContent type: ")
	b.WriteString(jobCtx.ContentType)

	if len(jobCtx.Fields) > 0 {
		b.WriteString("\n\nAccumulated results from earlier steps:\n")
		if raw, err := json.MarshalIndent(jobCtx.Fields, "", "  "); err == nil {
			b.Write(raw)
		}
	}
	if jobCtx.AuxText != "" {
		b.WriteString("\n\nReference text:\n")
		b.WriteString(truncate(jobCtx.AuxText, 4000))
	}

	// The document itself goes along only while no earlier step has produced
	// text from it yet.
	if _, hasText := jobCtx.Fields["text"]; !hasText && len(jobCtx.Artifact) > 0 {
		b.WriteString("\n\nDocument (base64, ")
		b.WriteString(jobCtx.ContentType)
		b.WriteString("):\n")
		b.WriteString(truncate(base64.StdEncoding.EncodeToString(jobCtx.Artifact), 200000))
	}
	return b.String()
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
