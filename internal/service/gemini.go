package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"truck-assist/internal/logger"
)

// Generator produces a reply for one user message. Satisfied by
// GeminiService; handlers depend on this interface so tests can substitute
// a stub.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, message, language, userID string) (string, error)
}

// GeminiService calls the Gemini generateContent API in streaming mode and
// folds the token stream into a single reply string. The shared http.Client
// keeps no per-call state, so one service instance serves concurrent
// requests.
type GeminiService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewGeminiService(baseURL, apiKey, model string) *GeminiService {
	return &GeminiService{baseURL: baseURL, apiKey: apiKey, model: model, client: &http.Client{}}
}

// Generate performs exactly one round trip to the provider: no retry, and
// no deadline beyond whatever ctx carries. An empty accumulated reply is
// valid output, not an error; every failure mode surfaces as a *ModelError.
func (s *GeminiService) Generate(ctx context.Context, systemPrompt, message, language, userID string) (string, error) {
	start := time.Now()
	text, err := s.stream(ctx, systemPrompt, message)
	if err != nil {
		recordModelRequest(language, "error", time.Since(start).Seconds())
		return "", &ModelError{Err: err}
	}
	recordModelRequest(language, "success", time.Since(start).Seconds())
	recordModelResponseSize(language, len(text))
	logger.Info("generated response", "user_id", userID, "language", language, "chars", len(text))
	return text, nil
}

func (s *GeminiService) stream(ctx context.Context, systemPrompt, message string) (string, error) {
	body := map[string]interface{}{
		"system_instruction": map[string]interface{}{
			"parts": []map[string]string{{"text": systemPrompt}},
		},
		"contents": []map[string]interface{}{
			{"role": "user", "parts": []map[string]string{{"text": message}}},
		},
		"generationConfig": map[string]string{"responseMimeType": "text/plain"},
	}
	payload, _ := json.Marshal(body)

	url := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("model status %d: %s", resp.StatusCode, data)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var full strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var chunk struct {
			Candidates []struct {
				Content struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"content"`
			} `json:"candidates"`
		}
		if json.Unmarshal([]byte(line[6:]), &chunk) != nil {
			continue
		}
		for _, cand := range chunk.Candidates {
			for _, part := range cand.Content.Parts {
				full.WriteString(part.Text)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}
	return strings.TrimSpace(full.String()), nil
}
