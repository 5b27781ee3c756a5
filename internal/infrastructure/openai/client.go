// Package openai implements the vision-language model client that turns a
// shoe photo into a structured description.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/domain"
	"golang.org/x/time/rate"
)

const maxAttempts = 3

// Client handles communication with the OpenAI chat completions API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new OpenAI API client. requestsPerMinute bounds the
// upstream call rate across all in-flight analyses.
func NewClient(apiKey, baseURL, model string, requestsPerMinute int) *Client {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Wire types for the chat completions endpoint.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// AnalyzeShoe sends the photo and the language-specific instruction prompt to
// the model and parses its JSON reply into a structured analysis.
func (c *Client) AnalyzeShoe(ctx context.Context, request *domain.AnalysisRequest) (*domain.ShoeAnalysis, error) {
	if request == nil || request.Image == "" {
		return nil, domain.ErrInvalidRequest
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: PromptFor(request.Language, request.Question)},
					{Type: "image_url", ImageURL: &imageURL{URL: dataURL(request.Image)}},
				},
			},
		},
		MaxTokens:      1500,
		Temperature:    0.2,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/chat/completions", c.baseURL)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL, body)
		if err != nil {
			if c.debug {
				log.Printf("[OPENAI] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[OPENAI] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(respBody))
			}
			// Bad requests and auth failures will not heal on retry.
			if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
				return nil, fmt.Errorf("%w: status %d", domain.ErrOpenAIAPIFailure, resp.StatusCode)
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrOpenAIAPIFailure, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var chatResp chatResponse
		if err := json.Unmarshal(respBody, &chatResp); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		if chatResp.Error != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrOpenAIAPIFailure, chatResp.Error.Message)
		}
		if len(chatResp.Choices) == 0 {
			return nil, fmt.Errorf("%w: no choices in response", domain.ErrOpenAIAPIFailure)
		}

		return parseAnalysis(chatResp.Choices[0].Message.Content)
	}

	return nil, lastErr
}

// doRequest executes a POST with the auth header set
func (c *Client) doRequest(ctx context.Context, reqURL string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", "Mousify/2.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOpenAIAPIFailure, err)
	}
	return resp, nil
}

// parseAnalysis unmarshals the model reply, tolerating markdown code fences
// some models still wrap JSON in despite json_object mode.
func parseAnalysis(content string) (*domain.ShoeAnalysis, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var analysis domain.ShoeAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAnalysisParseFailure, err)
	}
	return &analysis, nil
}

// dataURL wraps the base64 payload as a data URL unless the client already
// sent one.
func dataURL(image string) string {
	if strings.HasPrefix(image, "data:") {
		return image
	}
	return "data:image/jpeg;base64," + image
}

// exponentialBackoff returns the wait before the next retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500<<(attempt-1)) * time.Millisecond
}
