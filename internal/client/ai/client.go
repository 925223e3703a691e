package ai

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eventure/chat-service/internal/config"
	"github.com/eventure/chat-service/internal/model"
)

const systemPromptTemplate = "You are an assistant answering attendee questions about the event %q. " +
	"Keep answers short and factual. If the answer is not in the event details, say the organizers will follow up."

// EventSource provides the local event read model used to build prompts.
type EventSource interface {
	GetEvent(ctx context.Context, eventID string) (*model.Event, error)
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	events     EventSource
	httpClient *http.Client
}

func New(cfg *config.Config, events EventSource) *Client {
	return &Client{
		baseURL: cfg.AI.BaseURL,
		apiKey:  cfg.AI.APIKey,
		model:   cfg.AI.Model,
		events:  events,
		httpClient: &http.Client{
			Timeout: cfg.AI.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateAnswer produces an assistant reply to an attendee question,
// grounding the model on the locally stored event details.
func (c *Client) GenerateAnswer(ctx context.Context, question, eventID string) (string, error) {
	event, err := c.events.GetEvent(ctx, eventID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to load event: %v", err)
	}

	payload := completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: buildSystemPrompt(event)},
			{Role: "user", Content: question},
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("completion error: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}

func buildSystemPrompt(event *model.Event) string {
	if event == nil {
		return fmt.Sprintf(systemPromptTemplate, "this event")
	}

	var b strings.Builder
	fmt.Fprintf(&b, systemPromptTemplate, event.Title)
	fmt.Fprintf(&b, "\n\nEvent details:\nTitle: %s\nOrganizer: %s", event.Title, event.OrganizerName)

	if event.Description != "" {
		fmt.Fprintf(&b, "\nDescription: %s", event.Description)
	}
	if event.Venue != "" {
		fmt.Fprintf(&b, "\nVenue: %s", event.Venue)
	}
	if event.StartsAt != nil {
		fmt.Fprintf(&b, "\nStarts: %s", event.StartsAt.Format(time.RFC1123))
	}
	if event.EndsAt != nil {
		fmt.Fprintf(&b, "\nEnds: %s", event.EndsAt.Format(time.RFC1123))
	}

	return b.String()
}
