// Package arli is a minimal client for the Arli AI chat completions
// API, which backs the Coach Max persona.
package arli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
)

const (
	DefaultBaseURL = "https://api.arliai.com/v1"
	DefaultModel   = "Mistral-Nemo-12B-Instruct-2407"
)

// systemPrompt pins the coach persona. It asks for plain text output,
// but replies come back markdown-flavored anyway; the richtext package
// deals with that.
const systemPrompt = `You are Coach Max, an AI Health Coach with a motivational yet supportive personality. You're knowledgeable, adaptable, and results-focused, helping users maximize their health potential.

Keep responses focused on health, nutrition, and fitness advice. Use a tone that's like an encouraging friend who happens to be a health expert. Avoid using markdown formatting. Use plain text formatting only.`

const analyzePrompt = `Analyze the following meal. Estimate calories, protein, carbohydrates and fat, point out what is working well, and suggest one concrete improvement. Meal: `

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

func New(key string) *Client {
	return &Client{
		APIKey:  key,
		Model:   DefaultModel,
		BaseURL: DefaultBaseURL,
		HTTP:    http.DefaultClient,
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	TopP        float64   `json:"top_p"`
	Stream      bool      `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Chat sends a conversation to the chat completions endpoint and
// returns the assistant reply. A system message is prepended when the
// caller did not supply one.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	hasSystem := false
	for _, m := range messages {
		if m.Role == "system" {
			hasSystem = true
			break
		}
	}
	if !hasSystem {
		messages = append([]Message{{Role: "system", Content: systemPrompt}}, messages...)
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.Model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        0.9,
	})
	if err != nil {
		return "", fmt.Errorf("could not encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not reach arli: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("arli returned %d: %s", res.StatusCode, snippet)
	}

	var parsed chatResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("could not parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("arli returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Ask is the single-turn convenience used by the /coach command.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	return c.Chat(ctx, []Message{{Role: "user", Content: question}})
}

// Analyze asks the coach for a structured breakdown of one meal.
func (c *Client) Analyze(ctx context.Context, meal string) (string, error) {
	return c.Chat(ctx, []Message{{Role: "user", Content: analyzePrompt + meal}})
}

// fallbacks mirror the canned replies the backend serves when the API
// is unreachable.
var fallbacks = []string{
	"Hey there! Let's maximize your potential today! Focus on consuming protein-rich foods like chicken, fish, eggs, and legumes. Aim for 1.6-2.2g of protein per kg of body weight daily - your muscles will thank you!",
	"Ready to take your gains to the next level? Ensure you're in a slight caloric surplus and prioritize compound exercises like squats, deadlifts, and bench press. I believe you've got this!",
	"Hydration is your secret weapon for peak performance! Drink at least 3-4 liters of water daily, especially around workout times. Let's keep that energy flowing!",
	"Here's a game-changer for you: don't neglect carbohydrates when building muscle. They're essential for energy during workouts and recovery afterward. Think of them as fuel for your fitness journey!",
}

// Fallback returns a canned coach reply for when Chat fails.
func Fallback() string {
	return fallbacks[rand.Intn(len(fallbacks))]
}
