package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"finroute.backend/internal/domain/entities"
)

const systemPrompt = "You are a personal finance planner. Given a user's age, " +
	"currency, savings goals, and key financial metrics, write a clear, " +
	"encouraging narrative financial plan. Address each goal concretely with " +
	"monthly amounts in the user's currency."

// Request carries the structured prompt payload for one generation
type Request struct {
	Age            int
	CurrencySymbol string
	Goals          []entities.Goal
	Metrics        entities.KeyMetrics
}

// Client calls an OpenAI-compatible chat-completions endpoint
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a plan generator client
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GeneratePlan asks the provider for a narrative plan. An empty string
// return with nil error means the provider produced no usable text;
// the caller decides how to surface that.
func (c *Client) GeneratePlan(ctx context.Context, req *Request) (string, error) {
	body := chatRequest{
		Model:       c.model,
		Temperature: 0.7,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(req)},
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("ai provider returned %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("ai provider returned %d", resp.StatusCode)
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func buildUserPrompt(req *Request) string {
	var b strings.Builder
	if req.Age > 0 {
		fmt.Fprintf(&b, "Age: %d\n", req.Age)
	}
	fmt.Fprintf(&b, "Currency: %s\n", req.CurrencySymbol)
	fmt.Fprintf(&b, "Net worth: %s%.2f\n", req.CurrencySymbol, req.Metrics.NetWorth)
	fmt.Fprintf(&b, "Savings rate: %.1f%%\n", req.Metrics.SavingsRate)
	fmt.Fprintf(&b, "Total debt: %s%.2f\n", req.CurrencySymbol, req.Metrics.TotalDebt)
	fmt.Fprintf(&b, "Monthly net salary: %s%.2f\n", req.CurrencySymbol, req.Metrics.MonthlyNetSalary)
	fmt.Fprintf(&b, "Debt-to-income: %.0f%%\n", req.Metrics.DebtToIncome)
	b.WriteString("Goals:\n")
	for _, g := range req.Goals {
		fmt.Fprintf(&b, "- %s: target %s%.2f by %s, currently %s%.2f",
			g.Name, req.CurrencySymbol, g.TargetAmount, g.TargetDate, req.CurrencySymbol, g.CurrentAmount)
		if g.Description.Valid {
			fmt.Fprintf(&b, " (%s)", g.Description.String)
		}
		b.WriteString("\n")
	}
	return b.String()
}
