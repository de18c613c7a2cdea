// Package assistant предоставляет клиент для внешнего сервиса текстовой генерации.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Параметры запроса к чат-API провайдера.
const (
	modelID     = "moonshotai/kimi-k2-instruct-0905"
	temperature = 0.6
	maxTokens   = 1200
)

// Системные промпты двух режимов ассистента.
const (
	mechanicSystemPrompt = "You are an expert motorcycle mechanic. Answer clearly using simple language. Provide checks, causes, fixes, and safety notes."
	writerSystemPrompt   = "You are a professional motorcycle technician & writer. Write clean Markdown articles."
)

// Client инкапсулирует HTTP-взаимодействие с чат-API провайдера текстовой генерации.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient создаёт HTTP-клиент для обращения к чат-API по указанному адресу.
func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
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
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Chat отправляет пару системного и пользовательского сообщений и возвращает
// текст первого варианта ответа. Любой сбой возвращается ошибкой.
func (c *Client) Chat(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if c == nil || c.apiKey == "" {
		return "", fmt.Errorf("assistant client not configured: missing API key")
	}

	body, err := json.Marshal(chatRequest{
		Model: modelID,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("provider error: %s", result.Error.Message)
		}
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("empty response: no choices")
	}

	text := strings.TrimSpace(result.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty response: blank message")
	}

	return text, nil
}

// AskMechanic отвечает на вопрос клиента от лица опытного мотомеханика.
func (c *Client) AskMechanic(ctx context.Context, question string) (string, error) {
	return c.Chat(ctx, mechanicSystemPrompt, question)
}

// GenerateArticle пишет статью об обслуживании мотоцикла на заданную тему.
func (c *Client) GenerateArticle(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf("Write a detailed Markdown article about: %s. Include intro, symptoms, maintenance steps, safety notes, and a summary.", topic)
	return c.Chat(ctx, writerSystemPrompt, prompt)
}
