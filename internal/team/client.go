package team

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/souhail4real/freelanci-catalog/internal/logger"
)

// Member — участник рекомендованной команды.
type Member struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Skills string `json:"skills"`
}

// RequestError — неуспешный ответ сервиса подбора команды. Message
// показывается пользователю дословно.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("team: сервис ответил статусом %d: %s", e.StatusCode, e.Message)
}

// Client обращается к сервису подбора команды по описанию проекта.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиента сервиса подбора команды.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FindTeam отправляет описание проекта и возвращает рекомендованную
// команду. Неуспешный ответ возвращается как RequestError с сообщением
// сервиса либо общим fallback-текстом.
func (c *Client) FindTeam(ctx context.Context, project string) ([]Member, error) {
	body, err := json.Marshal(map[string]string{"project": project})
	if err != nil {
		return nil, fmt.Errorf("team: не удалось сериализовать запрос: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/find-team", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("team: не удалось создать запрос: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.WithError(err).Error("team: запрос к сервису подбора не выполнен")
		return nil, fmt.Errorf("team: запрос не выполнен: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Team    []Member `json:"team"`
		Message string   `json:"message"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := payload.Message
		if message == "" {
			message = "Failed to find team members"
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("team: некорректное тело ответа: %w", decodeErr)
	}

	return payload.Team, nil
}
