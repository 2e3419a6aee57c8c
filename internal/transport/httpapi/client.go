package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/iudanet/offlink/internal/models"
	"github.com/iudanet/offlink/pkg/api"
)

// Client представляет терминальный транспорт: выполняет GraphQL операции
// поверх HTTP POST и возвращает не более одного ответа на операцию.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *slog.Logger
}

// NewClient создает новый транспортный клиент.
// token — опциональный bearer token; пустая строка отключает авторизацию.
func NewClient(endpoint, token string, logger *slog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Forward реализует pipeline.Forwarder: отправляет операцию на сервер
// и излучает единственный ответ. Транспортная ошибка не завершает поток
// ошибкой — она попадает в Response.Err и обрабатывается выше по конвейеру.
func (c *Client) Forward(ctx context.Context, op *models.Operation) <-chan models.Response {
	out := make(chan models.Response, 1)

	go func() {
		defer close(out)
		out <- c.do(ctx, op)
	}()

	return out
}

// do выполняет один HTTP запрос
func (c *Client) do(ctx context.Context, op *models.Operation) models.Response {
	reqBody := api.Request{
		Query:         op.Definition.Document,
		OperationName: op.Definition.Name,
		Variables:     op.Variables,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return models.Response{Operation: op, Err: fmt.Errorf("failed to marshal request body: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return models.Response{Operation: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.token != "" {
		c.warnIfExpired()
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Response{Operation: op, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Response{Operation: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	// Не-2xx — транспортная ошибка: прикладные ошибки GraphQL сервер
	// возвращает со статусом 200 в секции errors
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Response{
			Operation: op,
			Err:       fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	var gqlResp api.Response
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return models.Response{Operation: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	result := models.Response{
		Operation: op,
		Data:      gqlResp.Data,
	}
	for _, e := range gqlResp.Errors {
		result.Errors = append(result.Errors, models.ResponseError{Message: e.Message})
	}

	return result
}

// warnIfExpired разбирает bearer token без проверки подписи (ключа на
// клиенте нет) и предупреждает об истекшем сроке действия. Запрос все
// равно отправляется: решение за сервером.
func (c *Client) warnIfExpired() {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.token, claims); err != nil {
		return
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}

	if time.Now().After(exp.Time) {
		c.logger.Warn("access token is expired, server will likely reject the request",
			"expired_at", exp.Time)
	}
}
