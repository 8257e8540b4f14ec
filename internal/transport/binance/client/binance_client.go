// Package client подписанные запросы к REST API Binance.
package client

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fsdevblog/uc-store/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	RouteDepositHistory = "/api/v3/depositHistory"
	RouteAccount        = "/api/v3/account"

	HeaderAPIKey = "X-MBX-APIKEY"

	defaultHTTPTimeout = 10 * time.Second
)

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

// DepositStatusSuccess статус зачисленного депозита в истории Binance.
const DepositStatusSuccess = 1

// DepositRecord запись истории депозитов. Сумма приходит то строкой, то числом, decimal.Decimal принимает
// оба варианта.
type DepositRecord struct {
	TxID   string          `json:"txId"`
	Amount decimal.Decimal `json:"amount"`
	Coin   string          `json:"coin"`
	Status int             `json:"status"`
}

type errorResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// HTTPClient клиент Binance. Каждый запрос подписывается секретом из переданных учетных данных.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

func New(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		now:        time.Now,
	}
}

// Sign возвращает hex(HMAC-SHA256(secret, query)).
func Sign(secret, query string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// DepositHistory возвращает историю депозитов аккаунта. При ответе со статусом отличным от http.StatusOK
// возвращает StatusCodeError или TooManyRequestError.
func (c *HTTPClient) DepositHistory(
	ctx context.Context,
	creds domain.BinanceCredentials,
) ([]domain.ProviderDeposit, error) {
	body, err := c.signedGet(ctx, RouteDepositHistory, creds)
	if err != nil {
		return nil, fmt.Errorf("deposit history: %w", err)
	}

	var records []DepositRecord
	if jsonErr := json.Unmarshal(body, &records); jsonErr != nil {
		return nil, fmt.Errorf("parse deposit history: %w", jsonErr)
	}

	deposits := make([]domain.ProviderDeposit, 0, len(records))
	for _, r := range records {
		deposits = append(deposits, domain.ProviderDeposit{
			TxID:   r.TxID,
			Amount: r.Amount,
			Coin:   r.Coin,
			Status: r.Status,
		})
	}
	return deposits, nil
}

// Ping проверяет ключи запросом данных аккаунта.
func (c *HTTPClient) Ping(ctx context.Context, creds domain.BinanceCredentials) error {
	if _, err := c.signedGet(ctx, RouteAccount, creds); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

//nolint:nonamedreturns
func (c *HTTPClient) signedGet(
	ctx context.Context,
	route string,
	creds domain.BinanceCredentials,
) (body []byte, err error) {
	query := url.Values{}
	query.Set("timestamp", strconv.FormatInt(c.now().UnixMilli(), 10))
	encoded := query.Encode()

	reqURL := c.baseURL + route + "?" + encoded + "&signature=" + Sign(creds.APISecret, encoded)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %w", reqErr)
	}
	req.Header.Set(HeaderAPIKey, creds.APIKey)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusTeapot {
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %w", readErr)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		_ = json.Unmarshal(body, &apiErr)
		return nil, NewStatusCodeError(resp.StatusCode, apiErr.Msg)
	}
	return body, nil
}

func parseRetryAfter(value string) time.Duration {
	retryAfter, err := strconv.Atoi(value)
	if err != nil || retryAfter < minRetryAfter || retryAfter > maxRetryAfter {
		// в случае ошибки или неверных данных ставим 60 секунд
		retryAfter = 60
	}
	return time.Duration(retryAfter) * time.Second
}
