// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"homework_status_bot/internal/domain/homework"
)

// HTTPClient talks to the Practicum homework status API. It implements
// the homework.Client interface.
type HTTPClient struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

// NewHTTPClient builds a client for the given endpoint. The token is sent
// as an "OAuth" authorization header on every request. A nil httpClient
// falls back to a default one with no timeout tuning.
func NewHTTPClient(endpoint, token string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPClient{
		httpClient: httpClient,
		endpoint:   endpoint,
		token:      token,
	}
}

// Statuses performs GET <endpoint>?from_date=<fromDate> and decodes the body.
// Transport failures, non-200 responses and undecodable bodies come back as
// classified *homework.Fault values.
func (c *HTTPClient) Statuses(ctx context.Context, fromDate int64) (*homework.StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, homework.NewFault(homework.FaultConnection, "Statuses", "Ошибка соединения с АПИ", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	query := url.Values{}
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, homework.NewFault(homework.FaultConnection, "Statuses", "Ошибка соединения с АПИ", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, homework.NewFault(homework.FaultBadStatus, "Statuses", "Некорретный статус ответа", nil)
	}

	var parsed homework.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, homework.NewFault(homework.FaultDeserialization, "Statuses", "Ошибка десериализации", err)
	}

	return &parsed, nil
}
