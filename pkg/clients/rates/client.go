package rates

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrInvalidRate is returned when the rate source answers with a non-positive value.
var ErrInvalidRate = errors.New("rate source returned a non-positive rate")

// Client fetches the current RSD per EUR middle rate.
type Client interface {
	FetchEURRate(ctx context.Context) (float64, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a rate client for the given endpoint.
func NewClient(url string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	restyClient := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &APIClient{httpClient: restyClient, url: url}
}

// rateResponse accepts both a plain {"rate": x} body and the exchange_middle field
// used by Serbian central-bank mirrors.
type rateResponse struct {
	Rate           float64 `json:"rate"`
	ExchangeMiddle float64 `json:"exchange_middle"`
}

func (r rateResponse) value() float64 {
	if r.Rate > 0 {
		return r.Rate
	}
	return r.ExchangeMiddle
}

// FetchEURRate performs a GET against the configured endpoint.
func (c *APIClient) FetchEURRate(ctx context.Context) (float64, error) {
	if c.url == "" {
		return 0, errors.New("rate source url is not configured")
	}

	result := new(rateResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		Get(c.url)
	if err != nil {
		return 0, fmt.Errorf("fetch eur rate: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return 0, fmt.Errorf("rate source error: status=%d", resp.StatusCode())
	}

	rate := result.value()
	if rate <= 0 {
		return 0, ErrInvalidRate
	}

	return rate, nil
}
