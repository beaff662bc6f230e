package slackhook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// Client posts messages to a Slack incoming webhook.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a webhook client. Every call is bounded by timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetURL overrides the webhook URL for testing purposes.
func (c *Client) SetURL(url string) {
	c.url = url
}

// URL returns the target webhook.
func (c *Client) URL() string {
	return c.url
}

// Post sends msg to the webhook once. A non-200 answer is returned as a
// *DeliveryError carrying the status code.
func (c *Client) Post(ctx context.Context, msg *slack.WebhookMessage) error {
	err := slack.PostWebhookCustomHTTPContext(ctx, c.url, c.httpClient, msg)
	if err == nil {
		return nil
	}

	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		return &DeliveryError{StatusCode: statusErr.Code, Status: statusErr.Status, Err: err}
	}

	var rateErr *slack.RateLimitedError
	if errors.As(err, &rateErr) {
		return &DeliveryError{StatusCode: http.StatusTooManyRequests, Status: "429 Too Many Requests", Err: err}
	}

	return &DeliveryError{Err: err}
}

// DeliveryError describes a failed webhook call. StatusCode is zero when the
// endpoint was never reached.
type DeliveryError struct {
	StatusCode int
	Status     string
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("webhook delivery failed: %v", e.Err)
	}
	return fmt.Sprintf("webhook delivery failed with %s", e.Status)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
