package updates

import (
	"context"

	"github.com/slack-go/slack"
)

// UseCase defines the business logic interface for the updates domain.
type UseCase interface {
	// Post formats a raw status update and delivers it to the webhook.
	// Delivery failures are returned wrapped in ErrDelivery.
	Post(ctx context.Context, input PostInput) (PostOutput, error)
}

// WebhookPoster delivers a message to an incoming webhook.
type WebhookPoster interface {
	Post(ctx context.Context, msg *slack.WebhookMessage) error
}
