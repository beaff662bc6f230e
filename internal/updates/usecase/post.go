package usecase

import (
	"context"
	"errors"
	"fmt"

	"daily-updates/internal/updates"
	"daily-updates/pkg/slackhook"
)

// Post formats the update and sends it to the webhook in a single attempt.
func (uc *implUseCase) Post(ctx context.Context, input updates.PostInput) (updates.PostOutput, error) {
	buckets := Classify(input.Text)

	msg := buildFromBuckets(input.UserName, buckets)
	msg.IconURL = uc.iconURL
	msg.Channel = NormalizeChannel(input.Channel)

	output := updates.PostOutput{
		Channel:     msg.Channel,
		Attachments: len(msg.Attachments),
		Dropped:     len(buckets.Other),
	}

	if output.Dropped > 0 {
		uc.l.Debugf(ctx, "internal.updates.usecase.Post: user=%s dropped %d unclassified line(s)", input.UserName, output.Dropped)
	}

	if err := uc.poster.Post(ctx, &msg); err != nil {
		var derr *slackhook.DeliveryError
		if errors.As(err, &derr) && derr.StatusCode != 0 {
			uc.l.Errorf(ctx, "internal.updates.usecase.Post: user=%s webhook answered %d: %v", input.UserName, derr.StatusCode, err)
		} else {
			uc.l.Errorf(ctx, "internal.updates.usecase.Post: user=%s webhook call failed: %v", input.UserName, err)
		}
		return output, fmt.Errorf("%w: %w", updates.ErrDelivery, err)
	}

	uc.l.Infof(ctx, "internal.updates.usecase.Post: user=%s channel=%q attachments=%d delivered",
		input.UserName, output.Channel, output.Attachments)
	return output, nil
}
