package usecase

import (
	"daily-updates/internal/updates"
	pkgLog "daily-updates/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	poster  updates.WebhookPoster
	iconURL string
}

// New creates a new updates UseCase instance. An empty iconURL keeps
// updates.DefaultIconURL.
func New(l pkgLog.Logger, poster updates.WebhookPoster, iconURL string) updates.UseCase {
	if iconURL == "" {
		iconURL = updates.DefaultIconURL
	}
	return &implUseCase{
		l:       l,
		poster:  poster,
		iconURL: iconURL,
	}
}
