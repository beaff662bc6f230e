package test

import "github.com/slack-go/slack"

// FormatRequest represents a dry-run format request
type FormatRequest struct {
	UserName    string `json:"user_name" binding:"required"`
	Text        string `json:"text"`
	ChannelName string `json:"channel_name"`
}

// FormatResponse carries the message that /updates would post
type FormatResponse struct {
	Message slack.WebhookMessage `json:"message"`
	Dropped []string             `json:"dropped,omitempty"`
}
