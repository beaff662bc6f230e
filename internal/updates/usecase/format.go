package usecase

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"daily-updates/internal/updates"
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ClassifyLine splits a line on its first colon. The prefix selects the
// category and the trimmed remainder, later colons included, is the content.
// A line without a colon is CategoryOther with the whole line as content.
func ClassifyLine(line string) updates.LineEntry {
	code, content, found := strings.Cut(line, ":")
	if !found {
		return updates.LineEntry{Category: updates.CategoryOther, Content: line}
	}
	return updates.LineEntry{
		Category: updates.ParseCategory(code),
		Content:  strings.TrimSpace(content),
	}
}

// Classify sorts every line of text into buckets, keeping source order.
func Classify(text string) updates.Buckets {
	var b updates.Buckets
	if text == "" {
		return b
	}
	for _, line := range strings.Split(lineBreaks.Replace(text), "\n") {
		if line == "" {
			continue
		}
		b.Add(ClassifyLine(line))
	}
	return b
}

// BuildMessage turns raw update text into a webhook message with one
// attachment per non-empty category, always ordered Today, Yesterday,
// Blockers. Unclassified lines are left out.
func BuildMessage(username, text string) slack.WebhookMessage {
	return buildFromBuckets(username, Classify(text))
}

func buildFromBuckets(username string, b updates.Buckets) slack.WebhookMessage {
	msg := slack.WebhookMessage{
		IconURL:     updates.DefaultIconURL,
		Username:    fmt.Sprintf("Updates: %s", username),
		Attachments: []slack.Attachment{},
	}

	for _, c := range updates.RenderedCategories {
		entries := b.Get(c)
		if len(entries) == 0 {
			continue
		}
		msg.Attachments = append(msg.Attachments, newAttachment(c.Title(), entries))
	}
	return msg
}

func newAttachment(title string, entries []string) slack.Attachment {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = "- " + e
	}
	return slack.Attachment{
		Fallback: fmt.Sprintf("%s: %s", title, strings.Join(entries, ", ")),
		Title:    title,
		Text:     strings.Join(lines, "\n"),
	}
}

// NormalizeChannel returns the channel reference with a leading '#'.
// Blank input yields "".
func NormalizeChannel(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "#") {
		return name
	}
	return "#" + name
}
