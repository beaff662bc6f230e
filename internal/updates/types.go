package updates

import "strings"

// DefaultIconURL is the avatar used when none is configured.
const DefaultIconURL = "https://catalyze.io/favicon.png"

// Category classifies one line of a status update by its prefix code.
type Category int

const (
	CategoryOther Category = iota
	CategoryToday
	CategoryYesterday
	CategoryBlockers
)

// RenderedCategories lists the categories that reach the posted message, in
// the order their attachments appear.
var RenderedCategories = []Category{CategoryToday, CategoryYesterday, CategoryBlockers}

// ParseCategory maps a prefix code ("t", "y", "b") to its category.
// Codes are trimmed and case-insensitive; anything else is CategoryOther.
func ParseCategory(code string) Category {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "t":
		return CategoryToday
	case "y":
		return CategoryYesterday
	case "b":
		return CategoryBlockers
	default:
		return CategoryOther
	}
}

// Title is the attachment heading for the category.
func (c Category) Title() string {
	switch c {
	case CategoryToday:
		return "Today"
	case CategoryYesterday:
		return "Yesterday"
	case CategoryBlockers:
		return "Blockers"
	default:
		return "Other"
	}
}

func (c Category) String() string {
	return c.Title()
}

// LineEntry is one classified line of update text.
type LineEntry struct {
	Category Category
	Content  string
}

// Buckets groups line contents by category in source order.
// Other is collected but never rendered.
type Buckets struct {
	Today     []string
	Yesterday []string
	Blockers  []string
	Other     []string
}

// Add appends the entry content to the bucket of its category.
func (b *Buckets) Add(e LineEntry) {
	switch e.Category {
	case CategoryToday:
		b.Today = append(b.Today, e.Content)
	case CategoryYesterday:
		b.Yesterday = append(b.Yesterday, e.Content)
	case CategoryBlockers:
		b.Blockers = append(b.Blockers, e.Content)
	default:
		b.Other = append(b.Other, e.Content)
	}
}

// Get returns the entries collected for c.
func (b Buckets) Get(c Category) []string {
	switch c {
	case CategoryToday:
		return b.Today
	case CategoryYesterday:
		return b.Yesterday
	case CategoryBlockers:
		return b.Blockers
	default:
		return b.Other
	}
}

// PostInput is a status update received from the slash command.
type PostInput struct {
	UserName string
	Text     string
	Channel  string // optional, with or without the leading '#'
}

// PostOutput summarizes what was sent to the webhook.
type PostOutput struct {
	Channel     string
	Attachments int
	Dropped     int // lines without a recognized category
}
