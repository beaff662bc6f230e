package http

import "daily-updates/internal/updates"

// postReq carries the slash command fields this service reads. Slack sends
// more (team_id, command, response_url, ...) which are ignored.
// Pointers distinguish a missing field from an empty one.
type postReq struct {
	UserName    *string `form:"user_name"`
	Text        *string `form:"text"`
	ChannelName string  `form:"channel_name"`
	Token       string  `form:"token"`
}

func (r postReq) validate() error {
	if r.UserName == nil || *r.UserName == "" {
		return updates.ErrMissingUserName
	}
	if r.Text == nil {
		return updates.ErrMissingText
	}
	return nil
}

func (r postReq) toInput() updates.PostInput {
	return updates.PostInput{
		UserName: *r.UserName,
		Text:     *r.Text,
		Channel:  r.ChannelName,
	}
}
