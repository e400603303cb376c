package email

import (
	"context"
	"errors"
	"strings"

	"github.com/a-h/templ"
)

// Render renders a templ component to an HTML string suitable for
// SendParams.BodyHTML.
func Render(ctx context.Context, tpl templ.Component) (string, error) {
	var sb strings.Builder
	if err := tpl.Render(ctx, &sb); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return sb.String(), nil
}

// Notification is a templated email: a recipient, subject, optional tag for
// provider-side analytics, and a templ component producing the body.
type Notification struct {
	To      string
	Subject string
	Tag     string
	Body    templ.Component
}

// Send renders the notification body and delivers it through the sender.
// Render failures are reported before any provider call is made.
func Send(ctx context.Context, sender Sender, n Notification) error {
	html, err := Render(ctx, n.Body)
	if err != nil {
		return err
	}
	return sender.SendEmail(ctx, SendParams{
		SendTo:   n.To,
		Subject:  n.Subject,
		BodyHTML: html,
		Tag:      n.Tag,
	})
}
