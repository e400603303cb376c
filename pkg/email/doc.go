// Package email sends transactional notifications. A Sender delivers
// ready-made SendParams; NewPostmarkSender provides the production
// implementation and DevSender a file-writing one for local development.
// Notification plus Send layer templ-based templating on top, so callers
// hand over a component instead of pre-rendered HTML.
package email
