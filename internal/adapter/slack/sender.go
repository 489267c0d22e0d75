// Package slack delivers dues notices as direct messages.
package slack

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/slack-go/slack"

	"github.com/sjoh/clubledger/internal/domain"
)

// Sender implements usecase.NoticeSender over the Slack Web API: it opens
// a direct-message conversation with the member and posts the notice.
type Sender struct {
	client *slack.Client
	logger zerolog.Logger
}

// NewSender creates a sender using the given bot token.
func NewSender(token string, logger zerolog.Logger) *Sender {
	return &Sender{
		client: slack.New(token),
		logger: logger.With().Str("component", "slack_sender").Logger(),
	}
}

// Deliver sends the message to the member. Members without a linked
// Slack account cannot be reached and fail fast.
func (s *Sender) Deliver(ctx context.Context, member domain.Member, message string) error {
	if member.SlackID == "" {
		return fmt.Errorf("member %s (%s) has no slack account linked", member.Name, member.Track)
	}

	channel, _, _, err := s.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{member.SlackID},
	})
	if err != nil {
		return fmt.Errorf("open dm with %s: %w", member.Name, err)
	}

	if _, _, err := s.client.PostMessageContext(ctx, channel.ID, slack.MsgOptionText(message, false)); err != nil {
		return fmt.Errorf("post dm to %s: %w", member.Name, err)
	}

	s.logger.Info().
		Str("name", member.Name).
		Str("track", member.Track).
		Msg("notice delivered")
	return nil
}
