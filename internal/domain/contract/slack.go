package contract

//go:generate go run go.uber.org/mock/mockgen -source=slack.go -destination=../../../mocks/mock_slack.go -package=mocks

import (
	"context"

	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of *slack.Client the adapter calls
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetUserPresenceContext(ctx context.Context, user string) (*slack.UserPresence, error)
	GetUserProfileContext(ctx context.Context, params *slack.GetUserProfileParameters) (*slack.UserProfile, error)
}

// Messenger sends a direct message to a user.
type Messenger interface {
	SendDirectMessage(ctx context.Context, to *entity.Profile, text string) error
}

// ActivitySource lists the registered users that are online and doing something.
type ActivitySource interface {
	ListActiveUsersWithActivity(ctx context.Context) ([]entity.Activity, error)
}
