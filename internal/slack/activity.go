package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/alanwells064/cornbot/internal/domain/entity"
	slackapi "github.com/slack-go/slack"
)

const presenceActive = "active"

// ListActiveUsersWithActivity reports every registered user who is online with a
// custom status set. The status text names the activity; its start is the first
// time this status was observed, since Slack does not expose one.
func (c *Client) ListActiveUsersWithActivity(ctx context.Context) ([]entity.Activity, error) {
	profiles, err := c.dm.Profile().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	now := c.now()
	var out []entity.Activity
	for _, p := range profiles {
		status, ok := c.currentActivity(ctx, p)
		if !ok {
			c.seen.Delete(p.ID)
			continue
		}

		obs, ok := c.seen.Load(p.ID)
		if !ok || obs.status != status {
			obs = observation{status: status, since: now}
			c.seen.Store(p.ID, obs)
		}

		out = append(out, entity.Activity{UserID: p.ID, Name: status, StartedAt: obs.since})
	}
	return out, nil
}

func (c *Client) currentActivity(ctx context.Context, p *entity.Profile) (string, bool) {
	if err := take(ctx, c.read); err != nil {
		return "", false
	}
	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	presence, err := c.api.GetUserPresenceContext(callCtx, p.SlackUserID)
	cancel()
	if err != nil {
		c.log.Warn().Err(err).Int64("user_id", p.ID).Msg("failed to get presence")
		return "", false
	}
	if presence == nil || presence.Presence != presenceActive {
		return "", false
	}

	if err := take(ctx, c.read); err != nil {
		return "", false
	}
	callCtx, cancel = context.WithTimeout(ctx, c.callTimeout)
	profile, err := c.api.GetUserProfileContext(callCtx, &slackapi.GetUserProfileParameters{UserID: p.SlackUserID})
	cancel()
	if err != nil {
		c.log.Warn().Err(err).Int64("user_id", p.ID).Msg("failed to get user profile")
		return "", false
	}
	if profile == nil {
		return "", false
	}

	status := strings.TrimSpace(profile.StatusText)
	return status, status != ""
}
