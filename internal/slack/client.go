package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/rs/zerolog"
	slackapi "github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// Client sends direct messages and reads presence through the Slack Web API.
// Sends and reads wait on separate token buckets, so presence polling never
// holds up delivery.
type Client struct {
	api         contract.SlackClient
	dm          contract.DataManager
	send        *rate.Limiter
	read        *rate.Limiter
	callTimeout time.Duration
	now         func() time.Time
	log         zerolog.Logger

	// first time each user was seen with their current status
	seen *xsync.Map[int64, observation]
}

type observation struct {
	status string
	since  time.Time
}

// Limits configures the outbound call rates. CallTimeout bounds each API call,
// not the wait for a token.
type Limits struct {
	SendPerSec  int
	ReadPerSec  int
	CallTimeout time.Duration
}

func New(api contract.SlackClient, dm contract.DataManager, limits Limits, now func() time.Time, log zerolog.Logger) *Client {
	if limits.SendPerSec <= 0 {
		limits.SendPerSec = 1
	}
	if limits.ReadPerSec <= 0 {
		limits.ReadPerSec = 1
	}
	if limits.CallTimeout <= 0 {
		limits.CallTimeout = domain.DeliveryTimeout
	}
	if now == nil {
		now = time.Now
	}
	return &Client{
		api:         api,
		dm:          dm,
		send:        rate.NewLimiter(rate.Limit(limits.SendPerSec), limits.SendPerSec),
		read:        rate.NewLimiter(rate.Limit(limits.ReadPerSec), limits.ReadPerSec),
		callTimeout: limits.CallTimeout,
		now:         now,
		log:         log.With().Str("comp", "slack").Logger(),
		seen:        xsync.NewMap[int64, observation](),
	}
}

// SendDirectMessage posts text to the user's app DM. It queues on the send
// bucket for as long as ctx allows.
func (c *Client) SendDirectMessage(ctx context.Context, to *entity.Profile, text string) error {
	if to == nil {
		return &domain.DeliveryError{Err: fmt.Errorf("no recipient")}
	}
	if err := take(ctx, c.send); err != nil {
		return &domain.DeliveryError{UserID: to.ID, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	_, _, err := c.api.PostMessageContext(callCtx, to.SlackUserID,
		slackapi.MsgOptionText(text, false),
		slackapi.MsgOptionAsUser(false),
	)
	if err != nil {
		return &domain.DeliveryError{UserID: to.ID, Err: err}
	}
	return nil
}

// take reserves a token and sleeps until it is due. Unlike rate.Limiter.Wait it
// does not give up early when the delay runs past the ctx deadline.
func take(ctx context.Context, l *rate.Limiter) error {
	r := l.Reserve()
	if !r.OK() {
		return fmt.Errorf("rate limiter has no burst")
	}
	delay := r.Delay()
	if delay == 0 {
		return nil
	}

	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
