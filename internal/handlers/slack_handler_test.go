package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/alanwells064/cornbot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const userID = "U987654321"

func registeredProfile() *entity.Profile {
	return &entity.Profile{
		ID:          1,
		SlackUserID: userID,
		TZ:          -7,
		Prompts: map[string]string{
			"08:30": "What are you looking forward to?",
			"20:00": domain.DefaultPromptText,
		},
		Breaks: map[string]int{"default": 70, "chess": 30},
	}
}

func expectRegistered(m test.ServiceMocks, profile *entity.Profile) {
	m.AccountServiceMock.EXPECT().GetProfile(gomock.Any(), userID).Return(profile, nil).Times(1)
}

func expectUnregistered(m test.ServiceMocks) {
	m.AccountServiceMock.EXPECT().
		GetProfile(gomock.Any(), userID).
		Return(nil, &domain.NotFoundError{What: "profile", Key: userID}).Times(1)
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
	return response
}

type handlerCase struct {
	name          string
	text          string
	buildMocks    func(ctx context.Context, m test.ServiceMocks)
	checkResponse func(t *testing.T, response slack.Msg)
}

func runHandlerCases(t *testing.T, tests []handlerCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m)
			}

			recorder := test.CreateTestRecorder()
			handler.HandleSlashCommand(recorder, test.CreateSlackRequest(t, tt.text, userID))

			tt.checkResponse(t, decode(t, recorder))
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Timezone(t *testing.T) {
	runHandlerCases(t, []handlerCase{
		{
			name: "Should register a new user",
			text: "timezone -4",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectUnregistered(m)
				m.AccountServiceMock.EXPECT().
					SetTimezone(gomock.Any(), userID, -4).
					Return(&entity.Profile{ID: 1, SlackUserID: userID, TZ: -4}, true, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "✅ Set your timezone to UTC*-4*")
				assert.Contains(t, response.Text, "Setup complete!")
			},
		},
		{
			name: "Should update an existing user",
			text: "time +5",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.AccountServiceMock.EXPECT().
					SetTimezone(gomock.Any(), userID, 5).
					Return(&entity.Profile{ID: 1, SlackUserID: userID, TZ: 5}, false, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "✅ Updated your timezone to UTC*+5*")
			},
		},
		{
			name: "Should show the current timezone",
			text: "timezone",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "Your current timezone is UTC*-7*")
			},
		},
		{
			name: "Should explain offsets to a new user",
			text: "timezone",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectUnregistered(m)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "Pacific time is *-7* hours")
			},
		},
		{
			name: "Should reject an out of range offset",
			text: "timezone 15",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectUnregistered(m)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Couldn't parse number; accepts values from -11 to 14")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Schedule(t *testing.T) {
	runHandlerCases(t, []handlerCase{
		{
			name: "Should schedule a prompt",
			text: "schedule prompt 7:05 Drink some water",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.PromptServiceMock.EXPECT().
					Schedule(gomock.Any(), profile, "07:05", "Drink some water").
					Return(false, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Scheduled prompt at 07:05 daily.", response.Text)
			},
		},
		{
			name: "Should report an overwrite",
			text: "sch pr 08:30 Something new",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.PromptServiceMock.EXPECT().
					Schedule(gomock.Any(), profile, "08:30", "Something new").
					Return(true, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "Overwriting 08:30 prompt.")
			},
		},
		{
			name: "Should reject a bad time",
			text: "schedule prompt 25:00 nope",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Couldn't parse time")
			},
		},
		{
			name: "Should show validation errors from the service",
			text: "schedule prompt 09:00 hi",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.PromptServiceMock.EXPECT().
					Schedule(gomock.Any(), profile, "09:00", "hi").
					Return(false, domain.NewValidationError("content", "too long")).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ Failed to schedule prompt: invalid content: too long", response.Text)
			},
		},
		{
			name: "Should hide internal errors",
			text: "schedule prompt 09:00 hi",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.PromptServiceMock.EXPECT().
					Schedule(gomock.Any(), profile, "09:00", "hi").
					Return(false, errors.New("database is locked")).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ Failed to schedule prompt. Please try again later.", response.Text)
			},
		},
		{
			name: "Should schedule a break",
			text: "schedule break League of Legends 1h 10m",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.AccountServiceMock.EXPECT().
					SetBreak(gomock.Any(), profile, "league of legends", 70*time.Minute).
					DoAndReturn(func(_ context.Context, p *entity.Profile, activity string, _ time.Duration) error {
						p.Breaks[activity] = 70
						return nil
					}).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Scheduled break reminders for `league of legends` every 1h 10m. (2/10 slots used)", response.Text)
			},
		},
		{
			name: "Should update the default break",
			text: "schedule break default 45 min",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.AccountServiceMock.EXPECT().
					SetBreak(gomock.Any(), profile, "default", 45*time.Minute).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Updated default break reminders to every 45m.", response.Text)
			},
		},
		{
			name: "Should reject a break without a time",
			text: "schedule break chess later",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Couldn't parse game name or time")
			},
		},
		{
			name: "Should block unregistered users",
			text: "schedule prompt 09:00 hi",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectUnregistered(m)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ You're not set up yet")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Delete(t *testing.T) {
	runHandlerCases(t, []handlerCase{
		{
			name: "Should delete a prompt by index",
			text: "delete prompt 2",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.PromptServiceMock.EXPECT().Unschedule(gomock.Any(), profile, "20:00").Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Deleted your daily 20:00 prompt.", response.Text)
			},
		},
		{
			name: "Should delete a prompt by time",
			text: "del prompt 8:30",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.PromptServiceMock.EXPECT().Unschedule(gomock.Any(), profile, "08:30").Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Deleted your daily 08:30 prompt.", response.Text)
			},
		},
		{
			name: "Should reject an index out of range",
			text: "delete prompt 7",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Couldn't parse argument")
			},
		},
		{
			name: "Should report a missing prompt",
			text: "delete prompt 10:00",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.PromptServiceMock.EXPECT().
					Unschedule(gomock.Any(), profile, "10:00").
					Return(&domain.NotFoundError{What: "prompt", Key: "10:00"}).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, `❌ Failed to delete prompt: prompt "10:00" not found`, response.Text)
			},
		},
		{
			name: "Should refuse to delete the default break",
			text: "delete break Default",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.AccountServiceMock.EXPECT().
					DeleteBreak(gomock.Any(), profile, "default").
					Return(domain.NewValidationError("activity", "the default cannot be deleted")).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Can't delete the default break setting")
			},
		},
		{
			name: "Should delete a break",
			text: "delete break chess",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.AccountServiceMock.EXPECT().
					DeleteBreak(gomock.Any(), profile, "chess").
					DoAndReturn(func(_ context.Context, p *entity.Profile, activity string) error {
						delete(p.Breaks, activity)
						return nil
					}).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Deleted break reminders for `chess`. (0/10 slots used)", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_ListAndReset(t *testing.T) {
	runHandlerCases(t, []handlerCase{
		{
			name: "Should list prompts in time order",
			text: "list prompts",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "1) 08:30 - What are you looking forward to?")
				assert.Contains(t, response.Text, "2) 20:00 - "+domain.DefaultPromptText)
			},
		},
		{
			name: "Should list breaks with the default first",
			text: "li br",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "default - 1h 10m\n`chess` - 30m")
			},
		},
		{
			name: "Should list timezones for unregistered users",
			text: "list timezones",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectUnregistered(m)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "*-11* = ")
				assert.Contains(t, response.Text, "*+14* = ")
			},
		},
		{
			name: "Should block other lists for unregistered users",
			text: "list prompts",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectUnregistered(m)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ You're not set up yet")
			},
		},
		{
			name: "Should delete everything on reset all",
			text: "reset all",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.AccountServiceMock.EXPECT().DeleteAccount(gomock.Any(), profile).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "✅ All data deleted.")
			},
		},
		{
			name: "Should reset prompts",
			text: "reset prompts",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.AccountServiceMock.EXPECT().ResetPrompts(gomock.Any(), profile).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ All prompts have been reset to default.", response.Text)
			},
		},
		{
			name: "Should reset breaks",
			text: "reset breaks",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.AccountServiceMock.EXPECT().ResetBreaks(gomock.Any(), profile).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ All break reminder settings have been reset to default.", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Logs(t *testing.T) {
	runHandlerCases(t, []handlerCase{
		{
			name: "Should log a new activity",
			text: "log Reading 1h 30m",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.LedgerServiceMock.EXPECT().
					Log(gomock.Any(), profile, "reading", 90*time.Minute).
					Return(entity.LogResult{
						Activity: "reading", Day: "2026-03-10", Added: 90 * time.Minute, DayTotal: 90 * time.Minute,
						Created: true, SlotsUsed: 3,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "Created activity `reading`. (3/10 slots used)\n✅ Logged 1:30:00 of `reading`, 1:30:00 today.", response.Text)
			},
		},
		{
			name: "Should say when the day total was capped",
			text: "lo chess 5h",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.LedgerServiceMock.EXPECT().
					Log(gomock.Any(), profile, "chess", 5*time.Hour).
					Return(entity.LogResult{
						Activity: "chess", Added: 5 * time.Hour, DayTotal: domain.MaxLoggedPerDay, Clamped: true, SlotsUsed: 1,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Logged 5:00:00 of `chess`, 23:59:59 today. A day can't total more than 23:59:59.", response.Text)
			},
		},
		{
			name: "Should show the slot limit",
			text: "log poker 10 sec",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.LedgerServiceMock.EXPECT().
					Log(gomock.Any(), profile, "poker", 10*time.Second).
					Return(entity.LogResult{}, domain.NewValidationError("log", "couldn't create activity %q, %d/%d slots used", "poker", 10, 10)).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, `couldn't create activity "poker", 10/10 slots used`)
			},
		},
		{
			name: "Should reject an unparsable time",
			text: "log reading forever",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Usage: `/cornbot log <activity> <time>`")
			},
		},
		{
			name: "Should require registration to log",
			text: "log reading 1h",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectUnregistered(m)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ You're not set up yet")
			},
		},
		{
			name: "Should merge two activities",
			text: "merge Chess go boardgames",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.LedgerServiceMock.EXPECT().Merge(gomock.Any(), profile, "Chess", "go", "boardgames").Return(4, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Merged `chess` and `go` into `boardgames`. (4/10 slots used)", response.Text)
			},
		},
		{
			name: "Should print merge usage",
			text: "merge chess go",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ Usage: `/cornbot merge <activity1> <activity2> <new activity>`", response.Text)
			},
		},
		{
			name: "Should delete a logged activity",
			text: "delete log Chess",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.LedgerServiceMock.EXPECT().DeleteActivity(gomock.Any(), profile, "chess").Return(2, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ Deleted all logs for `chess`. (2/10 slots used)", response.Text)
			},
		},
		{
			name: "Should list log totals",
			text: "list logs",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.LedgerServiceMock.EXPECT().Summary(gomock.Any(), profile).Return([]entity.ActivityTotal{
					{Activity: "chess", Total: 10 * time.Minute},
					{Activity: "reading", Total: 26 * time.Hour},
				}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "ACTIVITY")
				assert.Contains(t, response.Text, "chess                           0:10:00")
				assert.Contains(t, response.Text, "reading                         26:00:00")
			},
		},
		{
			name: "Should list the newest days of one activity",
			text: "list logs chess",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				entries := make([]entity.LogEntry, 0, 9)
				for day := 20; day > 11; day-- {
					entries = append(entries, entity.LogEntry{Day: fmt.Sprintf("2026-03-%02d", day), Activity: "chess", Duration: time.Hour})
				}
				m.LedgerServiceMock.EXPECT().History(gomock.Any(), profile, "chess").Return(entries, nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "2026-03-20  1:00:00")
				assert.Contains(t, response.Text, "2026-03-14  1:00:00")
				assert.NotContains(t, response.Text, "2026-03-13")
				assert.Contains(t, response.Text, "... 2 older days")
				assert.Contains(t, response.Text, "TOTAL       9:00:00")
			},
		},
		{
			name: "Should report an empty log",
			text: "list logs",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.LedgerServiceMock.EXPECT().Summary(gomock.Any(), profile).
					Return(nil, &domain.NotFoundError{What: "logs", Key: userID}).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "❌ Failed to list logs: logs")
			},
		},
		{
			name: "Should reset logs",
			text: "reset logs",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				profile := registeredProfile()
				expectRegistered(m, profile)
				m.LedgerServiceMock.EXPECT().Reset(gomock.Any(), profile).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "✅ All logs have been deleted.", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Misc(t *testing.T) {
	runHandlerCases(t, []handlerCase{
		{
			name: "Should show the dispatcher status",
			text: "status",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
				m.StatusServiceMock.EXPECT().CurrentDispatchState().Return(entity.DispatchState{
					Hour:     3,
					Mode:     entity.ModeActive,
					Revision: 4,
					Wakes:    []entity.Wake{{At: time.Now().Add(time.Hour), Minute: "45"}},
					Slots:    map[string][]int64{"45": {1, 2}},
				}).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "*Active hour:* 03:00 UTC (active)")
				assert.Contains(t, response.Text, "• 03:45 UTC - 2 users")
			},
		},
		{
			name: "Should show limited help to unregistered users",
			text: "",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectUnregistered(m)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "list timezones")
				assert.NotContains(t, response.Text, "schedule")
			},
		},
		{
			name: "Should show help for one command",
			text: "help sched",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				expectRegistered(m, registeredProfile())
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Contains(t, response.Text, "schedule break <game> <time>")
			},
		},
		{
			name: "Should reject unknown commands",
			text: "respond a b c",
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ unknown command: respond. Try `/cornbot help`.", response.Text)
			},
		},
		{
			name: "Should fail softly when the profile store is down",
			text: "list prompts",
			buildMocks: func(ctx context.Context, m test.ServiceMocks) {
				m.AccountServiceMock.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errors.New("disk I/O error")).Times(1)
			},
			checkResponse: func(t *testing.T, response slack.Msg) {
				assert.Equal(t, "❌ Something went wrong, please try again later.", response.Text)
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_BadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := test.CreateTestRecorder()
	handler.HandleSlashCommand(recorder, test.CreateUnsignedRequest(t, "reset all", userID))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
