package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	slackcmd "github.com/alanwells064/cornbot/internal/domain/slack"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

type SlackHandler struct {
	prompts       contract.PromptService
	accounts      contract.AccountService
	status        contract.StatusService
	ledger        contract.LedgerService
	signingSecret string
	now           func() time.Time
	log           zerolog.Logger
}

func New(prompts contract.PromptService, accounts contract.AccountService, status contract.StatusService, ledger contract.LedgerService, signingSecret string, log zerolog.Logger) *SlackHandler {
	return &SlackHandler{
		prompts:       prompts,
		accounts:      accounts,
		status:        status,
		ledger:        ledger,
		signingSecret: signingSecret,
		now:           time.Now,
		log:           log.With().Str("comp", "http").Logger(),
	}
}

// request is one slash command from one user.
type request struct {
	cmd        *slackcmd.Command
	slackUser  string
	profile    *entity.Profile
	registered bool
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn().Err(err).Msg("rejected unsigned slash command")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error()+". Try `/cornbot help`.")
		return
	}

	ctx := r.Context()
	req := &request{cmd: cmd, slackUser: s.UserID}

	profile, err := h.accounts.GetProfile(ctx, s.UserID)
	switch {
	case err == nil:
		req.profile, req.registered = profile, true
	case errors.Is(err, domain.ErrNotFound):
	default:
		h.log.Error().Err(err).Str("slack_user_id", s.UserID).Msg("failed to load profile")
		h.respondWithError(w, "Something went wrong, please try again later.")
		return
	}

	h.log.Debug().
		Str("slack_user_id", s.UserID).
		Str("command", string(cmd.Type)).
		Bool("registered", req.registered).
		Msg("slash command")

	response := h.handleCommand(ctx, req)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, req *request) *slack.Msg {
	if !req.registered && !allowedUnregistered(req.cmd) {
		return h.createErrorResponse("You're not set up yet. Use `/cornbot timezone` to get started.")
	}

	switch req.cmd.Type {
	case slackcmd.CmdTimezone:
		return h.handleTimezone(ctx, req)
	case slackcmd.CmdSchedule:
		return h.handleSchedule(ctx, req)
	case slackcmd.CmdDelete:
		return h.handleDelete(ctx, req)
	case slackcmd.CmdList:
		return h.handleList(ctx, req)
	case slackcmd.CmdReset:
		return h.handleReset(ctx, req)
	case slackcmd.CmdStatus:
		return h.handleStatus()
	case slackcmd.CmdLog:
		return h.handleLog(ctx, req)
	case slackcmd.CmdMerge:
		return h.handleMerge(ctx, req)
	case slackcmd.CmdHelp:
		return h.handleHelp(req)
	case slackcmd.CmdAbout:
		return h.createResponse(slackcmd.GetAboutText())
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func allowedUnregistered(cmd *slackcmd.Command) bool {
	switch cmd.Type {
	case slackcmd.CmdTimezone, slackcmd.CmdHelp, slackcmd.CmdAbout:
		return true
	case slackcmd.CmdList:
		if len(cmd.Args) == 0 {
			return false
		}
		what, _ := slackcmd.MatchPrefix(cmd.Args[0], listOptions...)
		return what == "timezones"
	}
	return false
}

func (h *SlackHandler) handleTimezone(ctx context.Context, req *request) *slack.Msg {
	now := h.now()

	if len(req.cmd.Args) == 0 {
		if !req.registered {
			return h.createResponse(fmt.Sprintf(
				"Your timezone is the number of hours *offset* you are from UTC. For example:\n"+
					"Eastern time is *-4* hours (currently %s).\n"+
					"Pacific time is *-7* hours (currently %s).\n\n"+
					"Use `/cornbot list timezones` to see all of them, or `/cornbot timezone <offset>` to set yours.",
				localClock(now, -4), localClock(now, -7)))
		}
		tz := req.profile.TZ
		return h.createResponse(fmt.Sprintf(
			"Your current timezone is UTC*%s*. (now %s)\nUse `/cornbot timezone <offset>` to change it.",
			formatOffset(tz), localClock(now, tz)))
	}

	offset, err := domain.ParseOffset(req.cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf(
			"Couldn't parse number; accepts values from %d to %d. Use `/cornbot list timezones` to see current times.",
			domain.MinUTCOffset, domain.MaxUTCOffset))
	}

	profile, created, err := h.accounts.SetTimezone(ctx, req.slackUser, offset)
	if err != nil {
		return h.errorResponse(err, "Failed to update timezone")
	}

	if created {
		return h.createResponse(fmt.Sprintf(
			"✅ Set your timezone to UTC*%s*. (now %s)\n"+
				"Setup complete! Don't forget `/cornbot help` and `/cornbot about` if you get stuck.\n\n"+
				"_Not sure where to start? Try_ `/cornbot list prompts`_._",
			formatOffset(profile.TZ), localClock(now, profile.TZ)))
	}
	return h.createResponse(fmt.Sprintf("✅ Updated your timezone to UTC*%s*. (now %s)",
		formatOffset(profile.TZ), localClock(now, profile.TZ)))
}

func (h *SlackHandler) handleSchedule(ctx context.Context, req *request) *slack.Msg {
	args := req.cmd.Args
	if len(args) == 0 {
		return h.createErrorResponse("Usage: `/cornbot schedule <break, prompt> <args>`")
	}

	what, _ := slackcmd.MatchPrefix(args[0], "prompt", "break")
	switch what {
	case "prompt":
		return h.handleSchedulePrompt(ctx, req, args[1:])
	case "break":
		return h.handleScheduleBreak(ctx, req, args[1:])
	default:
		return h.createErrorResponse("Usage: `/cornbot schedule <break, prompt> <args>`")
	}
}

func (h *SlackHandler) handleSchedulePrompt(ctx context.Context, req *request, args []string) *slack.Msg {
	if len(args) < 2 {
		return h.createErrorResponse("Usage: `/cornbot schedule prompt <HH:MM> <message>`")
	}

	lt, err := domain.ParseLocalTime(args[0])
	if err != nil {
		return h.createErrorResponse("Couldn't parse time; accepts `HH:MM` in 24-hour time.")
	}
	label := lt.String()

	overwritten, err := h.prompts.Schedule(ctx, req.profile, label, strings.Join(args[1:], " "))
	if err != nil {
		return h.errorResponse(err, "Failed to schedule prompt")
	}

	text := fmt.Sprintf("✅ Scheduled prompt at %s daily.", label)
	if overwritten {
		text = fmt.Sprintf("Overwriting %s prompt.\n%s", label, text)
	}
	return h.createResponse(text)
}

func (h *SlackHandler) handleScheduleBreak(ctx context.Context, req *request, args []string) *slack.Msg {
	if len(args) < 2 {
		return h.createErrorResponse("Usage: `/cornbot schedule break <game> <time>`")
	}

	activity, interval, err := slackcmd.ParseBreakArgs(args)
	if err != nil {
		return h.createErrorResponse("Couldn't parse game name or time; accepts `hours` and `minutes` (can be abbreviated).")
	}

	if err := h.accounts.SetBreak(ctx, req.profile, activity, interval); err != nil {
		return h.errorResponse(err, "Failed to schedule break reminders")
	}

	if entity.NormalizeActivity(activity) == domain.DefaultBreakKey {
		return h.createResponse(fmt.Sprintf("✅ Updated default break reminders to every %s.", formatInterval(interval)))
	}
	return h.createResponse(fmt.Sprintf("✅ Scheduled break reminders for `%s` every %s. (%d/%d slots used)",
		entity.NormalizeActivity(activity), formatInterval(interval), req.profile.CustomBreakCount(), domain.MaxCustomBreaks))
}

func (h *SlackHandler) handleDelete(ctx context.Context, req *request) *slack.Msg {
	args := req.cmd.Args
	if len(args) < 2 {
		return h.createErrorResponse("Usage: `/cornbot delete <break, log, prompt> <arg>`")
	}

	what, _ := slackcmd.MatchPrefix(args[0], "prompt", "break", "log")
	switch what {
	case "prompt":
		label, ok := promptLabel(req.profile, args[1])
		if !ok {
			return h.createErrorResponse("Couldn't parse argument as an index number or time.")
		}
		if err := h.prompts.Unschedule(ctx, req.profile, label); err != nil {
			return h.errorResponse(err, "Failed to delete prompt")
		}
		return h.createResponse(fmt.Sprintf("✅ Deleted your daily %s prompt.", label))

	case "break":
		activity := entity.NormalizeActivity(strings.Join(args[1:], " "))
		if err := h.accounts.DeleteBreak(ctx, req.profile, activity); err != nil {
			if errors.Is(err, domain.ErrValidation) && activity == domain.DefaultBreakKey {
				return h.createErrorResponse("Can't delete the default break setting. To turn breaks off, use `/cornbot schedule break default 0m`.")
			}
			return h.errorResponse(err, "Failed to delete break reminders")
		}
		return h.createResponse(fmt.Sprintf("✅ Deleted break reminders for `%s`. (%d/%d slots used)",
			activity, req.profile.CustomBreakCount(), domain.MaxCustomBreaks))

	case "log":
		activity := entity.NormalizeActivity(args[1])
		slots, err := h.ledger.DeleteActivity(ctx, req.profile, activity)
		if err != nil {
			return h.errorResponse(err, "Failed to delete logs")
		}
		return h.createResponse(fmt.Sprintf("✅ Deleted all logs for `%s`. (%d/%d slots used)",
			activity, slots, domain.MaxLogActivities))

	default:
		return h.createErrorResponse("Usage: `/cornbot delete <break, log, prompt> <arg>`")
	}
}

// promptLabel resolves a 1-based index from `list prompts` or a time to the
// profile's HH:MM key.
func promptLabel(p *entity.Profile, arg string) (string, bool) {
	if n, err := strconv.Atoi(arg); err == nil && !strings.Contains(arg, ":") {
		times := p.PromptTimes()
		if n < 1 || n > len(times) {
			return "", false
		}
		return times[n-1], true
	}
	lt, err := domain.ParseLocalTime(arg)
	if err != nil {
		return "", false
	}
	return lt.String(), true
}

var listOptions = []string{"breaks", "logs", "prompts", "timezones"}

func (h *SlackHandler) handleList(ctx context.Context, req *request) *slack.Msg {
	if len(req.cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/cornbot list <breaks, logs, prompts, timezones>`")
	}

	what, _ := slackcmd.MatchPrefix(req.cmd.Args[0], listOptions...)
	switch what {
	case "logs":
		if len(req.cmd.Args) > 1 {
			entries, err := h.ledger.History(ctx, req.profile, req.cmd.Args[1])
			if err != nil {
				return h.errorResponse(err, "Failed to list logs")
			}
			return h.createResponse(formatLogHistory(entries))
		}
		totals, err := h.ledger.Summary(ctx, req.profile)
		if err != nil {
			return h.errorResponse(err, "Failed to list logs")
		}
		return h.createResponse(formatLogSummary(totals))
	case "prompts":
		return h.createResponse(formatPrompts(req.profile))
	case "breaks":
		return h.createResponse(formatBreaks(req.profile))
	case "timezones":
		return h.createResponse(formatTimezones(h.now()))
	default:
		return h.createErrorResponse("Usage: `/cornbot list <breaks, logs, prompts, timezones>`")
	}
}

func (h *SlackHandler) handleReset(ctx context.Context, req *request) *slack.Msg {
	if len(req.cmd.Args) == 0 {
		return h.createErrorResponse("Usage: `/cornbot reset <all, breaks, logs, prompts>`")
	}

	what, _ := slackcmd.MatchPrefix(req.cmd.Args[0], "all", "breaks", "logs", "prompts")
	switch what {
	case "all":
		if err := h.accounts.DeleteAccount(ctx, req.profile); err != nil {
			return h.errorResponse(err, "Failed to delete your data")
		}
		return h.createResponse("✅ All data deleted.\n\nIf you want to set up again, use `/cornbot timezone`.")

	case "breaks":
		if err := h.accounts.ResetBreaks(ctx, req.profile); err != nil {
			return h.errorResponse(err, "Failed to reset break reminders")
		}
		return h.createResponse("✅ All break reminder settings have been reset to default.")

	case "prompts":
		if err := h.accounts.ResetPrompts(ctx, req.profile); err != nil {
			return h.errorResponse(err, "Failed to reset prompts")
		}
		return h.createResponse("✅ All prompts have been reset to default.")

	case "logs":
		if err := h.ledger.Reset(ctx, req.profile); err != nil {
			return h.errorResponse(err, "Failed to reset logs")
		}
		return h.createResponse("✅ All logs have been deleted.")

	default:
		return h.createErrorResponse("Usage: `/cornbot reset <all, breaks, logs, prompts>`")
	}
}

func (h *SlackHandler) handleLog(ctx context.Context, req *request) *slack.Msg {
	activity, d, err := slackcmd.ParseLogArgs(req.cmd.Args)
	if err != nil {
		return h.createErrorResponse("Usage: `/cornbot log <activity> <time>`; time accepts `hours`, `minutes` and `seconds` (can be abbreviated).")
	}

	res, err := h.ledger.Log(ctx, req.profile, activity, d)
	if err != nil {
		return h.errorResponse(err, "Failed to log time")
	}

	var b strings.Builder
	if res.Created {
		fmt.Fprintf(&b, "Created activity `%s`. (%d/%d slots used)\n", res.Activity, res.SlotsUsed, domain.MaxLogActivities)
	}
	fmt.Fprintf(&b, "✅ Logged %s of `%s`, %s today.", formatLogged(res.Added), res.Activity, formatLogged(res.DayTotal))
	if res.Clamped {
		b.WriteString(" A day can't total more than 23:59:59.")
	}
	return h.createResponse(b.String())
}

func (h *SlackHandler) handleMerge(ctx context.Context, req *request) *slack.Msg {
	if len(req.cmd.Args) != 3 {
		return h.createErrorResponse("Usage: `/cornbot merge <activity1> <activity2> <new activity>`")
	}
	args := req.cmd.Args

	slots, err := h.ledger.Merge(ctx, req.profile, args[0], args[1], args[2])
	if err != nil {
		return h.errorResponse(err, "Failed to merge activities")
	}
	return h.createResponse(fmt.Sprintf("✅ Merged `%s` and `%s` into `%s`. (%d/%d slots used)",
		entity.NormalizeActivity(args[0]), entity.NormalizeActivity(args[1]), entity.NormalizeActivity(args[2]),
		slots, domain.MaxLogActivities))
}

func (h *SlackHandler) handleStatus() *slack.Msg {
	return h.createResponse(formatStatus(h.status.CurrentDispatchState(), h.now()))
}

func (h *SlackHandler) handleHelp(req *request) *slack.Msg {
	if len(req.cmd.Args) > 0 {
		return h.createResponse(slackcmd.GetCommandHelp(req.cmd.Args[0], req.registered))
	}
	return h.createResponse(slackcmd.GetHelpText(req.registered))
}

// errorResponse shows validation and lookup failures to the user as they are;
// anything else is logged and reported generically.
func (h *SlackHandler) errorResponse(err error, action string) *slack.Msg {
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		return h.createErrorResponse(fmt.Sprintf("%s: %v", action, err))
	}
	h.log.Error().Err(err).Str("action", action).Msg("command failed")
	return h.createErrorResponse(action + ". Please try again later.")
}

func (h *SlackHandler) createResponse(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
