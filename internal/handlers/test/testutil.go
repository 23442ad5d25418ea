package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alanwells064/cornbot/internal/handlers"
	"github.com/alanwells064/cornbot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	PromptServiceMock  *mocks.MockPromptService
	AccountServiceMock *mocks.MockAccountService
	StatusServiceMock  *mocks.MockStatusService
	LedgerServiceMock  *mocks.MockLedgerService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		PromptServiceMock:  mocks.NewMockPromptService(ctrl),
		AccountServiceMock: mocks.NewMockAccountService(ctrl),
		StatusServiceMock:  mocks.NewMockStatusService(ctrl),
		LedgerServiceMock:  mocks.NewMockLedgerService(ctrl),
	}

	handler = handlers.New(m.PromptServiceMock, m.AccountServiceMock, m.StatusServiceMock, m.LedgerServiceMock, SigningSecret, zerolog.Nop())

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, text, userID string) *http.Request {
	t.Helper()
	return createRequest(t, text, userID, SigningSecret)
}

// CreateUnsignedRequest signs with the wrong secret.
func CreateUnsignedRequest(t *testing.T, text, userID string) *http.Request {
	t.Helper()
	return createRequest(t, text, userID, "not-the-secret")
}

func createRequest(t *testing.T, text, userID, secret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {"D123456789"},
		"channel_name": {"directmessage"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {"/cornbot"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(secret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
