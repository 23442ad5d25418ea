package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alanwells064/cornbot/internal/database"
	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/alanwells064/cornbot/internal/metrics"
	"github.com/alanwells064/cornbot/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockProfileRepo *mocks.MockProfileRepo
	mockBucketRepo  *mocks.MockBucketRepo
	mockMessenger   *mocks.MockMessenger
	mockActivities  *mocks.MockActivitySource
	mockListener    *mocks.MockBucketListener
	mockMetrics     *mocks.MockMetrics
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	profileRepo := mocks.NewMockProfileRepo(ctrl)
	dm.EXPECT().Profile().Return(profileRepo).AnyTimes()

	bucketRepo := mocks.NewMockBucketRepo(ctrl)
	dm.EXPECT().Bucket().Return(bucketRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockProfileRepo: profileRepo,
		mockBucketRepo:  bucketRepo,
		mockMessenger:   mocks.NewMockMessenger(ctrl),
		mockActivities:  mocks.NewMockActivitySource(ctrl),
		mockListener:    mocks.NewMockBucketListener(ctrl),
		mockMetrics:     mocks.NewMockMetrics(ctrl),
	}

	return
}

// expectTransaction runs the transaction body against the same mocked repositories.
func (m allMocks) expectTransaction() *gomock.Call {
	return m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		})
}

func (m allMocks) newIndexer() *promptIndexer {
	return newPromptIndexer(m.mockDataManager, newLockSet(), m.mockListener, m.mockMetrics, zerolog.Nop())
}

type staticTexts struct{}

func (staticTexts) DefaultPrompt() string { return domain.DefaultPromptText }
func (staticTexts) BreakReminder() string { return domain.DefaultBreakReminder }

// recordingListener keeps every published bucket.
type recordingListener struct {
	mu      sync.Mutex
	buckets []*entity.HourBucket
}

func (l *recordingListener) BucketChanged(b *entity.HourBucket) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buckets = append(l.buckets, b.Clone())
}

func (l *recordingListener) hours() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]int, 0, len(l.buckets))
	for _, b := range l.buckets {
		out = append(out, b.Hour)
	}
	return out
}

type sentMessage struct {
	SlackUserID string
	Text        string
}

// recordingMessenger records deliveries; users listed in fail get an error.
type recordingMessenger struct {
	mu   sync.Mutex
	sent []sentMessage
	fail map[string]error
}

func (r *recordingMessenger) SendDirectMessage(_ context.Context, to *entity.Profile, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fail[to.SlackUserID]; err != nil {
		return &domain.DeliveryError{UserID: to.ID, Err: err}
	}
	r.sent = append(r.sent, sentMessage{SlackUserID: to.SlackUserID, Text: text})
	return nil
}

func (r *recordingMessenger) messages() []sentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sentMessage(nil), r.sent...)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(t time.Time) *testClock {
	return &testClock{now: t}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type dbFixture struct {
	dm       contract.DataManager
	listener *recordingListener
	indexer  *promptIndexer
	accounts *accountService
	ledger   *activityLedger
	clock    *testClock
}

func newDBFixture(t *testing.T) dbFixture {
	t.Helper()

	dm := database.NewInstance(database.SetupTestDB(t))
	listener := &recordingListener{}
	locks := newLockSet()
	indexer := newPromptIndexer(dm, locks, listener, metrics.NewNop(), zerolog.Nop())
	clock := newTestClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))

	return dbFixture{
		dm:       dm,
		listener: listener,
		indexer:  indexer,
		accounts: newAccountService(dm, indexer, staticTexts{}, zerolog.Nop()),
		ledger:   newActivityLedger(dm, locks, clock.Now, zerolog.Nop()),
		clock:    clock,
	}
}

func (f dbFixture) register(t *testing.T, slackUserID string, tz int) *entity.Profile {
	t.Helper()
	profile, created, err := f.accounts.SetTimezone(context.Background(), slackUserID, tz)
	require.NoError(t, err)
	require.True(t, created)
	return profile
}

// requireIndexMatches checks that every bucket entry is backed by exactly one
// profile prompt and the other way round.
func requireIndexMatches(t *testing.T, dm contract.DataManager) {
	t.Helper()
	ctx := context.Background()

	profiles, err := dm.Profile().List(ctx)
	require.NoError(t, err)

	expected := make(map[int]map[string]map[int64]bool)
	for _, p := range profiles {
		for key := range p.Prompts {
			lt, err := domain.ParseLocalTime(key)
			require.NoError(t, err)
			h := lt.UTCHour(p.TZ)
			if expected[h] == nil {
				expected[h] = map[string]map[int64]bool{}
			}
			if expected[h][lt.MinuteKey()] == nil {
				expected[h][lt.MinuteKey()] = map[int64]bool{}
			}
			expected[h][lt.MinuteKey()][p.ID] = true
		}
	}

	for h := 0; h < domain.HoursPerDay; h++ {
		bucket, err := dm.Bucket().Load(ctx, h)
		require.NoError(t, err)

		got := map[string]map[int64]bool{}
		for minute, users := range bucket.Slots {
			require.NotEmpty(t, users, "hour %d minute %s kept empty", h, minute)
			got[minute] = map[int64]bool{}
			for _, id := range users {
				require.False(t, got[minute][id], "hour %d minute %s lists user %d twice", h, minute, id)
				got[minute][id] = true
			}
		}

		want := expected[h]
		if want == nil {
			want = map[string]map[int64]bool{}
		}
		require.Equal(t, want, got, "hour %d out of sync", h)
	}
}
