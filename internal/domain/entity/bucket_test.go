package entity

import (
	"testing"
	"time"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourBucket_AddRemove(t *testing.T) {
	b := NewHourBucket(3)

	require.True(t, b.Add("00", 1))
	require.True(t, b.Add("00", 2))
	require.False(t, b.Add("00", 1), "duplicate add must not grow the slot")
	require.True(t, b.Add("30", 1))

	assert.Equal(t, []int64{1, 2}, b.Users("00"))
	assert.Equal(t, []string{"00", "30"}, b.Minutes())

	require.True(t, b.Remove("30", 1))
	_, ok := b.Slots["30"]
	assert.False(t, ok, "empty slot must be pruned")

	require.False(t, b.Remove("30", 1))
	require.False(t, b.Remove("00", 9))

	require.True(t, b.Remove("00", 1))
	require.True(t, b.Remove("00", 2))
	assert.True(t, b.Empty())
}

func TestHourBucket_UsersIsACopy(t *testing.T) {
	b := NewHourBucket(0)
	b.Add("15", 7)

	users := b.Users("15")
	users[0] = 99

	assert.Equal(t, []int64{7}, b.Users("15"))
}

func TestHourBucket_CloneAndEqual(t *testing.T) {
	b := NewHourBucket(5)
	b.Add("10", 1)
	b.Revision = 4

	cp := b.Clone()
	require.True(t, b.Equal(cp))
	assert.Equal(t, int64(4), cp.Revision)

	cp.Add("10", 2)
	assert.False(t, b.Equal(cp))
	assert.Equal(t, []int64{1}, b.Users("10"))

	assert.True(t, NewHourBucket(1).Equal(nil))
}

func TestProfile_Defaults(t *testing.T) {
	p := NewProfile("U1", -7, "")

	assert.Equal(t, map[string]string{domain.DefaultPromptTime: domain.DefaultPromptText}, p.Prompts)
	assert.Equal(t, map[string]int{domain.DefaultBreakKey: domain.DefaultBreakMinutes}, p.Breaks)
	assert.Equal(t, 0, p.CustomBreakCount())
}

func TestProfile_BreakInterval(t *testing.T) {
	p := NewProfile("U1", 0, "hi")
	p.Breaks["league of legends"] = 30
	p.Breaks["chess"] = 0

	assert.Equal(t, 30*time.Minute, p.BreakInterval("League  of Legends"))
	assert.Equal(t, time.Duration(0), p.BreakInterval("chess"))
	assert.Equal(t, 70*time.Minute, p.BreakInterval("minecraft"))
	assert.Equal(t, []string{"default", "chess", "league of legends"}, p.BreakNames())
	assert.Equal(t, 2, p.CustomBreakCount())
}

func TestProfile_Clone(t *testing.T) {
	p := NewProfile("U1", 2, "hello")
	cp := p.Clone()
	cp.Prompts["09:00"] = "x"
	cp.Breaks["x"] = 1

	assert.Len(t, p.Prompts, 1)
	assert.Len(t, p.Breaks, 1)
	assert.Equal(t, []string{"09:00", "20:00"}, cp.PromptTimes())
}

func TestDispatchState_PendingAndClone(t *testing.T) {
	base := time.Date(2026, 10, 15, 3, 0, 0, 0, time.UTC)
	s := DispatchState{
		Hour:   3,
		Mode:   ModeActive,
		Wakes:  []Wake{{At: base, Minute: "00"}, {At: base.Add(30 * time.Minute), Minute: "30"}},
		Slots:  map[string][]int64{"00": {1}, "30": {2}},
		Cursor: base.Add(time.Nanosecond),
	}

	assert.Equal(t, []Wake{{At: base.Add(30 * time.Minute), Minute: "30"}}, s.Pending())

	cp := s.Clone()
	cp.Slots["00"][0] = 42
	cp.Wakes[0].Minute = "xx"
	assert.Equal(t, int64(1), s.Slots["00"][0])
	assert.Equal(t, "00", s.Wakes[0].Minute)
	assert.Equal(t, "active", s.Mode.String())
	assert.Equal(t, "empty", ModeEmpty.String())
}
