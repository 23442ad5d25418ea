package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "Should apply defaults",
			env:  map[string]string{"SLACK_BOT_TOKEN": "xoxb-1", "SLACK_SIGNING_SECRET": "s"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "./cornbot.db", cfg.DatabasePath)
				assert.Equal(t, "3000", cfg.Port)
				assert.Equal(t, -7, cfg.HomeUTCOffset)
				assert.Equal(t, 1, cfg.DeliveryRatePerSec)
				assert.Equal(t, 1, cfg.ReadRatePerSec)
				assert.Equal(t, time.Minute, cfg.BreakTick)
				assert.Equal(t, "json", cfg.LogFormat)
			},
		},
		{
			name: "Should read overrides",
			env: map[string]string{
				"SLACK_BOT_TOKEN": "xoxb-1", "SLACK_SIGNING_SECRET": "s",
				"HOME_UTC_OFFSET": "2", "BREAK_TICK": "30s", "LOG_FORMAT": "console",
				"DELIVERY_RATE_PER_SEC": "5", "READ_RATE_PER_SEC": "3",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 5, cfg.DeliveryRatePerSec)
				assert.Equal(t, 3, cfg.ReadRatePerSec)
				assert.Equal(t, 2, cfg.HomeUTCOffset)
				assert.Equal(t, 30*time.Second, cfg.BreakTick)
				assert.Equal(t, "console", cfg.LogFormat)
			},
		},
		{
			name:    "Should require the bot token",
			env:     map[string]string{"SLACK_SIGNING_SECRET": "s"},
			wantErr: true,
		},
		{
			name:    "Should reject an out of range home offset",
			env:     map[string]string{"SLACK_BOT_TOKEN": "x", "SLACK_SIGNING_SECRET": "s", "HOME_UTC_OFFSET": "15"},
			wantErr: true,
		},
		{
			name:    "Should reject a sub-second tick",
			env:     map[string]string{"SLACK_BOT_TOKEN": "x", "SLACK_SIGNING_SECRET": "s", "BREAK_TICK": "500ms"},
			wantErr: true,
		},
		{
			name:    "Should reject a zero delivery rate",
			env:     map[string]string{"SLACK_BOT_TOKEN": "x", "SLACK_SIGNING_SECRET": "s", "DELIVERY_RATE_PER_SEC": "0"},
			wantErr: true,
		},
		{
			name:    "Should reject a zero read rate",
			env:     map[string]string{"SLACK_BOT_TOKEN": "x", "SLACK_SIGNING_SECRET": "s", "READ_RATE_PER_SEC": "0"},
			wantErr: true,
		},
	}

	keys := []string{"SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET", "HOME_UTC_OFFSET", "BREAK_TICK", "LOG_FORMAT", "DELIVERY_RATE_PER_SEC", "READ_RATE_PER_SEC"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range keys {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParseMessages(t *testing.T) {
	t.Run("Should keep defaults for missing keys", func(t *testing.T) {
		msgs, err := ParseMessages([]byte("break_reminder: Stretch!\n"))
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPromptText, msgs.DefaultPrompt)
		assert.Equal(t, "Stretch!", msgs.BreakReminder)
	})

	t.Run("Should accept an empty file", func(t *testing.T) {
		msgs, err := ParseMessages(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultMessages(), msgs)
	})

	t.Run("Should reject unknown keys", func(t *testing.T) {
		_, err := ParseMessages([]byte("welcome: hi\n"))
		assert.Error(t, err)
	})

	t.Run("Should reject blank texts", func(t *testing.T) {
		_, err := ParseMessages([]byte("default_prompt: \"  \"\n"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Should reject a bad log level", func(t *testing.T) {
		_, err := ParseMessages([]byte("log_level: loud\n"))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestLiveMessages(t *testing.T) {
	live := NewLiveMessages(DefaultMessages())
	assert.Equal(t, domain.DefaultBreakReminder, live.BreakReminder())

	live.Set(Messages{DefaultPrompt: "a", BreakReminder: "b"})
	assert.Equal(t, "a", live.DefaultPrompt())
	assert.Equal(t, "b", live.BreakReminder())
}

func TestMessagesWatcher(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	dir := t.TempDir()
	path := filepath.Join(dir, "messages.yaml")
	require.NoError(t, os.WriteFile(path, []byte("break_reminder: first\n"), 0o644))

	msgs, err := LoadMessages(path)
	require.NoError(t, err)
	live := NewLiveMessages(msgs)

	w := NewMessagesWatcher(path, live, zerolog.Nop())

	t.Run("Should keep previous messages on a bad file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("break_reminder: [oops\n"), 0o644))
		assert.False(t, w.Reload())
		assert.Equal(t, "first", live.BreakReminder())
	})

	t.Run("Should apply a valid file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("break_reminder: second\nlog_level: warn\n"), 0o644))
		assert.True(t, w.Reload())
		assert.Equal(t, "second", live.BreakReminder())
		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	})

	t.Run("Should pick up writes while watching", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Watch(ctx) }()

		// rewrite now and then in case the watcher was not registered yet
		polls := 0
		require.Eventually(t, func() bool {
			if polls%10 == 0 {
				_ = os.WriteFile(path, []byte("break_reminder: third\n"), 0o644)
			}
			polls++
			return live.BreakReminder() == "third"
		}, 5*time.Second, 100*time.Millisecond)

		cancel()
		require.NoError(t, <-done)
	})
}
