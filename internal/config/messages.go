package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"
)

// Messages are the operator-editable texts, read from an optional YAML file:
//
//	default_prompt: "What's something you did today that you're proud of?"
//	break_reminder: "Time for a break?"
//	log_level: debug
type Messages struct {
	DefaultPrompt string `yaml:"default_prompt"`
	BreakReminder string `yaml:"break_reminder"`
	LogLevel      string `yaml:"log_level"`
}

func DefaultMessages() Messages {
	return Messages{
		DefaultPrompt: domain.DefaultPromptText,
		BreakReminder: domain.DefaultBreakReminder,
	}
}

// ParseMessages decodes b over the defaults. Unknown keys are rejected.
func ParseMessages(b []byte) (Messages, error) {
	msgs := DefaultMessages()

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&msgs); err != nil && !errors.Is(err, io.EOF) {
		return Messages{}, fmt.Errorf("failed to decode messages: %w", err)
	}

	if err := msgs.Validate(); err != nil {
		return Messages{}, err
	}
	return msgs, nil
}

func LoadMessages(path string) (Messages, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Messages{}, fmt.Errorf("failed to read messages file: %w", err)
	}
	return ParseMessages(b)
}

func (m Messages) Validate() error {
	if strings.TrimSpace(m.DefaultPrompt) == "" {
		return domain.NewValidationError("default_prompt", "must not be empty")
	}
	if len(m.DefaultPrompt) > domain.MaxPromptTextLen {
		return domain.NewValidationError("default_prompt", "longer than %d characters", domain.MaxPromptTextLen)
	}
	if strings.TrimSpace(m.BreakReminder) == "" {
		return domain.NewValidationError("break_reminder", "must not be empty")
	}
	if m.LogLevel != "" {
		if _, err := zerolog.ParseLevel(m.LogLevel); err != nil {
			return domain.NewValidationError("log_level", "%v", err)
		}
	}
	return nil
}

// LiveMessages serves the current Messages and can be swapped at runtime.
type LiveMessages struct {
	v atomic.Pointer[Messages]
}

func NewLiveMessages(m Messages) *LiveMessages {
	l := &LiveMessages{}
	l.Set(m)
	return l
}

func (l *LiveMessages) Set(m Messages) {
	l.v.Store(&m)
}

func (l *LiveMessages) Get() Messages {
	return *l.v.Load()
}

func (l *LiveMessages) DefaultPrompt() string { return l.v.Load().DefaultPrompt }
func (l *LiveMessages) BreakReminder() string { return l.v.Load().BreakReminder }
