package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdTimezone CommandType = "timezone"
	CmdSchedule CommandType = "schedule"
	CmdDelete   CommandType = "delete"
	CmdList     CommandType = "list"
	CmdReset    CommandType = "reset"
	CmdStatus   CommandType = "status"
	CmdLog      CommandType = "log"
	CmdMerge    CommandType = "merge"
	CmdHelp     CommandType = "help"
	CmdAbout    CommandType = "about"
)

var commandTypes = []string{
	string(CmdTimezone),
	string(CmdSchedule),
	string(CmdDelete),
	string(CmdList),
	string(CmdReset),
	string(CmdStatus),
	string(CmdLog),
	string(CmdMerge),
	string(CmdHelp),
	string(CmdAbout),
}

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand resolves the verb of a slash command. Verbs may be shortened to
// any unambiguous prefix: "sch" is schedule, "s" is rejected.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	verb, ok := MatchPrefix(parts[0], commandTypes...)
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	cmd := &Command{
		Type: CommandType(verb),
		Raw:  text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}
	return cmd, nil
}

// MatchPrefix returns the option word abbreviates. An exact match wins; otherwise
// the prefix must select exactly one option.
func MatchPrefix(word string, options ...string) (string, bool) {
	word = strings.ToLower(word)
	if word == "" {
		return "", false
	}

	match := ""
	for _, opt := range options {
		if opt == word {
			return opt, true
		}
		if strings.HasPrefix(opt, word) {
			if match != "" {
				return "", false
			}
			match = opt
		}
	}
	return match, match != ""
}
