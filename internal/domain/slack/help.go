package slack

import "strings"

var commandHelp = map[CommandType]string{
	CmdAbout: "`/cornbot about`\nDisplays info about Cornbot.",
	CmdDelete: "`/cornbot delete <break, log, prompt> <arg>`\nDeletes a prompt, a break reminder setting or a logged activity.\n" +
		"• `/cornbot delete break <game>` - The game falls back to the default setting\n" +
		"• `/cornbot delete log <activity>` - Erases every day logged for the activity and frees its slot\n" +
		"• `/cornbot delete prompt <#, time>` - The numbers shown by `list prompts` can be used instead of a time",
	CmdList: "`/cornbot list <breaks, logs, prompts, timezones>`\nDisplays your prompts, breaks or logs, or all timezones.\n" +
		"• `/cornbot list logs` - Total time per activity\n" +
		"• `/cornbot list logs <activity>` - The last days logged for one activity",
	CmdLog: "`/cornbot log <activity> <time>`\nAdds time to today's total for an activity, like `log reading 1h30m` or `log chess 45 sec`.\n" +
		"Activities are one word, and you can keep up to 10. A day never totals more than 23:59:59.",
	CmdMerge: "`/cornbot merge <activity1> <activity2> <new activity>`\nCombines two logged activities day by day under one name. " +
		"The new name can be one of the two.",
	CmdReset: "`/cornbot reset <all, breaks, logs, prompts>`\nResets some or all of your Cornbot data. " +
		"*Warning:* there is no confirmation, data is erased right away.\n" +
		"`reset all` deletes your data entirely.",
	CmdSchedule: "`/cornbot schedule <break, prompt> <args>`\nSets a prompt or break reminder.\n" +
		"• `/cornbot schedule break <game> <time>` - `<time>` like `1h30m` or `40 minutes`, `0m` turns reminders off\n" +
		"• `/cornbot schedule prompt <HH:MM> <message>` - 24 hour time, no AM or PM",
	CmdStatus:   "`/cornbot status`\nShows the hour the scheduler is working on and its upcoming prompts.",
	CmdTimezone: "`/cornbot timezone <offset>`\nSets or shows your timezone. Leave out `<offset>` to see the current one; `list timezones` shows them all.",
}

// GetHelpText lists the commands available to the caller.
func GetHelpText(registered bool) string {
	if !registered {
		return `*Available Commands:*
• ` + "`/cornbot about`" + ` - Displays info about Cornbot
• ` + "`/cornbot help`" + ` - Displays this message
• ` + "`/cornbot list timezones`" + ` - Displays all timezones
• ` + "`/cornbot timezone`" + ` - Sets or shows your timezone`
	}

	return `*Available Commands:*
• ` + "`/cornbot about`" + ` - Displays info about Cornbot
• ` + "`/cornbot delete`" + ` - Deletes a prompt, break reminder setting or logged activity
• ` + "`/cornbot help`" + ` - Displays this message
• ` + "`/cornbot list`" + ` - Displays your prompts, breaks or logs, or all timezones
• ` + "`/cornbot log <activity> <time>`" + ` - Logs time spent on an activity
• ` + "`/cornbot merge`" + ` - Combines two logged activities
• ` + "`/cornbot reset`" + ` - Resets some or all of your Cornbot data
• ` + "`/cornbot schedule`" + ` - Sets a prompt or break reminder
• ` + "`/cornbot status`" + ` - Shows what the scheduler is doing this hour
• ` + "`/cornbot timezone`" + ` - Sets or shows your timezone

Say ` + "`/cornbot help <command>`" + ` for details on one command.`
}

// GetCommandHelp describes one command; unknown topics get the general help.
func GetCommandHelp(topic string, registered bool) string {
	if !registered {
		return GetHelpText(false)
	}
	verb, ok := MatchPrefix(strings.TrimSpace(topic), commandTypes...)
	if !ok {
		return GetHelpText(true)
	}
	if text, ok := commandHelp[CommandType(verb)]; ok {
		return text
	}
	return GetHelpText(true)
}

func GetAboutText() string {
	return `> Cornbot sends you the daily prompts you schedule, at your local time, and nudges you to take a break when you have been playing for a while. You can also log the time you spend on your activities.
>
> Your timezone, prompts, break settings and logs are stored under your Slack user id and nothing else. ` + "`/cornbot reset all`" + ` deletes all of it.`
}
