package main

import (
	"unicode/utf8"

	"github.com/diamondburned/arikawa/v3/discord"
)

const (
	docLimit = 2800

	accentColor = 0x43A047
)

func replyEmbed(title, query, body string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: body,
		Color:       accentColor,
		Footer: &discord.EmbedFooter{
			Text: query,
		},
	}
}

func failEmbed(title, description string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: description,
		Color:       0xEE0000,
	}
}

// truncate caps s at limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n\n*Reply shortened*"
}
