package main

import (
	"log"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

func (b *botState) OnCommand(e *gateway.InteractionCreateEvent) {
	if e.GuildID != 0 {
		e.User = &e.Member.User
	}

	// ignore blacklisted users
	if _, ok := b.cfg.Blacklist[discord.Snowflake(e.User.ID)]; ok {
		log.Printf("Ignoring interaction from %s", e.User.Tag())
		return
	}

	switch data := e.Data.(type) {
	case *discord.CommandInteractionData:
		switch data.Name {
		case "coach":
			b.handleCoach(e, data)
		case "analyze":
			b.handleAnalyze(e, data)
		case "tips":
			b.handleTips(e, data)
		case "info":
			b.handleInfo(e, data)
		case "config":
			b.handleConfig(e, data)
		}

	case *discord.ComponentInteractionData:
		if d, ok := interactionMap[data.CustomID]; ok {
			b.handleHide(e, d)
		}
	}
}
