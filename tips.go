package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/fitmax/coachmax/articles"
)

func (b *botState) updateArticles() {
	refresh := func() {
		all, err := articles.Articles(http.DefaultClient)
		if err != nil {
			log.Printf("Error querying articles: %v", err)
			return
		}
		b.articles = all
	}
	refresh()

	ticker := time.NewTicker(time.Hour * 24)
	for range ticker.C {
		refresh()
	}
}

func (b *botState) handleTips(e *gateway.InteractionCreateEvent, d *discord.CommandInteractionData) {
	// only arg and required, always present
	query := d.Options[0].String()

	log.Printf("%s used tips(%q)", e.User.Tag(), query)

	if len(query) < 3 || len(query) > 20 {
		b.respondEphemeral(e, failEmbed("Error", "Your query must be between 3 and 20 characters."))
		return
	}

	matches := b.matchArticles(query)
	if len(matches) == 0 {
		b.respondEphemeral(e, failEmbed("Error", fmt.Sprintf("No results found for %q", query)))
		return
	}

	if len(matches) == 1 {
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Embeds: &[]discord.Embed{matches[0].Display()},
			},
		})
		return
	}

	var fields []discord.EmbedField
	for _, match := range matches {
		fields = append(fields, discord.EmbedField{
			Name:  fmt.Sprintf("%s, %s", match.Title, match.Date),
			Value: fmt.Sprintf("*%s*\n%s\n%s", match.Authors, match.Summary, match.URL),
		})
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds: &[]discord.Embed{
				{
					Title:       fmt.Sprintf("Tips: %d Results", len(matches)),
					Description: fmt.Sprintf("Search Term: %q", query),
					Fields:      fields,
					Color:       accentColor,
				},
			},
		},
	})
}

func (b *botState) matchArticles(query string) []articles.Article {
	var fromTitle, fromDesc []articles.Article

	for _, a := range b.articles {
		switch a.Match(query) {
		case articles.MatchExact:
			return []articles.Article{a}
		case articles.MatchTitle:
			fromTitle = append(fromTitle, a)
		case articles.MatchDesc:
			fromDesc = append(fromDesc, a)
		}
	}

	all := append(fromTitle, fromDesc...)
	if len(all) > 5 {
		all = all[:5]
	}
	return all
}

func (b *botState) respondEphemeral(e *gateway.InteractionCreateEvent, embed discord.Embed) {
	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags:  api.EphemeralResponse,
			Embeds: &[]discord.Embed{embed},
		},
	})
}
