package main

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"

	"github.com/fitmax/coachmax/arli"
	"github.com/fitmax/coachmax/richtext"
)

const (
	notOwner   = "Only the person who asked can do this."
	askTimeout = time.Minute
)

type interactionData struct {
	id      string
	created time.Time
	token   string
	userID  discord.UserID
	query   string
}

var (
	interactionMap = map[string]*interactionData{}
	mu             sync.Mutex
)

func (b *botState) gcInteractionData() {
	ticker := time.NewTicker(time.Minute * 5)
	for range ticker.C {
		now := time.Now()
		for _, data := range interactionMap {
			if !now.After(data.created.Add(time.Minute * 5)) {
				continue
			}

			mu.Lock()
			delete(interactionMap, data.id)
			mu.Unlock()

			if data.token == "" {
				continue
			}

			b.state.EditInteractionResponse(b.appID, data.token, api.EditInteractionResponseData{
				Components: &[]discord.Component{},
			})
		}
	}
}

func (b *botState) handleCoach(e *gateway.InteractionCreateEvent, d *discord.CommandInteractionData) {
	// only arg and required, always present
	question := d.Options[0].String()
	log.Printf("%s used coach(%q)", e.User.Tag(), question)

	b.reply(e, "Coach Max", question, func(ctx context.Context) (string, error) {
		return b.coach.Ask(ctx, question)
	})
}

func (b *botState) handleAnalyze(e *gateway.InteractionCreateEvent, d *discord.CommandInteractionData) {
	meal := d.Options[0].String()
	log.Printf("%s used analyze(%q)", e.User.Tag(), meal)

	b.reply(e, "Meal Analysis", meal, func(ctx context.Context) (string, error) {
		return b.coach.Analyze(ctx, meal)
	})
}

// reply defers the interaction, asks the model, formats the raw reply
// into a document and edits the final embed in. Model failures degrade
// to a canned coach response rather than an error message.
func (b *botState) reply(e *gateway.InteractionCreateEvent, title, query string, ask func(context.Context) (string, error)) {
	resp := api.InteractionResponse{Type: api.DeferredMessageInteractionWithSource}
	if err := b.state.RespondInteraction(e.ID, e.Token, resp); err != nil {
		log.Printf("could not send interaction callback: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	raw, err := ask(ctx)
	if err != nil {
		log.Printf("coach request by %s(%q) failed: %v", e.User.Tag(), query, err)
		raw = arli.Fallback()
	}

	doc := richtext.Format(raw, richtext.Style{})
	body := truncate(doc.Markdown(), docLimit)

	mu.Lock()
	interactionMap[e.ID.String()] = &interactionData{
		id:      e.ID.String(),
		created: time.Now(),
		token:   e.Token,
		userID:  e.User.ID,
		query:   query,
	}
	mu.Unlock()

	if _, err := b.state.EditInteractionResponse(e.AppID, e.Token, api.EditInteractionResponseData{
		Embeds: &[]discord.Embed{replyEmbed(title, query, body)},
		Components: &[]discord.Component{
			&discord.ActionRowComponent{
				Components: []discord.Component{buttonComponent(e.ID.String())},
			},
		},
	}); err != nil {
		log.Printf("could not edit interaction response: %v", err)
	}
}

func (b *botState) handleHide(e *gateway.InteractionCreateEvent, data *interactionData) {
	if e.User.ID != data.userID {
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  api.EphemeralResponse,
				Embeds: &[]discord.Embed{failEmbed("Error", notOwner)},
			},
		})
		return
	}

	mu.Lock()
	delete(interactionMap, data.id)
	mu.Unlock()

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.UpdateMessage,
		Data: &api.InteractionResponseData{
			Embeds:     &[]discord.Embed{},
			Components: &[]discord.Component{},
		},
	})
}

func buttonComponent(id string) *discord.ButtonComponent {
	return &discord.ButtonComponent{
		CustomID: id,
		Label:    "Hide",
		Emoji:    &discord.ButtonEmoji{Name: "🇽"},
		Style:    discord.SecondaryButton,
	}
}
