package main

import (
	"context"
	"flag"
	"log"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/pkg/errors"

	"github.com/fitmax/coachmax/arli"
	"github.com/fitmax/coachmax/articles"
)

type botState struct {
	cfg   configuration
	appID discord.AppID
	coach *arli.Client
	state *state.State

	articles []articles.Article
}

var update bool

func main() {
	updateVar := flag.Bool("update", false, "update all commands, regardless of if they are present or not")
	flag.Parse()
	update = *updateVar

	cfg := config()
	if cfg.Token == "" {
		log.Fatal("no token provided")
	}
	if cfg.Arli.Key == "" {
		log.Println("no arli key configured, coach replies will use canned fallbacks")
	}

	s, err := state.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatalln(errors.Wrap(err, "could not open session"))
	}

	coach := arli.New(cfg.Arli.Key)
	coach.Model = cfg.Arli.Model

	b := botState{
		cfg:   cfg,
		coach: coach,
		state: s,
	}

	s.AddHandler(b.OnCommand)
	s.AddIntents(gateway.IntentGuilds)

	if err := s.Open(context.Background()); err != nil {
		log.Fatalln("failed to open:", err)
	}
	defer s.Close()

	log.Println("Gateway connection established.")
	me, err := s.Me()
	if err != nil {
		log.Println("Could not get me:", err)
		return
	}
	b.appID = discord.AppID(me.ID)

	log.Println("Logged in as ", me.Tag())

	if err := loadCommands(s, me.ID); err != nil {
		log.Println("Could not load commands:", err)
		return
	}

	go b.gcInteractionData()
	go b.updateArticles()
	select {}
}

func loadCommands(s *state.State, me discord.UserID) error {
	appID := discord.AppID(me)
	registered, err := s.Commands(appID)
	if err != nil {
		return err
	}

	registeredMap := map[string]bool{}
	if !update {
		for _, c := range registered {
			registeredMap[c.Name] = true
			log.Println("Registered command:", c.Name)
		}
	}

	for _, c := range commands {
		if registeredMap[c.Name] {
			continue
		}
		var err error
		if _, err = s.CreateCommand(appID, c); err != nil {
			return errors.Wrap(err, "could not register "+c.Name)
		}
		log.Println("Created command:", c.Name)
	}

	return nil
}

var commands = []api.CreateCommandData{
	{
		Name:        "coach",
		Description: "Ask Coach Max a nutrition or fitness question",
		Options: []discord.CommandOption{
			{
				Name:        "question",
				Description: "What do you want to know?",
				Type:        discord.StringOption,
				Required:    true,
			},
		},
	},
	{
		Name:        "analyze",
		Description: "Get a nutrition breakdown of a meal",
		Options: []discord.CommandOption{
			{
				Name:        "meal",
				Description: "Describe the meal (i.e 2 eggs, toast, orange juice)",
				Type:        discord.StringOption,
				Required:    true,
			},
		},
	},
	{
		Name:        "tips",
		Description: "Search nutrition articles",
		Options: []discord.CommandOption{
			{
				Name:        "query",
				Description: "Search query",
				Type:        discord.StringOption,
				Required:    true,
			},
		},
	},
	{
		Name:        "info",
		Description: "Generic Bot Info",
	},
	{
		Name:                "config",
		Description:         "Configure Coach Max",
		NoDefaultPermission: true,
		Options: []discord.CommandOption{
			{
				Name:        "user",
				Description: "Manage user access to Coach Max",
				Type:        discord.SubcommandGroupOption,
				Options: []discord.CommandOption{
					{
						Name:        "ignore",
						Description: "Ignore commands and actions from a user",
						Type:        discord.SubcommandOption,
						Options: []discord.CommandOption{
							{
								Name:        "user",
								Description: "User to ignore",
								Type:        discord.UserOption,
								Required:    true,
							},
						},
					},
					{
						Name:        "unignore",
						Description: "Stop ignoring commands and actions from a user",
						Type:        discord.SubcommandOption,
						Options: []discord.CommandOption{
							{
								Name:        "user",
								Description: "User to unignore",
								Type:        discord.UserOption,
								Required:    true,
							},
						},
					},
					{
						Name:        "ignorelist",
						Description: "List all ignored users",
						Type:        discord.SubcommandOption,
					},
				},
			},
		},
	},
}
