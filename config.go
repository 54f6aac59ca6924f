package main

import (
	"encoding/json"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"

	"github.com/fitmax/coachmax/arli"
)

type configuration struct {
	Token       string             `json:"token"`
	Arli        arliConfig         `json:"arli"`
	Permissions commandPermissions `json:"permissions"`
	Blacklist   snowflakeLookup    `json:"blacklist"`
}

type arliConfig struct {
	Key   string `json:"key"`
	Model string `json:"model"`
}

type commandPermissions struct {
	// Config maps a guild to the roles that can run /config and that
	// protect their holders from being ignored.
	Config map[discord.GuildID]snowflakeLookup `json:"config"`
}

// snowflakeLookup is a set of snowflakes stored as a JSON string array.
type snowflakeLookup map[discord.Snowflake]struct{}

func (l snowflakeLookup) MarshalJSON() ([]byte, error) {
	ids := make([]discord.Snowflake, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = strconv.FormatInt(int64(id), 10)
	}
	return json.Marshal(strs)
}

func (l *snowflakeLookup) UnmarshalJSON(b []byte) error {
	var ids []discord.Snowflake
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	m := make(snowflakeLookup, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	*l = m
	return nil
}

func config() configuration {
	fileBytes, err := os.ReadFile("config.json")
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not open config"))
	}
	cfg, err := configFromBytes(fileBytes)
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not parse config"))
	}
	return cfg
}

func configFromBytes(b []byte) (configuration, error) {
	var cfg configuration
	if err := json.Unmarshal(b, &cfg); err != nil {
		return configuration{}, err
	}
	if cfg.Blacklist == nil {
		cfg.Blacklist = snowflakeLookup{}
	}
	if cfg.Permissions.Config == nil {
		cfg.Permissions.Config = map[discord.GuildID]snowflakeLookup{}
	}
	if cfg.Arli.Model == "" {
		cfg.Arli.Model = arli.DefaultModel
	}
	return cfg, nil
}

func saveConfig(cfg configuration) error {
	b, err := json.MarshalIndent(cfg, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile("config.json", b, 0o644)
}
