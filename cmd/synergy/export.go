package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/projecthog/synergy/core"
	"github.com/projecthog/synergy/ingestion"
)

// exportMessage is one entry of a Slack export messages file. Only the
// fields needed for indexing are decoded.
type exportMessage struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	User    string `json:"user"`
	Text    string `json:"text"`
	TS      string `json:"ts"`
	Team    string `json:"team"`
}

// exportUser is one entry of a Slack export users.json file.
type exportUser struct {
	ID      string `json:"id"`
	Profile struct {
		DisplayName string `json:"display_name"`
		RealName    string `json:"real_name"`
		Email       string `json:"email"`
	} `json:"profile"`
}

// loadExportMessages reads a Slack export messages file and converts it to
// source messages for the given channel. Join/leave notices and other
// subtyped system messages are dropped.
func loadExportMessages(path, channelID, channelName string) ([]core.SourceMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read messages file: %w", err)
	}

	var raw []exportMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse messages file %s: %w", path, err)
	}

	msgs := make([]core.SourceMessage, 0, len(raw))
	for _, m := range raw {
		if m.Type != "message" || m.Subtype != "" {
			continue
		}
		msgs = append(msgs, core.SourceMessage{
			Text:        m.Text,
			UserID:      m.User,
			ChannelID:   channelID,
			ChannelName: channelName,
			TS:          m.TS,
			TeamID:      m.Team,
		})
	}
	return msgs, nil
}

// exportDirectory resolves authors from an export's users.json. An empty
// directory is valid: every lookup misses and indexing falls back to the
// placeholder author name.
type exportDirectory struct {
	users map[string]*ingestion.Profile
}

var _ ingestion.Directory = (*exportDirectory)(nil)

// loadExportDirectory builds a Directory from a users.json file. An empty
// path yields an empty directory.
func loadExportDirectory(path string) (*exportDirectory, error) {
	dir := &exportDirectory{users: make(map[string]*ingestion.Profile)}
	if path == "" {
		return dir, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var raw []exportUser
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse users file %s: %w", path, err)
	}

	for _, u := range raw {
		dir.users[u.ID] = &ingestion.Profile{
			DisplayName: u.Profile.DisplayName,
			RealName:    u.Profile.RealName,
			Email:       u.Profile.Email,
		}
	}
	return dir, nil
}

// Lookup returns the profile for a user id, or nil when the export does not
// know the user.
func (d *exportDirectory) Lookup(ctx context.Context, userID string) (*ingestion.Profile, error) {
	return d.users[userID], nil
}
