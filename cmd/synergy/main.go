// Copyright 2026 Project Hog
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/projecthog/synergy"
	"github.com/projecthog/synergy/ai"
	"github.com/projecthog/synergy/storage/badger"
	"github.com/projecthog/synergy/vectorstore"
)

func main() {
	// Missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "synergy",
		Usage: "Question answering over indexed Slack channel messages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "openai-key",
				Usage:   "API key for the OpenAI-compatible embedding and chat services",
				EnvVars: []string{"OPENAI_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "turbopuffer-key",
				Usage:   "API key for the vector store",
				EnvVars: []string{"TURBOPUFFER_API_KEY"},
			},
			&cli.StringFlag{
				Name:    "namespace",
				Usage:   "Vector store namespace",
				EnvVars: []string{"TURBOPUFFER_NAMESPACE"},
			},
			&cli.StringFlag{
				Name:    "chat-model",
				Usage:   "Chat model used for answer generation",
				EnvVars: []string{"OPENAI_CHAT_MODEL"},
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the local BadgerDB bookkeeping directory (optional)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Index a Slack export into the vector store",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "messages",
						Aliases:  []string{"m"},
						Usage:    "Path to a Slack export messages JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "channel-id",
						Usage:    "Channel id the messages belong to",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "channel-name",
						Usage: "Channel name, used for attribution in answers",
					},
					&cli.StringFlag{
						Name:  "users",
						Usage: "Path to the export's users.json for author resolution",
					},
				},
			},
			{
				Name:      "ask",
				Usage:     "Ask a question over the indexed messages",
				Action:    askCommand,
				ArgsUsage: "<question>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of rows retrieved per question",
					},
					&cli.BoolFlag{
						Name:  "show-context",
						Usage: "Print the retrieved rows instead of generating an answer",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Show local bookkeeping statistics",
				Action: statsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newAssistant(c *cli.Context, extra ...synergy.AssistantOption) (*synergy.Assistant, error) {
	aiOpts := []ai.ConfigOption{ai.WithAPIKey(c.String("openai-key"))}
	if model := c.String("chat-model"); model != "" {
		aiOpts = append(aiOpts, ai.WithChatModel(model))
	}

	opts := []synergy.AssistantOption{
		synergy.WithAIConfig(ai.NewConfig(aiOpts...)),
		synergy.WithStoreConfig(vectorstore.NewConfig(
			vectorstore.WithAPIKey(c.String("turbopuffer-key")),
			vectorstore.WithNamespace(c.String("namespace")),
		)),
	}
	if db := c.String("db"); db != "" {
		opts = append(opts, synergy.WithDatabasePath(db))
	}
	opts = append(opts, extra...)

	return synergy.NewAssistant(opts...)
}

func indexCommand(c *cli.Context) error {
	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	msgs, err := loadExportMessages(c.String("messages"), c.String("channel-id"), c.String("channel-name"))
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d messages\n", len(msgs))

	dir, err := loadExportDirectory(c.String("users"))
	if err != nil {
		return err
	}

	report, err := assistant.IndexBacklog(c.Context, msgs, dir)
	if report != nil {
		fmt.Printf("Indexed: %d  Skipped: %d  Failed: %d\n",
			report.Indexed(), report.Skipped(), report.Failed())
		for _, res := range report.Results {
			if res.Err != nil {
				fmt.Printf("  failed %s/%s: %v\n", res.ChannelID, res.TS, res.Err)
			}
		}
	}
	return err
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("usage: synergy ask <question>")
	}

	var extra []synergy.AssistantOption
	if topK := c.Int("top-k"); topK > 0 {
		extra = append(extra, synergy.WithTopK(topK))
	}
	assistant, err := newAssistant(c, extra...)
	if err != nil {
		return err
	}
	defer assistant.Close()

	if c.Bool("show-context") {
		rows, err := assistant.Retrieve(c.Context, question)
		if err != nil {
			return err
		}
		for _, row := range rows {
			fmt.Printf("%.4f  %s  %s\n", row.Dist, row.ID, row.Content)
		}
		return nil
	}

	answer, err := assistant.Answer(c.Context, question)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}

// statsCommand reads the local bookkeeping database directly; it needs no
// API keys and makes no network calls.
func statsCommand(c *cli.Context) error {
	if c.String("db") == "" {
		return fmt.Errorf("stats requires --db")
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return err
	}
	defer backend.Close()

	ledger, err := badger.NewLedgerRepository(backend)
	if err != nil {
		return err
	}

	count, err := ledger.CountEntries(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("Indexed documents: %d\n", count)

	checkpoints, err := badger.NewCheckpointRepository(backend).ListCheckpoints(c.Context)
	if err != nil {
		return err
	}
	for _, cp := range checkpoints {
		fmt.Printf("  %s last_ts=%s updated=%s\n",
			cp.ChannelID, cp.LastTS, cp.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
