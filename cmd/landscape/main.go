// Copyright 2025 Poiesic Systems
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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/poiesic/landscape"
	"github.com/poiesic/landscape/ai"
	"github.com/poiesic/landscape/core"
	"github.com/poiesic/landscape/report"
	"github.com/poiesic/landscape/scoring"
	"github.com/poiesic/landscape/search"
)

func main() {
	app := &cli.App{
		Name:  "landscape",
		Usage: "Research landscape verdicts for defense research topics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "Analyze the research landscape for a topic",
				Action: analyzeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "topic-file",
						Aliases: []string{"f"},
						Usage:   "Path to a YAML topic file (title, description, keywords, branch)",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Topic title (overrides the topic file)",
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Topic description",
					},
					&cli.StringFlag{
						Name:  "keywords",
						Usage: "Comma-separated topic keywords",
					},
					&cli.StringFlag{
						Name:  "branch",
						Usage: "Requesting branch (navy, army, air_force, darpa, dod, marine_corps, space_force)",
						Value: "navy",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory (empty for in-memory)",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "llm-host",
						Usage: "Narrative service host URL (defaults to embedding-host)",
					},
					&cli.StringFlag{
						Name:  "llm-model",
						Usage: "Narrative model name",
						Value: "qwen2.5:3b",
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Minimum fused similarity score for the comparison set",
						Value: scoring.DefaultMinScore,
					},
					&cli.StringFlag{
						Name:  "offline",
						Usage: "Analyze against a JSON candidate file instead of the live endpoint",
					},
					&cli.BoolFlag{
						Name:  "no-narrative",
						Usage: "Skip narrative generation",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the Markdown report to a file (default stdout)",
					},
					&cli.StringFlag{
						Name:  "map",
						Usage: "Write the landscape map JSON to a file",
					},
				},
			},
			{
				Name:  "reports",
				Usage: "Inspect archived assessments",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List archived assessments, newest first",
						Action: reportsListCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to BadgerDB database directory",
								Required: true,
							},
							&cli.IntFlag{
								Name:  "limit",
								Usage: "Maximum number of assessments to list (0 for all)",
								Value: 20,
							},
						},
					},
					{
						Name:      "show",
						Usage:     "Show one archived assessment by ID",
						ArgsUsage: "<id>",
						Action:    reportsShowCommand,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "db",
								Aliases:  []string{"d"},
								Usage:    "Path to BadgerDB database directory",
								Required: true,
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// topicFile is the YAML shape of a topic description file.
type topicFile struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Branch      string   `yaml:"branch"`
}

func loadTopic(c *cli.Context) (*core.Topic, error) {
	topic := &core.Topic{}

	if path := c.String("topic-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading topic file: %w", err)
		}
		var tf topicFile
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, fmt.Errorf("parsing topic file: %w", err)
		}
		topic.Title = tf.Title
		topic.Description = tf.Description
		topic.Keywords = tf.Keywords
		topic.Branch = core.Branch(tf.Branch)
	}

	// Flags override the file
	if title := c.String("title"); title != "" {
		topic.Title = title
	}
	if description := c.String("description"); description != "" {
		topic.Description = description
	}
	if keywords := c.String("keywords"); keywords != "" {
		topic.Keywords = topic.Keywords[:0]
		for _, keyword := range strings.Split(keywords, ",") {
			keyword = strings.TrimSpace(keyword)
			if keyword != "" {
				topic.Keywords = append(topic.Keywords, keyword)
			}
		}
	}
	if c.IsSet("branch") || topic.Branch == "" {
		topic.Branch = core.Branch(c.String("branch"))
	}

	if err := core.ValidateTopic(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func analyzeCommand(c *cli.Context) error {
	ctx := context.Background()

	topic, err := loadTopic(c)
	if err != nil {
		return err
	}

	embeddingHost := c.String("embedding-host")
	llmHost := c.String("llm-host")
	if llmHost == "" {
		llmHost = embeddingHost
	}
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(embeddingHost),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithNarratorHost(llmHost),
		ai.WithNarratorModel(c.String("llm-model")),
	)

	opts := []landscape.AnalyzerOption{
		landscape.WithAIConfig(aiConfig),
		landscape.WithRelevanceThreshold(c.Float64("threshold")),
	}
	if path := c.String("offline"); path != "" {
		source, err := search.NewFileSource(path)
		if err != nil {
			return err
		}
		opts = append(opts, landscape.WithSource(source))
	}

	analyzer, err := landscape.NewAnalyzer(c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}
	defer analyzer.Close()

	run, err := analyzer.Analyze(ctx, topic, !c.Bool("no-narrative"))
	if err != nil {
		return err
	}

	markdown := report.RenderMarkdown(run)
	if path := c.String("output"); path != "" {
		if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
	} else {
		fmt.Print(markdown)
	}

	if path := c.String("map"); path != "" {
		points := report.LandscapeMap(run)
		data, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing landscape map: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Landscape map written to %s\n", path)
	}

	return nil
}

func reportsListCommand(c *cli.Context) error {
	ctx := context.Background()

	analyzer, err := landscape.NewAnalyzer(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer analyzer.Close()

	records, err := analyzer.Assessments().ListAssessments(ctx, c.Int("limit"))
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No archived assessments.")
		return nil
	}

	for _, record := range records {
		fmt.Printf("%d\t%s\t%s\n",
			record.Id, record.CreatedAt.Format("2006-01-02 15:04"), record.TopicTitle)
	}
	return nil
}

func reportsShowCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one assessment ID argument")
	}
	id, err := strconv.ParseUint(c.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid assessment ID %q: %w", c.Args().First(), err)
	}

	analyzer, err := landscape.NewAnalyzer(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer analyzer.Close()

	record, err := analyzer.Assessments().GetAssessment(ctx, core.ID(id))
	if err != nil {
		return err
	}

	fmt.Printf("Topic: %s\n", record.TopicTitle)
	fmt.Printf("Created: %s\n\n", record.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC"))

	// Pretty-print the archived payload
	var assessment core.Assessment
	if err := json.Unmarshal([]byte(record.Payload), &assessment); err != nil {
		fmt.Println(record.Payload)
		return nil
	}
	pretty, err := json.MarshalIndent(assessment, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
