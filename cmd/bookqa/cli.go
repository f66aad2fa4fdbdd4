package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/bookqa"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Repository bookqa.Repository
	Library    bookqa.LibraryService
	Answerer   bookqa.Answerer
	Parser     bookqa.ManuscriptParser
	Extractors map[string]bookqa.Extractor
	Converter  bookqa.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string `name:"db" env:"BOOKQA_DB" default:"${db_path}" help:"SQLite database path"`
	Keywords string `env:"BOOKQA_KEYWORDS" help:"YAML file overriding intent keywords"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Ask   AskCmd   `cmd:"" help:"Ask a single question about the book"`
	Chat  ChatCmd  `cmd:"" help:"Start an interactive chat about the book"`
	Serve ServeCmd `cmd:"" help:"Serve the chat endpoint over HTTP"`
	Load  LoadCmd  `cmd:"" help:"Load a Markdown or HTML manuscript, replacing the stored book"`
	Info  InfoCmd  `cmd:"" help:"Show the stored book"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question []string `arg:"" help:"Question to ask about the book"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string  `default:"127.0.0.1:5000" help:"Address to listen on"`
	Rate  float64 `default:"5" help:"Requests per second allowed per client (0 disables)"`
	Burst int     `default:"10" help:"Burst size for the per-client rate limit"`
}

// LoadCmd is the "load" subcommand.
type LoadCmd struct {
	Path      string `arg:"" help:"Manuscript file"`
	Format    string `enum:"auto,markdown,html" default:"auto" help:"Manuscript format (auto, markdown, html)"`
	Extractor string `enum:"goquery,trafilatura,readability" default:"goquery" help:"HTML extractor (goquery, trafilatura, readability)"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}
