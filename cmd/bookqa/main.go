package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bookqa"
	"github.com/fwojciec/bookqa/chat"
	"github.com/fwojciec/bookqa/goquery"
	"github.com/fwojciec/bookqa/htmltomarkdown"
	"github.com/fwojciec/bookqa/markdown"
	"github.com/fwojciec/bookqa/nlu"
	"github.com/fwojciec/bookqa/readability"
	bqslog "github.com/fwojciec/bookqa/slog"
	"github.com/fwojciec/bookqa/sqlite"
	"github.com/fwojciec/bookqa/trafilatura"
	"github.com/fwojciec/bookqa/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path, overridden by --db or BOOKQA_DB.
	DBPath string

	// Input for interactive commands. Set before calling Run().
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	Repository bookqa.Repository
	Library    bookqa.LibraryService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookqa"),
		kong.Description("Ask questions about a book."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"db_path": m.DBPath},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bookqa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(bqslog.NewContextHandler(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	deps.Logger = logger

	keywords, err := yaml.LoadKeywords(cli.Keywords)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set BOOKQA_KEYWORDS to a valid keyword file or unset it")
		return fmt.Errorf("failed to load keywords: %w", err)
	}

	if cli.DB != ":memory:" {
		_ = os.MkdirAll(filepath.Dir(cli.DB), 0o755)
	}
	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BOOKQA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	m.Repository = bqslog.NewLoggingRepository(sqlite.NewRepository(m.DB), logger)
	m.Library = bqslog.NewLoggingLibraryService(sqlite.NewLibraryService(m.DB), logger)

	dispatcher := chat.NewDispatcher(nlu.NewExtractor(keywords), m.Repository, chat.WithLogger(logger))

	deps.Repository = m.Repository
	deps.Library = m.Library
	deps.Answerer = bqslog.NewLoggingAnswerer(dispatcher, logger)
	deps.Parser = markdown.NewParser()
	deps.Extractors = map[string]bookqa.Extractor{
		"goquery":     goquery.NewExtractor(),
		"trafilatura": trafilatura.NewExtractor(),
		"readability": readability.NewExtractor(),
	}
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bookqa.db"
	}
	return filepath.Join(home, ".bookqa", "bookqa.db")
}
