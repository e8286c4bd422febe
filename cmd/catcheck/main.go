package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/kpawlak/catcheck"
	"github.com/kpawlak/catcheck/goquery"
	"github.com/kpawlak/catcheck/inventory"
	"github.com/kpawlak/catcheck/markers"
	"github.com/kpawlak/catcheck/simplify"
	catslog "github.com/kpawlak/catcheck/slog"
	"github.com/kpawlak/catcheck/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		// Validation mismatches exit with a distinct status so callers
		// can tell "catalogs differ" from "the tool broke".
		if catcheck.ErrorCode(err) == catcheck.ECONFLICT {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for run history. Set before calling Run().
	DBPath string

	// SQLite database used by the run history service.
	DB *sqlite.DB

	// RunService for end-to-end testing.
	RunService catcheck.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("catcheck"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'catcheck --help' to see available commands")
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

	deps.Inventory = inventory.NewReader()

	if cmd == "simplify" {
		var transform catcheck.Simplifier = simplify.NewSimplifier()
		if cli.Simplify.Verbose {
			transform = catslog.NewLoggingSimplifier(transform, newLogger(stderr))
		}
		deps.Simplifier = transform
	}

	if cmd == "validate" {
		var extractor catcheck.CatalogExtractor
		if cli.Validate.DOM {
			extractor = goquery.NewExtractor()
		} else {
			extractor = markers.NewExtractor()
		}
		if cli.Validate.Verbose {
			extractor = catslog.NewLoggingExtractor(extractor, newLogger(stderr))
		}
		deps.Extractor = extractor
	}

	// Run history: required for "runs", best-effort for "validate".
	if cmd == "validate" || cmd == "runs" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			m.DB = nil
			if cmd == "runs" {
				fmt.Fprintf(stderr, "Hint: Set CATCHECK_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			fmt.Fprintf(stderr, "warning: run history unavailable: %s\n", err)
		}
		if m.DB != nil {
			defer m.Close()
			m.RunService = sqlite.NewRunService(m.DB)
			deps.DB = m.DB
			deps.Runs = m.RunService
		}
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, nil))
}

func defaultDBPath() string {
	if path := os.Getenv("CATCHECK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "catcheck.db"
	}
	dir := filepath.Join(home, ".catcheck")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "catcheck.db")
}
