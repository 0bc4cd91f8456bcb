package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/wordbook/internal/config"
	"github.com/five82/wordbook/internal/corpus"
	"github.com/five82/wordbook/internal/prefs"
	"github.com/five82/wordbook/internal/ui"
	"github.com/five82/wordbook/internal/words"
)

// Options configure the wordbook application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/wordbook/prefs.toml
	WordsPath  string // overrides words_file from the config
	Seed       uint64 // zero draws unseeded samples
}

// Run boots the wordbook TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	uiOpts, err := prepare(ctx, cfg, opts)
	if err != nil {
		return err
	}
	return ui.Run(uiOpts)
}

// prepare loads the corpus and preferences and assembles the UI options.
func prepare(ctx context.Context, cfg config.Config, opts Options) (ui.Options, error) {
	src, origin, err := corpusSource(cfg, opts)
	if err != nil {
		return ui.Options{}, err
	}
	c, err := src.Load()
	if err != nil {
		return ui.Options{}, fmt.Errorf("load words from %s: %w", origin, err)
	}
	log.Printf("loaded %d words from %s", c.Len(), origin)

	userPrefs := prefs.Load(opts.PrefsPath)

	sampler := words.NewSampler(nil)
	if opts.Seed != 0 {
		sampler = words.NewSeededSampler(opts.Seed)
	}

	return ui.Options{
		Context:      ctx,
		Corpus:       c,
		Sampler:      sampler,
		SearchPrefix: cfg.SearchPrefix,
		GridColumns:  cfg.GridColumns,
		ThemeName:    userPrefs.Theme,
		PrefsPath:    opts.PrefsPath,
	}, nil
}

// corpusSource picks the word list: the -words flag, then words_file, then
// the built-in list.
func corpusSource(cfg config.Config, opts Options) (corpus.Source, string, error) {
	if path := strings.TrimSpace(opts.WordsPath); path != "" {
		resolved, err := config.ExpandPath(path)
		if err != nil {
			return nil, "", fmt.Errorf("words path: %w", err)
		}
		return corpus.File(resolved), resolved, nil
	}
	if cfg.WordsFile != "" {
		return corpus.File(cfg.WordsFile), cfg.WordsFile, nil
	}
	return corpus.Embedded(), "built-in list", nil
}

// setupLogging sends the standard logger to path. The terminal belongs to the
// UI, so without a log file output is discarded.
func setupLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "wordbook")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
