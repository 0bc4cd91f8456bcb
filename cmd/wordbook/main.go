package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/wordbook/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	wordsPath := flag.String("words", "", "word list file, one word per line (optional, defaults to the built-in list)")
	seed := flag.Uint64("seed", 0, "seed for word sampling (optional, 0 draws a new sample each run)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		WordsPath:  *wordsPath,
		Seed:       *seed,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "wordbook: %v\n", err)
		return 1
	}
	return 0
}
