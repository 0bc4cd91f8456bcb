// Package search turns a word into a web search and hands it to the desktop.
package search

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// DefaultPrefix is prepended to a word to build its search URL.
const DefaultPrefix = "https://www.google.com/search?q="

// URL joins prefix and word. The word is not escaped.
func URL(prefix, word string) string {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}
	return prefix + word
}

// Opener launches a URL outside the program.
type Opener interface {
	Open(url string) error
}

// Browser opens URLs with the platform's default handler. Start is swapped in
// tests; nil runs the command.
type Browser struct {
	GOOS  string
	Start func(cmd *exec.Cmd) error
}

// Open starts the URL handler without waiting for it to exit.
func (b Browser) Open(url string) error {
	cmd, err := b.command(url)
	if err != nil {
		return err
	}
	start := b.Start
	if start == nil {
		start = (*exec.Cmd).Start
	}
	if err := start(cmd); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

func (b Browser) command(url string) (*exec.Cmd, error) {
	goos := b.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "darwin":
		return exec.Command("open", url), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform for opening URLs: %s", goos)
	}
}

// Clipboard copies URLs to the system clipboard.
type Clipboard struct{}

// Open writes url to the clipboard.
func (Clipboard) Open(url string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unavailable")
	}
	if err := clipboard.WriteAll(url); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
