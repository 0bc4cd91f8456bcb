// Package config loads wordbook's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/wordbook/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/wordbook/config.toml
//   - Word list: built into the binary
//   - Search prefix: https://www.google.com/search?q=
//   - Grid columns: 4
//   - Log file: none (logging disabled)
//
// # TOML Format
//
//	words_file = "~/words.txt"
//	search_prefix = "https://duckduckgo.com/?q="
//	grid_columns = 4
//	log_file = "~/.local/state/wordbook/wordbook.log"
//
// Paths accept a leading ~ and are made absolute. A grid_columns value outside
// 1..13 is rejected; zero or absent keeps the default.
package config
