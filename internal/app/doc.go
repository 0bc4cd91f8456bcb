// Package app wires configuration, preferences, the word corpus and the UI
// together.
//
// Startup order:
//
//  1. Load config (package config); a broken config file aborts startup.
//  2. Route the standard logger to log_file, or discard it.
//  3. Load the corpus from -words, words_file or the built-in list. A missing,
//     unreadable or empty word list aborts startup.
//  4. Load preferences (theme); problems fall back to defaults.
//  5. Build the sampler, seeded when -seed is given, and run the UI.
package app
