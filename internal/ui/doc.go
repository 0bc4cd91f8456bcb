// Package ui provides the wordbook terminal user interface.
//
// The UI is a Bubble Tea program with two views:
//
//   - Letters: A–Z with the number of corpus words for each letter, shown as
//     a one-column list or a grid. The header shows the layout the user would
//     switch to.
//   - Words: a random sample of at most five words for the chosen letter,
//     sorted. The highlighted word can be searched on the web or its search
//     URL copied.
//
// Files:
//
//   - app.go: Model, Update/View, commands and Run
//   - letters.go: letter list/grid rendering and cursor movement
//   - words_view.go: word sample rendering and actions
//   - header.go: title bar and footer
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings
//   - theme.go: color palettes
//
// The layout toggle and the sampler are owned by the Model; nothing in this
// package keeps package-level mutable state. Layout is not persisted, the
// theme is (see package prefs).
package ui
