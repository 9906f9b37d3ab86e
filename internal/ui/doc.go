// Package ui implements the terminal client using bubbletea's Elm architecture.
//
// The TUI has three pages, following [models.Page]:
//  1. Login: Apple ID and password fields
//  2. Two-factor: six single-digit fields
//  3. Main: trending, playlists, and search sections above a now-playing bar
//
// [Model] is a passive [session.View]. Key presses are turned into controller calls, and the
// controller pushes state back through the View methods. Scheduler callbacks arrive as [Msg]
// values built by [Dispatch], so they run inside Update like any other message.
//
// Keyboard navigation uses vim-style bindings (j/k, h/l, enter, esc, q) with contextual help
// displayed via charmbracelet/bubbles/help.
package ui
