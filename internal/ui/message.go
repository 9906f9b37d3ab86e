package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgDispatch MsgKind = iota
)

// Dispatch is the constructor for [MsgDispatch]: a scheduler callback to run inside Update.
func Dispatch(fn func()) Msg {
	return Msg{kind: MsgDispatch, data: fn}
}
