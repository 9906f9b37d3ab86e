// Package models defines the entities shared by the controller, the catalog, and the terminal UI.
//
// The package contains two categories of types:
//
// 1. Reference data: static, read-only records
//   - [Credential] : An account in the hardcoded login table
//   - [Track] : Song metadata with a nominal duration
//   - [Playlist] : Playlist metadata shown in the playlists tab
//
// 2. Runtime state: owned by the session controller and copied out in snapshots
//   - [Session] : The signed-in user, set only after two-factor verification
//   - [Transport] : Current track index, playing flag, elapsed counter, duration, volume
//   - [Page] and [Tab] : Navigation state
//   - [Notice] : The single transient message slot
//
// Nothing here is persisted.
package models
