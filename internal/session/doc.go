// Package session implements the client controller: the login → two-factor → main navigation and
// the simulated playback transport.
//
// # State
//
// A [Controller] owns every piece of mutable state: the current page and tab, the credential
// accepted by the login step, the signed-in [models.Session], the six two-factor fields, the
// [models.Transport], and the single notice slot. Callers read it through [Controller.Snapshot].
//
// # Rendering
//
// The controller never draws. It pushes updates through the [View] interface, one method per
// screen region. The terminal UI implements [View]; tests use a recording double.
//
// # Time
//
// Simulated network latency, notice expiry, and the one-second playback tick are all scheduled on a
// [clock.Scheduler]. Handlers return immediately and the controller resumes when the scheduler
// fires. Submit controls are disabled while a step is pending. Going back to the login page
// bumps an epoch so delayed callbacks from the abandoned step are dropped.
//
// # Playback
//
// Playback is a counter. [Controller.Play] restarts a single repeating task;
// [Controller.TogglePlay] only flips the playing flag. [Controller.Previous] stops at the first
// track while [Controller.Next] wraps from the last track to the first.
//
// All methods must be called from one goroutine, the same one the scheduler dispatches to.
package session
