// Package host describes the commands the engine sends to the window shell
// that owns the overlay: lock and click-through, the hover unlock timing and
// window dragging.
package host

import (
	"karolbroda.com/lyroverlay/internal/logger"
	"karolbroda.com/lyroverlay/internal/settings"
)

// Shell is implemented by whatever hosts the overlay window. Calls are fire
// and forget; a shell that cannot honour one logs and moves on.
type Shell interface {
	SetLockState(locked bool)
	SetClickThrough(ignore bool)
	SetUnlockTiming(waitSeconds, holdSeconds float64)
	SetHoverUnlockEnabled(enabled bool)
	SetAutoLockEnabled(enabled bool)
	SetAutoLockDelay(seconds float64)
	StartDrag()
}

// Sync issues the commands whose inputs differ between prev and next. A nil
// prev pushes everything, which is what a freshly attached shell needs.
func Sync(shell Shell, prev *settings.Overlay, next settings.Overlay) {
	if prev == nil || prev.IsLocked != next.IsLocked {
		shell.SetLockState(next.IsLocked)
		shell.SetClickThrough(next.IsLocked)
	}

	if prev == nil || prev.UnlockWaitTime != next.UnlockWaitTime || prev.UnlockHoldTime != next.UnlockHoldTime {
		shell.SetUnlockTiming(next.UnlockWaitTime, next.UnlockHoldTime)
	}

	if prev == nil || prev.EnableHoverUnlock != next.EnableHoverUnlock {
		shell.SetHoverUnlockEnabled(next.EnableHoverUnlock)
	}

	if prev == nil || prev.EnableAutoLock != next.EnableAutoLock {
		shell.SetAutoLockEnabled(next.EnableAutoLock)
	}

	if prev == nil || prev.AutoLockDelay != next.AutoLockDelay {
		shell.SetAutoLockDelay(next.AutoLockDelay)
	}
}

// LogShell records commands in the log. It stands in when no native window
// shell is attached, as in the terminal overlay.
type LogShell struct{}

func (LogShell) SetLockState(locked bool) {
	logger.Debug("shell: set lock state", logger.Bool("locked", locked))
}

func (LogShell) SetClickThrough(ignore bool) {
	logger.Debug("shell: set click through", logger.Bool("ignore", ignore))
}

func (LogShell) SetUnlockTiming(waitSeconds, holdSeconds float64) {
	logger.Debug("shell: set unlock timing",
		logger.Float64("wait", waitSeconds), logger.Float64("hold", holdSeconds))
}

func (LogShell) SetHoverUnlockEnabled(enabled bool) {
	logger.Debug("shell: set hover unlock", logger.Bool("enabled", enabled))
}

func (LogShell) SetAutoLockEnabled(enabled bool) {
	logger.Debug("shell: set auto lock", logger.Bool("enabled", enabled))
}

func (LogShell) SetAutoLockDelay(seconds float64) {
	logger.Debug("shell: set auto lock delay", logger.Float64("seconds", seconds))
}

func (LogShell) StartDrag() {
	logger.Debug("shell: start drag")
}
