// Package window brings the reader window to the foreground and sends
// page-turn key presses.
//
// Each platform drives its native automation tool as a subprocess: xdotool
// on Linux, osascript (System Events) on macOS, and PowerShell
// (WScript.Shell / SendKeys) on Windows. The tool missing from PATH is
// reported as errors.ErrActivatorUnavailable; a title keyword matching no
// window as errors.ErrWindowNotFound.
//
// There are no retries: activation either works immediately or the capture
// run aborts with guidance.
package window
