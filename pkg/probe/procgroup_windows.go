//go:build windows

package probe

import "os/exec"

// killProcessGroup keeps the default cancellation on Windows, which kills
// only the direct child.
func killProcessGroup(_ *exec.Cmd) {}
