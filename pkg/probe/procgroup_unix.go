//go:build unix

package probe

import (
	"os/exec"
	"syscall"
)

// killProcessGroup runs cmd in its own process group and makes cancellation
// SIGKILL the whole group, so children such as test workers die with it.
func killProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		// negative PID targets every process in the group
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
