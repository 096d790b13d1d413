//go:build unix

package workspace

import (
	"os/exec"
	"syscall"
)

func defaultShell() []string {
	return []string{"/bin/sh", "-c"}
}

// configureProcessGroup starts the command in its own process group so a
// cancel reaches every child the shell spawned.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
