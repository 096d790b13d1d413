//go:build !unix

package workspace

import "os/exec"

func defaultShell() []string {
	return []string{"cmd", "/C"}
}

func configureProcessGroup(*exec.Cmd) {}
