//go:build unix

package speech

import (
	"os"

	"golang.org/x/sys/unix"
)

func suspend(p *os.Process) error { return unix.Kill(p.Pid, unix.SIGSTOP) }

func cont(p *os.Process) error { return unix.Kill(p.Pid, unix.SIGCONT) }
