package speech

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// knownPrograms are tried in order when no command is configured.
var knownPrograms = []string{"espeak-ng", "espeak", "say"}

// ProcessEngine speaks by running a synthesiser program. Only one child runs
// at a time.
type ProcessEngine struct {
	program string // resolved binary path, "" when unavailable
	custom  bool   // user-supplied command reading text from stdin

	mu     sync.Mutex
	cmd    *exec.Cmd
	paused bool
}

// NewProcessEngine resolves command, or the first known program on PATH
// when command is empty.
func NewProcessEngine(command string) *ProcessEngine {
	e := &ProcessEngine{}
	if command != "" {
		if p, err := exec.LookPath(command); err == nil {
			e.program, e.custom = p, true
		} else {
			log.Warn().Err(err).Str("command", command).Msg("speech command not found")
		}
		return e
	}
	for _, name := range knownPrograms {
		if p, err := exec.LookPath(name); err == nil {
			e.program = p
			break
		}
	}
	return e
}

// Available reports whether a synthesiser was found.
func (e *ProcessEngine) Available() bool { return e.program != "" }

// Program returns the resolved synthesiser path.
func (e *ProcessEngine) Program() string { return e.program }

// Speak starts the synthesiser. OnStart fires once the child is running;
// OnEnd or OnError fires when it exits, unless it was cancelled.
func (e *ProcessEngine) Speak(u Utterance, ev Events) error {
	if !e.Available() {
		return errors.New("no speech synthesiser available")
	}
	cmd := exec.Command(e.program, e.args(u)...)
	cmd.Stdin = strings.NewReader(u.Text)
	cmd.Env = append(os.Environ(), "INKWELL_TTS_LANG="+u.Lang)

	e.mu.Lock()
	if e.cmd != nil {
		e.mu.Unlock()
		return errors.New("speech already in progress")
	}
	if err := cmd.Start(); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("start %s: %w", e.program, err)
	}
	e.cmd = cmd
	e.paused = false
	e.mu.Unlock()

	if ev.OnStart != nil {
		ev.OnStart()
	}
	go func() {
		err := cmd.Wait()
		e.mu.Lock()
		cancelled := e.cmd != cmd
		if !cancelled {
			e.cmd = nil
		}
		e.mu.Unlock()
		if cancelled {
			return
		}
		if err != nil {
			if ev.OnError != nil {
				ev.OnError(err)
			}
			return
		}
		if ev.OnEnd != nil {
			ev.OnEnd()
		}
	}()
	return nil
}

// args builds the command line for the known programs. Text is always
// supplied on stdin.
func (e *ProcessEngine) args(u Utterance) []string {
	if e.custom {
		return nil
	}
	wpm := strconv.Itoa(int(175 * rateOrDefault(u.Rate)))
	switch programName(e.program) {
	case "say":
		return []string{"-r", wpm, "-f", "-"}
	default: // espeak, espeak-ng
		pitch := strconv.Itoa(int(50 * rateOrDefault(u.Pitch)))
		return []string{"--stdin", "-v", strings.ToLower(u.Lang), "-s", wpm, "-p", pitch}
	}
}

// Pause suspends the running child.
func (e *ProcessEngine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd == nil || e.paused {
		return nil
	}
	if err := suspend(e.cmd.Process); err != nil {
		return err
	}
	e.paused = true
	return nil
}

// Resume continues a suspended child.
func (e *ProcessEngine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd == nil || !e.paused {
		return nil
	}
	if err := cont(e.cmd.Process); err != nil {
		return err
	}
	e.paused = false
	return nil
}

// Cancel kills the running child, if any. Its exit is not reported.
func (e *ProcessEngine) Cancel() error {
	e.mu.Lock()
	cmd, paused := e.cmd, e.paused
	e.cmd, e.paused = nil, false
	e.mu.Unlock()
	if cmd == nil {
		return nil
	}
	if paused {
		_ = cont(cmd.Process)
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

func rateOrDefault(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}

func programName(path string) string {
	i := strings.LastIndexAny(path, `/\`)
	return strings.TrimSuffix(path[i+1:], ".exe")
}
