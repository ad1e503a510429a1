package opener

import (
	"errors"
	"os/exec"
	"time"

	pkgerrors "github.com/pkg/errors"
)

// ExecSpawner starts processes with os/exec. Standard streams are not
// connected; the process is reaped in the background.
type ExecSpawner struct{}

// Spawn implements Spawner.
func (ExecSpawner) Spawn(argv []string) (Process, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, pkgerrors.New("empty command")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return nil, pkgerrors.Wrapf(err, "start %s", argv[0])
	}

	p := &execProcess{done: make(chan struct{})}
	go func() {
		err := cmd.Wait()
		p.code = exitCode(cmd, err)
		close(p.done)
	}()
	return p, nil
}

type execProcess struct {
	done chan struct{}
	code int
}

// Exited implements Process.
func (p *execProcess) Exited(window time.Duration) (bool, int) {
	if window <= 0 {
		select {
		case <-p.done:
			return true, p.code
		default:
			return false, 0
		}
	}

	timer := time.NewTimer(window)
	defer timer.Stop()
	select {
	case <-p.done:
		return true, p.code
	case <-timer.C:
		return false, 0
	}
}

func exitCode(cmd *exec.Cmd, err error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
