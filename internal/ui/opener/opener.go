package opener

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// EnvOpener overrides the launcher binary, mainly for tests
const EnvOpener = "BOOKFINDER_OPENER"

// Opener hands a URL to something that can display it
type Opener interface {
	Open(url string) error
}

// Func adapts a plain function to Opener
type Func func(url string) error

func (f Func) Open(url string) error {
	return f(url)
}

// System opens URLs with the platform's default handler
type System struct {
	goos   string
	getenv func(string) string
	start  func(cmd *exec.Cmd) error
}

// NewSystem creates an opener for the running platform
func NewSystem() *System {
	return &System{
		goos:   runtime.GOOS,
		getenv: os.Getenv,
		start:  func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Command returns the launcher command for url without running it
func (s *System) Command(url string) (*exec.Cmd, error) {
	if bin := s.getenv(EnvOpener); bin != "" {
		return exec.Command(bin, url), nil
	}

	switch s.goos {
	case "darwin":
		return exec.Command("open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return exec.Command("xdg-open", url), nil
	default:
		return nil, fmt.Errorf("no URL opener for %s", s.goos)
	}
}

// Open starts the launcher detached from the terminal and does not wait for it
func (s *System) Open(url string) error {
	cmd, err := s.Command(url)
	if err != nil {
		return err
	}
	// The launcher must not draw over the TUI
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := s.start(cmd); err != nil {
		return fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	if cmd.Process != nil {
		go cmd.Wait() //nolint:errcheck
	}
	return nil
}
