package zap

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/buemura/zapcli/internal/console"
)

// daemonScript returns the launcher script name for the platform.
func daemonScript() string {
	if runtime.GOOS == "windows" {
		return "zap.bat"
	}
	return "zap.sh"
}

// Start launches the ZAP daemon process from the configured install
// path. Extra options are appended to the command line verbatim. The
// process is left running in the background; callers that need to block
// until the API answers should follow up with a readiness wait.
func (c *APIClient) Start(ctx context.Context, options string) error {
	script := filepath.Join(c.zapPath, daemonScript())
	if _, err := os.Stat(script); err != nil {
		return fmt.Errorf("ZAP daemon not found at %q: %w", script, err)
	}

	args := []string{"-daemon", "-port", strconv.Itoa(c.port)}
	if options != "" {
		args = append(args, strings.Fields(options)...)
	}

	logDir := c.logPath
	if logDir == "" {
		logDir = c.zapPath
	}
	logFile, err := os.OpenFile(filepath.Join(logDir, "zap.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening daemon log file: %w", err)
	}

	// exec.Command rather than CommandContext: the daemon must outlive
	// this invocation unless explicitly shut down.
	cmd := exec.Command(script, args...)
	cmd.Dir = c.zapPath
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	console.Debug("launching %s %s", script, strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		logFile.Close()
		return fmt.Errorf("starting ZAP daemon: %w", err)
	}

	// Reap the process in the background so it does not become a
	// zombie if it exits before the CLI does.
	go func() {
		_ = cmd.Wait()
		logFile.Close()
	}()

	return nil
}
