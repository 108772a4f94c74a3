package gitstate

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/prismline/internal/logger"
)

// CLICollector shells out to the git binary, one bounded invocation per query.
type CLICollector struct {
	Timeout time.Duration
	Binary  string
	log     *logger.Logger
}

var _ Collector = (*CLICollector)(nil)

// Collect implements Collector.
func (c *CLICollector) Collect(ctx context.Context, dir string) State {
	var st State
	if dir == "" {
		return st
	}
	if ctx == nil {
		ctx = context.Background()
	}

	out, err := c.run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	if err != nil || out != "true" {
		c.log.Debug("not a repository")
		return st
	}
	st.IsRepo = true

	if out, err := c.run(ctx, dir, "branch", "--show-current"); err == nil && out != "" {
		st.Branch = out
	} else if out, err := c.run(ctx, dir, "rev-parse", "--short", "HEAD"); err == nil {
		st.Branch = out
	}

	if out, err := c.run(ctx, dir, "rev-parse", "--show-toplevel"); err == nil && out != "" {
		st.Worktree = filepath.Base(out)
	}

	if out, err := c.run(ctx, dir, "status", "--porcelain"); err == nil {
		scanPorcelain(out, &st)
	}

	if _, err := c.run(ctx, dir, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}"); err == nil {
		if out, err := c.run(ctx, dir, "rev-list", "--left-right", "--count", "HEAD...@{u}"); err == nil {
			if ahead, behind, ok := parseLeftRight(out); ok {
				st.HasUpstream = true
				st.Ahead = ahead
				st.Behind = behind
			}
		}
	}

	return st
}

func (c *CLICollector) run(ctx context.Context, dir string, args ...string) (string, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	binary := c.Binary
	if binary == "" {
		binary = "git"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(qctx, binary, append([]string{"-C", dir}, args...)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if c.log != nil {
			c.log.WithFields(map[string]any{
				"args":   strings.Join(args, " "),
				"stderr": strings.TrimSpace(stderr.String()),
			}).Debug("git query failed")
		}
		return "", err
	}
	// Leading spaces are significant in porcelain output.
	return strings.TrimRight(stdout.String(), "\r\n"), nil
}

// scanPorcelain counts `git status --porcelain` (v1) lines.
func scanPorcelain(out string, st *State) {
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 {
			continue
		}
		CountStatusCode(line[0], line[1], st)
	}
}

// parseLeftRight parses "<ahead>\t<behind>" from rev-list --left-right --count.
func parseLeftRight(out string) (ahead, behind int, ok bool) {
	fields := strings.Fields(out)
	if len(fields) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return a, b, true
}
