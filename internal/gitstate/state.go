// Package gitstate summarizes the version-control state of a directory.
//
// Collection never fails: each query is guarded on its own and a failing
// query leaves its field at the zero value.
package gitstate

import (
	"context"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/prismline/internal/logger"
)

// State is the normalized repository summary consumed by the renderer.
type State struct {
	IsRepo      bool
	Branch      string
	Worktree    string
	Added       int
	Modified    int
	Deleted     int
	Ahead       int
	Behind      int
	HasUpstream bool
}

// Clean reports whether the working tree has no pending changes.
func (s State) Clean() bool {
	return s.Added == 0 && s.Modified == 0 && s.Deleted == 0
}

// Collector queries repository state for a directory.
type Collector interface {
	Collect(ctx context.Context, dir string) State
}

const (
	BackendGoGit = "go-git"
	BackendCLI   = "git"

	DefaultTimeout = 500 * time.Millisecond
)

// New returns the collector for the named backend. Unknown names use go-git.
func New(backend string, timeout time.Duration, log *logger.Logger) Collector {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("gitstate").WithFields(map[string]any{"backend": backend})

	switch strings.ToLower(backend) {
	case BackendCLI:
		return &CLICollector{Timeout: timeout, Binary: "git", log: log}
	default:
		return &GoGitCollector{Timeout: timeout, log: log}
	}
}

// CountStatusCode folds one short-status entry (index code x, worktree code y)
// into the counters. Each path is counted once.
func CountStatusCode(x, y byte, s *State) {
	switch {
	case x == '?' && y == '?':
		s.Added++
	case x == 'A' || y == 'A':
		s.Added++
	case x == 'D' || y == 'D':
		s.Deleted++
	case isModifiedCode(x) || isModifiedCode(y):
		s.Modified++
	}
}

func isModifiedCode(c byte) bool {
	switch c {
	case 'M', 'R', 'C', 'T', 'U':
		return true
	}
	return false
}
