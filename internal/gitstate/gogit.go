package gitstate

import (
	"container/heap"
	"context"
	"errors"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/alexisbeaulieu97/prismline/internal/logger"
)

// maxWalk bounds the number of commits visited for ahead/behind counts.
const maxWalk = 10000

var errWalkLimit = errors.New("ancestry walk limit reached")

// GoGitCollector reads repository state in-process with go-git.
type GoGitCollector struct {
	Timeout time.Duration
	// WalkLimit overrides maxWalk when positive.
	WalkLimit int
	log       *logger.Logger
}

var _ Collector = (*GoGitCollector)(nil)

type worktreeResult struct {
	added, modified, deleted int
	ahead, behind            int
	hasUpstream              bool
}

// Collect implements Collector. Worktree status and divergence run in the
// background; on timeout the branch and worktree fields are still returned.
func (c *GoGitCollector) Collect(ctx context.Context, dir string) State {
	var st State
	if dir == "" {
		return st
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		c.log.Debug("not a repository")
		return st
	}
	st.IsRepo = true
	st.Branch = branchName(repo)

	wt, err := repo.Worktree()
	if err == nil {
		st.Worktree = filepath.Base(wt.Filesystem.Root())
	}

	if ctx.Err() != nil {
		c.log.Warn("repository collection timed out")
		return st
	}

	// Buffered so the worker never blocks once Collect has returned.
	done := make(chan worktreeResult, 1)
	go func() {
		done <- c.query(ctx, repo, wt, st.Branch)
	}()

	select {
	case res := <-done:
		st.Added, st.Modified, st.Deleted = res.added, res.modified, res.deleted
		if res.hasUpstream {
			st.HasUpstream = true
			st.Ahead, st.Behind = res.ahead, res.behind
		}
	case <-ctx.Done():
		c.log.Warn("repository collection timed out")
	}
	return st
}

// query runs the slow queries: worktree status, which go-git cannot cancel,
// and the divergence walk.
func (c *GoGitCollector) query(ctx context.Context, repo *git.Repository, wt *git.Worktree, branch string) worktreeResult {
	var res worktreeResult
	if wt != nil {
		if status, err := wt.Status(); err == nil {
			var counts State
			for _, fs := range status {
				CountStatusCode(byte(fs.Staging), byte(fs.Worktree), &counts)
			}
			res.added, res.modified, res.deleted = counts.Added, counts.Modified, counts.Deleted
		} else {
			c.log.Debug("status query failed")
		}
	}
	if ctx.Err() != nil {
		return res
	}
	res.ahead, res.behind, res.hasUpstream = c.divergence(ctx, repo, branch)
	return res
}

func branchName(repo *git.Repository) string {
	head, err := repo.Head()
	if err == nil {
		if head.Name().IsBranch() {
			return head.Name().Short()
		}
		hash := head.Hash().String()
		if len(hash) > 7 {
			hash = hash[:7]
		}
		return hash
	}

	// Unborn branch: HEAD is symbolic but points nowhere yet.
	sym, err := repo.Reference(plumbing.HEAD, false)
	if err == nil && sym.Type() == plumbing.SymbolicReference {
		return sym.Target().Short()
	}
	return ""
}

// divergence counts commits on HEAD missing from the upstream (ahead) and the
// reverse (behind). ok is false when no upstream is configured or resolvable,
// or when the walk gives up before the histories meet.
func (c *GoGitCollector) divergence(ctx context.Context, repo *git.Repository, branch string) (ahead, behind int, ok bool) {
	if branch == "" {
		return 0, 0, false
	}
	cfg, err := repo.Config()
	if err != nil {
		return 0, 0, false
	}
	bc, found := cfg.Branches[branch]
	if !found || bc == nil || bc.Merge == "" {
		return 0, 0, false
	}

	upstreamName := bc.Merge
	if bc.Remote != "" && bc.Remote != "." {
		upstreamName = plumbing.NewRemoteReferenceName(bc.Remote, bc.Merge.Short())
	}
	upstream, err := repo.Reference(upstreamName, true)
	if err != nil {
		c.log.Debug("upstream reference missing")
		return 0, 0, false
	}
	head, err := repo.Head()
	if err != nil {
		return 0, 0, false
	}

	limit := c.WalkLimit
	if limit <= 0 {
		limit = maxWalk
	}
	ahead, behind, err = leftRight(ctx, repo.Storer, head.Hash(), upstream.Hash(), limit)
	if err != nil {
		c.log.WithFields(map[string]any{"error": err.Error()}).Debug("divergence walk abandoned")
		return 0, 0, false
	}
	return ahead, behind, true
}

const (
	sideLeft uint8 = 1 << iota
	sideRight
	sideBoth = sideLeft | sideRight
)

// leftRight is the go-git counterpart of `git rev-list --left-right --count
// left...right`. Both tips are walked together newest first, each commit
// carrying the sides it is reachable from; the walk stops once every queued
// commit is reachable from both sides, which is where the histories meet.
func leftRight(ctx context.Context, s storer.EncodedObjectStorer, left, right plumbing.Hash, limit int) (ahead, behind int, err error) {
	if left == right {
		return 0, 0, nil
	}

	sides := make(map[plumbing.Hash]uint8)
	q := &commitQueue{}
	push := func(h plumbing.Hash, side uint8) error {
		if sides[h]&side == side {
			return nil
		}
		sides[h] |= side
		commit, err := object.GetCommit(s, h)
		if err != nil {
			return err
		}
		heap.Push(q, queued{commit: commit, seq: q.next()})
		return nil
	}
	if err := push(left, sideLeft); err != nil {
		return 0, 0, err
	}
	if err := push(right, sideRight); err != nil {
		return 0, 0, err
	}

	// A few extra commits are taken after the queue goes stale to absorb
	// committer clock skew.
	const slop = 5
	remaining := slop
	for visited := 0; q.Len() > 0; visited++ {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}
		if visited >= limit {
			return 0, 0, errWalkLimit
		}
		if q.stale(sides) {
			if remaining == 0 {
				break
			}
			remaining--
		} else {
			remaining = slop
		}

		commit := heap.Pop(q).(queued).commit
		side := sides[commit.Hash]
		for _, parent := range commit.ParentHashes {
			if err := push(parent, side); err != nil {
				return 0, 0, err
			}
		}
	}

	for _, side := range sides {
		switch side {
		case sideLeft:
			ahead++
		case sideRight:
			behind++
		}
	}
	return ahead, behind, nil
}

type queued struct {
	commit *object.Commit
	seq    int
}

// commitQueue is a max-heap on committer time, first in first out on ties.
type commitQueue struct {
	items []queued
	seq   int
}

func (q *commitQueue) next() int {
	q.seq++
	return q.seq
}

func (q *commitQueue) Len() int { return len(q.items) }

func (q *commitQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if ta, tb := a.commit.Committer.When, b.commit.Committer.When; !ta.Equal(tb) {
		return ta.After(tb)
	}
	return a.seq < b.seq
}

func (q *commitQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *commitQueue) Push(x any) { q.items = append(q.items, x.(queued)) }

func (q *commitQueue) Pop() any {
	last := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return last
}

func (q *commitQueue) stale(sides map[plumbing.Hash]uint8) bool {
	for _, it := range q.items {
		if sides[it.commit.Hash] != sideBoth {
			return false
		}
	}
	return true
}
