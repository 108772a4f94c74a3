package gitstate

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountStatusCode(t *testing.T) {
	t.Parallel()

	var st State
	CountStatusCode('?', '?', &st)
	CountStatusCode('A', ' ', &st)
	CountStatusCode(' ', 'M', &st)
	CountStatusCode('R', ' ', &st)
	CountStatusCode('M', 'M', &st)
	CountStatusCode(' ', 'D', &st)
	CountStatusCode('D', ' ', &st)
	CountStatusCode(' ', ' ', &st)

	assert.Equal(t, 2, st.Added)
	assert.Equal(t, 3, st.Modified)
	assert.Equal(t, 2, st.Deleted)
	assert.False(t, st.Clean())
	assert.True(t, State{}.Clean())
}

func TestScanPorcelainKeepsLeadingSpace(t *testing.T) {
	t.Parallel()

	var st State
	scanPorcelain(" M internal/a.go\n?? notes.md\n D old.go\nA  new.go\n", &st)
	assert.Equal(t, 2, st.Added)
	assert.Equal(t, 1, st.Modified)
	assert.Equal(t, 1, st.Deleted)
}

func TestParseLeftRight(t *testing.T) {
	t.Parallel()

	ahead, behind, ok := parseLeftRight("3\t1")
	require.True(t, ok)
	assert.Equal(t, 3, ahead)
	assert.Equal(t, 1, behind)

	_, _, ok = parseLeftRight("garbage")
	assert.False(t, ok)
}

func TestCollectorsOnNonRepository(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, backend := range []string{BackendGoGit, BackendCLI} {
		c := New(backend, time.Second, nil)
		assert.Equal(t, State{}, c.Collect(context.Background(), dir), backend)
		assert.Equal(t, State{}, c.Collect(context.Background(), ""), backend)
		assert.Equal(t, State{}, c.Collect(context.Background(), filepath.Join(dir, "missing")), backend)
	}
}

func TestCLICollectorMissingBinary(t *testing.T) {
	t.Parallel()

	c := &CLICollector{Timeout: time.Second, Binary: "definitely-not-a-git-binary"}
	assert.Equal(t, State{}, c.Collect(context.Background(), t.TempDir()))
}

func TestGoGitCollectorCountsWorkingTree(t *testing.T) {
	t.Parallel()

	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "keep.txt", "one")
	commitFile(t, repo, dir, "edit.txt", "one")
	commitFile(t, repo, dir, "drop.txt", "one")

	writeFile(t, dir, "edit.txt", "two")
	require.NoError(t, os.Remove(filepath.Join(dir, "drop.txt")))
	writeFile(t, dir, "fresh.txt", "new")

	st := New(BackendGoGit, 5*time.Second, nil).Collect(context.Background(), dir)
	require.True(t, st.IsRepo)
	require.Equal(t, currentBranch(t, repo), st.Branch)
	require.Equal(t, filepath.Base(dir), st.Worktree)
	require.Equal(t, 1, st.Added)
	require.Equal(t, 1, st.Modified)
	require.Equal(t, 1, st.Deleted)
	require.False(t, st.HasUpstream)
}

func TestGoGitCollectorDetectsFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "keep.txt", "one")
	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	st := New(BackendGoGit, 5*time.Second, nil).Collect(context.Background(), sub)
	require.True(t, st.IsRepo)
	require.Equal(t, filepath.Base(dir), st.Worktree)
}

func TestGoGitCollectorAheadBehind(t *testing.T) {
	t.Parallel()

	dir, repo := initRepo(t)
	base := commitFile(t, repo, dir, "a.txt", "one")
	branch := currentBranch(t, repo)

	remoteRef := plumbing.NewRemoteReferenceName("origin", branch)
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(remoteRef, base)))

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.Branches[branch] = &config.Branch{
		Name:   branch,
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName(branch),
	}
	require.NoError(t, repo.SetConfig(cfg))

	commitFile(t, repo, dir, "b.txt", "two")
	commitFile(t, repo, dir, "c.txt", "three")

	st := New(BackendGoGit, 5*time.Second, nil).Collect(context.Background(), dir)
	require.True(t, st.HasUpstream)
	require.Equal(t, 2, st.Ahead)
	require.Equal(t, 0, st.Behind)
}

func TestGoGitCollectorDeepHistory(t *testing.T) {
	t.Parallel()

	dir, repo := initRepo(t)
	tip := chain(t, repo, plumbing.ZeroHash, 2100, time.Unix(1_600_000_000, 0))
	branch := pointBranch(t, repo, tip)

	tipCommit, err := repo.CommitObject(tip)
	require.NoError(t, err)
	trackUpstream(t, repo, branch, tipCommit.ParentHashes[0])

	st := New(BackendGoGit, 10*time.Second, nil).Collect(context.Background(), dir)
	require.True(t, st.HasUpstream)
	assert.Equal(t, 1, st.Ahead)
	assert.Equal(t, 0, st.Behind)
}

func TestGoGitCollectorDiverged(t *testing.T) {
	t.Parallel()

	dir, repo := initRepo(t)
	start := time.Unix(1_600_000_000, 0)
	base := chain(t, repo, plumbing.ZeroHash, 50, start)
	remote := chain(t, repo, base, 3, start.Add(time.Hour))
	local := chain(t, repo, base, 2, start.Add(2*time.Hour))
	branch := pointBranch(t, repo, local)
	trackUpstream(t, repo, branch, remote)

	st := New(BackendGoGit, 10*time.Second, nil).Collect(context.Background(), dir)
	require.True(t, st.HasUpstream)
	assert.Equal(t, 2, st.Ahead)
	assert.Equal(t, 3, st.Behind)
}

func TestGoGitCollectorWalkLimit(t *testing.T) {
	t.Parallel()

	dir, repo := initRepo(t)
	start := time.Unix(1_600_000_000, 0)
	local := chain(t, repo, plumbing.ZeroHash, 20, start)
	remote := chain(t, repo, plumbing.ZeroHash, 20, start.Add(time.Minute))
	branch := pointBranch(t, repo, local)
	trackUpstream(t, repo, branch, remote)

	limited := &GoGitCollector{Timeout: 10 * time.Second, WalkLimit: 10}
	st := limited.Collect(context.Background(), dir)
	require.True(t, st.IsRepo)
	assert.False(t, st.HasUpstream)
	assert.Zero(t, st.Ahead)
	assert.Zero(t, st.Behind)

	st = New(BackendGoGit, 10*time.Second, nil).Collect(context.Background(), dir)
	require.True(t, st.HasUpstream)
	assert.Equal(t, 20, st.Ahead)
	assert.Equal(t, 20, st.Behind)
}

func TestGoGitCollectorStopsAtDeadline(t *testing.T) {
	t.Parallel()

	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "a.txt", "one")
	writeFile(t, dir, "untracked.txt", "new")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := New(BackendGoGit, 5*time.Second, nil).Collect(ctx, dir)
	require.True(t, st.IsRepo)
	assert.Equal(t, currentBranch(t, repo), st.Branch)
	assert.Equal(t, filepath.Base(dir), st.Worktree)
	assert.Zero(t, st.Added)
	assert.False(t, st.HasUpstream)

	start := time.Now()
	st = New(BackendGoGit, time.Nanosecond, nil).Collect(context.Background(), dir)
	require.True(t, st.IsRepo)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCLICollectorMatchesGoGit(t *testing.T) {
	t.Parallel()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir, repo := initRepo(t)
	commitFile(t, repo, dir, "keep.txt", "one")
	writeFile(t, dir, "keep.txt", "two")
	writeFile(t, dir, "fresh.txt", "new")

	cli := New(BackendCLI, 5*time.Second, nil).Collect(context.Background(), dir)
	lib := New(BackendGoGit, 5*time.Second, nil).Collect(context.Background(), dir)

	require.True(t, cli.IsRepo)
	require.Equal(t, lib.Branch, cli.Branch)
	require.Equal(t, lib.Added, cli.Added)
	require.Equal(t, lib.Modified, cli.Modified)
}

func initRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir, repo
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func commitFile(t *testing.T, repo *git.Repository, dir, name, content string) plumbing.Hash {
	t.Helper()
	writeFile(t, dir, name, content)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)

	hash, err := wt.Commit("add "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return hash
}

func currentBranch(t *testing.T, repo *git.Repository) string {
	t.Helper()
	head, err := repo.Head()
	require.NoError(t, err)
	return head.Name().Short()
}

// chain stores n empty commits on top of parent, one minute apart, and returns
// the newest.
func chain(t *testing.T, repo *git.Repository, parent plumbing.Hash, n int, start time.Time) plumbing.Hash {
	t.Helper()

	treeObj := repo.Storer.NewEncodedObject()
	require.NoError(t, (&object.Tree{}).Encode(treeObj))
	tree, err := repo.Storer.SetEncodedObject(treeObj)
	require.NoError(t, err)

	tip := parent
	for i := 0; i < n; i++ {
		sig := object.Signature{Name: "Test", Email: "test@example.com", When: start.Add(time.Duration(i) * time.Minute)}
		commit := &object.Commit{
			Author:    sig,
			Committer: sig,
			Message:   "empty",
			TreeHash:  tree,
		}
		if !tip.IsZero() {
			commit.ParentHashes = []plumbing.Hash{tip}
		}
		obj := repo.Storer.NewEncodedObject()
		require.NoError(t, commit.Encode(obj))
		tip, err = repo.Storer.SetEncodedObject(obj)
		require.NoError(t, err)
	}
	return tip
}

// pointBranch moves the branch HEAD names to hash and returns its short name.
func pointBranch(t *testing.T, repo *git.Repository, hash plumbing.Hash) string {
	t.Helper()
	head, err := repo.Reference(plumbing.HEAD, false)
	require.NoError(t, err)
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(head.Target(), hash)))
	return head.Target().Short()
}

func trackUpstream(t *testing.T, repo *git.Repository, branch string, hash plumbing.Hash) {
	t.Helper()
	remoteRef := plumbing.NewRemoteReferenceName("origin", branch)
	require.NoError(t, repo.Storer.SetReference(plumbing.NewHashReference(remoteRef, hash)))

	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.Branches[branch] = &config.Branch{
		Name:   branch,
		Remote: "origin",
		Merge:  plumbing.NewBranchReferenceName(branch),
	}
	require.NoError(t, repo.SetConfig(cfg))
}
