package git

import (
	"errors"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

var ErrNotInRepository = errors.New("not a git repository")

// FindRepoRoot walks up from dir looking for a repository. Linked worktrees
// (a .git file instead of a directory) count as repositories too.
func FindRepoRoot(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", ErrNotInRepository
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", ErrNotInRepository
	}
	return wt.Filesystem.Root(), nil
}

// TrackingFor reads branch.<name>.remote and branch.<name>.merge from the
// repository config, falling back to origin and the branch's own name when
// no upstream is configured.
func TrackingFor(root string, branch string) Tracking {
	t := Tracking{LocalBranch: branch, Remote: "origin", RemoteBranch: branch}
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return t
	}
	cfg, err := repo.Config()
	if err != nil {
		return t
	}
	b, ok := cfg.Branches[branch]
	if !ok {
		return t
	}
	if remote := strings.TrimSpace(b.Remote); remote != "" {
		t.Remote = remote
	}
	if b.Merge != "" {
		if merge := strings.TrimPrefix(b.Merge.String(), "refs/heads/"); merge != "" {
			t.RemoteBranch = merge
		}
	}
	return t
}

// HasUpstream reports whether the branch has an explicitly configured
// upstream, as opposed to the origin/<branch> fallback TrackingFor applies.
func HasUpstream(root string, branch string) bool {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return false
	}
	cfg, err := repo.Config()
	if err != nil {
		return false
	}
	b, ok := cfg.Branches[branch]
	return ok && strings.TrimSpace(b.Remote) != ""
}

// RemoteURL reports the first fetch URL of a remote, for display only.
func RemoteURL(root string, remote string) string {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	cfg, err := repo.Config()
	if err != nil {
		return ""
	}
	r, ok := cfg.Remotes[remote]
	if !ok || len(r.URLs) == 0 {
		return ""
	}
	return r.URLs[0]
}
