package git

import (
	"fmt"
	"strconv"
	"strings"
)

// Inspector answers read-only questions about the repository. Queries that
// fail degrade to empty results so menus can shrink instead of aborting.
type Inspector struct {
	git Commander
}

func NewInspector(c Commander) *Inspector {
	return &Inspector{git: c}
}

func (i *Inspector) CurrentBranch() string {
	out, err := i.git.Output("branch", "--show-current")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func (i *Inspector) Status() StatusSummary {
	out, err := i.git.Output("status", "--porcelain")
	if err != nil {
		return StatusSummary{}
	}
	return parsePorcelainStatus(out)
}

func (i *Inspector) IsClean() bool {
	return !i.Status().HasChanges()
}

func (i *Inspector) StagedFiles() []StagedFile {
	out, err := i.git.Output("diff", "--cached", "--name-status")
	if err != nil {
		return nil
	}
	return parseNameStatus(out)
}

func (i *Inspector) RecentCommits(n int) []Commit {
	out, err := i.git.Output("log", fmt.Sprintf("-%d", n), "--pretty=format:"+logFormat)
	if err != nil {
		return nil
	}
	return parseCommits(out)
}

// CommitAt resolves a single revision to its metadata. Unlike the other
// queries the caller needs to distinguish "no such commit".
func (i *Inspector) CommitAt(rev string) (Commit, bool) {
	out, err := i.git.Output("log", "-1", "--pretty=format:"+logFormat, rev)
	if err != nil {
		return Commit{}, false
	}
	commits := parseCommits(out)
	if len(commits) == 0 {
		return Commit{}, false
	}
	return commits[0], true
}

func (i *Inspector) Stashes() []Stash {
	out, err := i.git.Output("stash", "list", "--pretty=format:"+stashFormat)
	if err != nil {
		return nil
	}
	return parseStashes(out)
}

func (i *Inspector) StashDiff(ref string) (string, error) {
	return i.git.Output("stash", "show", "-p", ref)
}

// LocalBranches lists local branch names, most recently committed first.
func (i *Inspector) LocalBranches() []string {
	out, err := i.git.Output("for-each-ref", "--sort=-committerdate", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil
	}
	return splitLines(out)
}

func (i *Inspector) CommitsInRange(spec string) []Commit {
	out, err := i.git.Output("log", spec, "--pretty=format:"+logFormat)
	if err != nil {
		return nil
	}
	return parseCommits(out)
}

func (i *Inspector) countRange(spec string) int {
	out, err := i.git.Output("rev-list", "--count", spec)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0
	}
	return n
}

// Divergence fetches the tracking remote and reports how far the local
// branch and its remote counterpart have drifted apart.
func (i *Inspector) Divergence(t Tracking) (Divergence, error) {
	if _, err := i.git.Output("fetch", t.Remote, t.RemoteBranch); err != nil {
		return Divergence{}, err
	}
	remoteRef := t.RemoteRef()
	d := Divergence{
		Ahead:  i.countRange(remoteRef + ".." + t.LocalBranch),
		Behind: i.countRange(t.LocalBranch + ".." + remoteRef),
	}
	if d.Ahead > 0 {
		d.AheadCommits = i.CommitsInRange(remoteRef + ".." + t.LocalBranch)
	}
	if d.Behind > 0 {
		d.BehindCommits = i.CommitsInRange(t.LocalBranch + ".." + remoteRef)
	}
	return d, nil
}
