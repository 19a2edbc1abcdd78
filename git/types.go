package git

import "fmt"

type FileStatus int

const (
	StatusOther FileStatus = iota
	StatusModified
	StatusAdded
	StatusDeleted
	StatusRenamed
)

func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusAdded:
		return "added"
	case StatusDeleted:
		return "deleted"
	case StatusRenamed:
		return "renamed"
	default:
		return "changed"
	}
}

type Commit struct {
	Hash      string
	ShortHash string
	Subject   string
	When      string
	Author    string
}

func (c Commit) Label() string {
	return fmt.Sprintf("%s %s (%s, %s)", c.ShortHash, c.Subject, c.When, c.Author)
}

type StagedFile struct {
	Path   string
	Status FileStatus
}

func (f StagedFile) Label() string {
	return fmt.Sprintf("%s (%s)", f.Path, f.Status)
}

type Stash struct {
	Ref     string
	Message string
	When    string
}

func (s Stash) Label() string {
	return fmt.Sprintf("%s: %s (%s)", s.Ref, s.Message, s.When)
}

type StatusSummary struct {
	Staged    int
	Modified  int
	Untracked int
}

func (s StatusSummary) HasChanges() bool {
	return s.Staged > 0 || s.Modified > 0 || s.Untracked > 0
}

type Tracking struct {
	LocalBranch  string
	Remote       string
	RemoteBranch string
}

func (t Tracking) RemoteRef() string {
	return t.Remote + "/" + t.RemoteBranch
}

type Divergence struct {
	Ahead         int
	Behind        int
	AheadCommits  []Commit
	BehindCommits []Commit
}

func (d Divergence) InSync() bool {
	return d.Ahead == 0 && d.Behind == 0
}
