package git

import (
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	logFormat   = "%H|%h|%s|%ar|%an"
	stashFormat = "%gd|%s|%cr"
)

func parseCommits(output string) []Commit {
	var commits []Commit
	for _, line := range splitLines(output) {
		parts := strings.SplitN(line, "|", 5)
		if len(parts) < 5 {
			logrus.WithField("line", line).Debug("skipping malformed log line")
			continue
		}
		commits = append(commits, Commit{
			Hash:      parts[0],
			ShortHash: parts[1],
			Subject:   parts[2],
			When:      parts[3],
			Author:    parts[4],
		})
	}
	return commits
}

// parseNameStatus parses `diff --cached --name-status` lines: a one-letter
// status, a tab, the path. Renames carry two paths; the new one wins.
func parseNameStatus(output string) []StagedFile {
	var files []StagedFile
	for _, line := range splitLines(output) {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			logrus.WithField("line", line).Debug("skipping malformed name-status line")
			continue
		}
		status := statusFromCode(fields[0])
		path := fields[len(fields)-1]
		if path == "" {
			logrus.WithField("line", line).Debug("skipping name-status line without path")
			continue
		}
		files = append(files, StagedFile{Path: path, Status: status})
	}
	return files
}

func statusFromCode(code string) FileStatus {
	if code == "" {
		return StatusOther
	}
	switch code[0] {
	case 'M':
		return StatusModified
	case 'A':
		return StatusAdded
	case 'D':
		return StatusDeleted
	case 'R':
		return StatusRenamed
	default:
		return StatusOther
	}
}

func parseStashes(output string) []Stash {
	var stashes []Stash
	for _, line := range splitLines(output) {
		parts := strings.SplitN(line, "|", 3)
		if len(parts) < 3 {
			logrus.WithField("line", line).Debug("skipping malformed stash line")
			continue
		}
		stashes = append(stashes, Stash{Ref: parts[0], Message: parts[1], When: parts[2]})
	}
	return stashes
}

// parsePorcelainStatus counts staged, modified and untracked entries from
// `status --porcelain` XY lines.
func parsePorcelainStatus(output string) StatusSummary {
	var summary StatusSummary
	for _, line := range splitLines(output) {
		if len(line) < 3 {
			continue
		}
		x, y := line[0], line[1]
		if x == '?' && y == '?' {
			summary.Untracked++
			continue
		}
		if x != ' ' && x != '?' {
			summary.Staged++
		}
		if y != ' ' && y != '?' {
			summary.Modified++
		}
	}
	return summary
}

func splitLines(output string) []string {
	var lines []string
	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
