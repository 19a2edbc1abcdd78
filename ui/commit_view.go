package ui

import "strings"

type CommitRow struct {
	ShortHash string
	Subject   string
	When      string
	Author    string
}

const (
	hashWidth    = 9
	subjectWidth = 56
	whenWidth    = 16
	authorWidth  = 20
)

func FormatCommitLine(row CommitRow) string {
	return PadOrTrim(row.ShortHash, hashWidth) + " " +
		PadOrTrim(row.Subject, subjectWidth) + " " +
		PadOrTrim(row.When, whenWidth) + " " +
		PadOrTrim(row.Author, authorWidth)
}

// RenderCommitList draws the interactive log browser: a cursor column, one
// commit per line, and an optional footer message.
func RenderCommitList(rows []CommitRow, cursor int, footer string, styles Styles) string {
	styles = styles.orIdentity()
	var b strings.Builder
	header := FormatCommitLine(CommitRow{ShortHash: "Hash", Subject: "Subject", When: "When", Author: "Author"})
	b.WriteString("  " + styles.Header(header))
	b.WriteString("\n")
	for i, row := range rows {
		line := FormatCommitLine(row)
		if i == cursor {
			b.WriteString("> " + styles.Selected(line))
		} else {
			b.WriteString("  " + styles.Normal(line))
		}
		b.WriteString("\n")
	}
	if footer != "" {
		b.WriteString("\n")
		b.WriteString(styles.Muted(footer))
		b.WriteString("\n")
	}
	return b.String()
}
