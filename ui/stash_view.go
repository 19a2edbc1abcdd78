package ui

import "strings"

type StashRow struct {
	Ref     string
	Message string
	When    string
}

const (
	refWidth     = 11
	messageWidth = 52
	ageWidth     = 16
)

func FormatStashLine(row StashRow) string {
	return PadOrTrim(row.Ref, refWidth) + " " +
		PadOrTrim(row.Message, messageWidth) + " " +
		PadOrTrim(row.When, ageWidth)
}

func RenderStashList(rows []StashRow, styles Styles) string {
	styles = styles.orIdentity()
	var b strings.Builder
	b.WriteString("  " + styles.Header(FormatStashLine(StashRow{Ref: "Ref", Message: "Message", When: "Age"})))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("  " + styles.Normal(FormatStashLine(row)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStashPurgePreview lists the stashes an irreversible clear would
// destroy, every line in the danger style.
func RenderStashPurgePreview(rows []StashRow, styles Styles) string {
	styles = styles.orIdentity()
	var b strings.Builder
	b.WriteString("  " + styles.Danger("These stashes will be destroyed:"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("  " + styles.Danger(FormatStashLine(row)))
		b.WriteString("\n")
	}
	return b.String()
}
