package ui

import "strings"

type OverviewRow struct {
	Name        string
	Description string
}

const overviewNameWidth = 10

func RenderOverview(rows []OverviewRow, styles Styles) string {
	styles = styles.orIdentity()
	var b strings.Builder
	b.WriteString("  " + styles.Header(PadOrTrim("Command", overviewNameWidth)+" Description"))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("  " + styles.Normal(PadOrTrim(row.Name, overviewNameWidth)) + " " + styles.Muted(row.Description))
		b.WriteString("\n")
	}
	return b.String()
}
