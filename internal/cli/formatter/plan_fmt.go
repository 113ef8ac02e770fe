package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/peak/internal/contract"
)

const timelineWidth = 40

// FormatPlan renders a planned session for the terminal.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	cat := resp.Category
	fmt.Fprintf(&b, "%s  %s\n", Bold(cat.Label()), TierIndicator(cat.Tier()))
	meta := fmt.Sprintf("%s session · %d %s",
		FormatMinutes(resp.DurationMin),
		resp.NudgeCount, Pluralize(resp.NudgeCount, "nudge", "nudges"))
	if resp.MatchedKeyword != "" {
		meta += fmt.Sprintf(" · matched %q", resp.MatchedKeyword)
	}
	b.WriteString(Dim(meta) + "\n\n")

	for _, step := range resp.Session().Steps() {
		fmt.Fprintf(&b, "  %s  %s\n",
			StyleBlue.Render(fmt.Sprintf("%7s", FormatOffset(step.OffsetSec))),
			StyleFg.Render(step.Nudge))
	}

	b.WriteString("\n  " + RenderTimeline(resp.Timing, resp.DurationMin*60, timelineWidth) + "\n")

	if resp.Source == contract.SourceGenerated {
		b.WriteString("\n" + Dim("nudges written by the language model") + "\n")
	}
	for _, w := range resp.Warnings {
		b.WriteString("\n" + StyleYellow.Render("! "+w) + "\n")
	}

	return RenderBox("Session plan", strings.TrimRight(b.String(), "\n"))
}

// FormatCatalog lists every category with its trigger keywords and nudges.
func FormatCatalog(resp *contract.CatalogResponse) string {
	var b strings.Builder

	b.WriteString(Header("Knowledge base " + resp.Version))
	b.WriteString("\n")

	for _, c := range resp.Categories {
		fmt.Fprintf(&b, "\n%s  %s  %s\n",
			Bold(c.Label), Dim(string(c.Category)), TierIndicator(c.Tier))
		if len(c.Keywords) > 0 {
			b.WriteString("  " + Dim("keywords: "+strings.Join(c.Keywords, ", ")) + "\n")
		}
		for i, n := range c.Nudges {
			fmt.Fprintf(&b, "  %s %s\n", Dim(fmt.Sprintf("%d.", i+1)), n)
		}
	}

	b.WriteString("\n" + Dim("filler: "+resp.FillerNudge) + "\n")
	return b.String()
}
