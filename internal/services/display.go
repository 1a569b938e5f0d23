package services

import (
	"fmt"
	"strings"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

// RenderMarkdown renders the human-readable plan shown next to the
// download button. Output depends only on the plan.
func RenderMarkdown(p models.ReconciledItinerary) string {
	var b strings.Builder

	title := strings.Join(p.Cities, " / ")
	if title == "" {
		title = utils.NormalizeSpace(p.Destination)
	}
	fmt.Fprintf(&b, "# Travel Plan: %s\n\n", title)

	if !p.StartDate.IsZero() {
		fmt.Fprintf(&b, "- Dates: %s to %s (%s)\n", utils.FormatDate(p.StartDate), utils.FormatDate(p.EndDate), plural(p.TripDays(), "day"))
	}
	fmt.Fprintf(&b, "- Travelers: %d\n", p.Travelers)
	interests := "General sightseeing"
	if len(p.Interests) > 0 {
		interests = strings.Join(p.Interests, ", ")
	}
	fmt.Fprintf(&b, "- Interests: %s\n", interests)

	current := ""
	for _, d := range p.Days {
		section := d.City
		if section == "" {
			section = "Itinerary"
		}
		if section != current {
			fmt.Fprintf(&b, "\n## %s\n", section)
			current = section
		}

		heading := fmt.Sprintf("Day %d", d.Day)
		if d.Title != "" {
			heading += ": " + d.Title
		}
		fmt.Fprintf(&b, "\n### %s\n\n", heading)

		if len(d.Activities) == 0 {
			b.WriteString("- No activities planned\n")
		}
		for _, a := range d.Activities {
			line := a.Name
			if a.TimeSlot != "" {
				line = a.TimeSlot + ": " + line
			}
			fmt.Fprintf(&b, "- %s (%s)\n", line, utils.FormatMoney(p.Currency, a.Cost))
		}
		fmt.Fprintf(&b, "\nSubtotal: %s\n", utils.FormatMoney(p.Currency, d.Subtotal))
	}

	b.WriteString("\n## Budget\n\n")
	fmt.Fprintf(&b, "- Total estimated cost: %s\n", utils.FormatMoney(p.Currency, p.TotalCost))
	fmt.Fprintf(&b, "- Budget ceiling: %s\n", utils.FormatMoney(p.Currency, p.BudgetCeiling))
	fmt.Fprintf(&b, "- Per person: %s\n", utils.FormatMoney(p.Currency, p.PerPersonCost))
	if p.WithinBudget {
		fmt.Fprintf(&b, "- Status: Within budget, %s remaining\n", utils.FormatMoney(p.Currency, p.Remaining()))
	} else {
		fmt.Fprintf(&b, "- Status: Over budget by %s\n", utils.FormatMoney(p.Currency, p.Overage))
	}

	if len(p.Allocation) > 0 {
		b.WriteString("\n### Suggested allocation\n\n")
		for _, l := range p.Allocation {
			fmt.Fprintf(&b, "- %s (%s): %s\n", l.Category, utils.FormatPercent(l.Share), utils.FormatMoney(p.Currency, l.Amount))
		}
	}
	return b.String()
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
