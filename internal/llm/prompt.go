package llm

import (
	"fmt"
	"strconv"
	"strings"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/utils"
)

const SystemPrompt = `You are a professional travel planner.
Create a realistic, day-by-day itinerary with a cost estimate for every activity.
Adapt activities to the travelers' ages (kids, adults, seniors).
Respect guardrails strictly.

Output rules:
- Output MUST be a single valid JSON object and nothing else.
- NO markdown, NO comments, NO explanations.
- Costs are numbers in the requested currency for the whole group, never strings with symbols.`

const draftSchema = `{
  "days": [
    {
      "day": number,
      "city": "string",
      "title": "string",
      "activities": [
        {
          "name": "string",
          "estimated_cost": number,
          "time_slot": "Morning | Afternoon | Evening"
        }
      ]
    }
  ]
}`

// BuildPrompt renders the user message for a trip request.
func BuildPrompt(req models.TripRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cities: %s\n", strings.Join(req.Cities(), ", "))
	if !req.StartDate.IsZero() {
		fmt.Fprintf(&b, "Dates: %s to %s (%d days)\n", utils.FormatDate(req.StartDate), utils.FormatDate(req.EndDate), req.Days())
	}

	ages := "Not specified"
	if len(req.Ages) > 0 {
		parts := make([]string, len(req.Ages))
		for i, a := range req.Ages {
			parts[i] = strconv.Itoa(a)
		}
		ages = strings.Join(parts, ", ")
	}
	b.WriteString("\nTravel Group:\n")
	fmt.Fprintf(&b, "- Number of people: %d\n", req.Travelers)
	fmt.Fprintf(&b, "- Ages: %s\n", ages)

	interests := "General sightseeing"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}
	guardrails := req.Guardrails
	if guardrails == "" {
		guardrails = "None"
	}
	fmt.Fprintf(&b, "\nInterests: %s\n", interests)
	fmt.Fprintf(&b, "Guardrails: %s\n", guardrails)
	fmt.Fprintf(&b, "Total budget: %s %s for the whole group\n", utils.FormatAmount(req.BudgetCeiling), req.Currency)

	b.WriteString(`
Guidelines:
- Include kid-friendly or senior-friendly activities if applicable
- Avoid physically demanding activities when younger kids or seniors are present
- Balance rest and exploration
- Number days from 1 across all cities

Required JSON schema:
`)
	b.WriteString(draftSchema)
	b.WriteString("\n")
	return b.String()
}
