package llm

import (
	"encoding/json"

	"tripplanner/internal/domain"
	"tripplanner/internal/domain/models"
)

// ParseDraft turns raw model output into an ItineraryDraft. Any failure to
// find or decode the expected shape is a MalformedDraftError; cost values
// are validated later by the reconciler.
func ParseDraft(raw string) (models.ItineraryDraft, error) {
	var draft models.ItineraryDraft

	body, err := ExtractJSON(raw)
	if err != nil {
		return draft, domain.MalformedDraftError{Msg: err.Error(), Err: err}
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &probe); err != nil {
		return draft, domain.MalformedDraftError{Msg: "output is not a JSON object", Err: err}
	}
	if _, ok := probe["days"]; !ok {
		return draft, domain.MalformedDraftError{Msg: `output has no "days" list`}
	}

	if err := json.Unmarshal([]byte(body), &draft); err != nil {
		return models.ItineraryDraft{}, domain.MalformedDraftError{Msg: "output does not match the day/activity shape", Err: err}
	}
	return draft, nil
}
