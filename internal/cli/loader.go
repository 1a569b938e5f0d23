package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tripplanner/internal/domain/models"
	"tripplanner/internal/llm"

	"gopkg.in/yaml.v3"
)

// loadRequest reads a trip form from a .json, .yaml or .yml file.
func loadRequest(path string) (models.TripRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.TripRequest{}, WrapExitError(ExitCommandError, "cannot read request file", err)
	}

	var form models.TripForm
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		err = dec.Decode(&form)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &form)
	default:
		return models.TripRequest{}, NewExitError(ExitCommandError, fmt.Sprintf("request file %s: expected .json, .yaml or .yml", path))
	}
	if err != nil {
		return models.TripRequest{}, WrapExitError(ExitCommandError, "cannot parse request file", err)
	}
	return form.ToRequest()
}

// loadDraft reads model output from a file. Surrounding prose and code
// fences are tolerated the same way as live model output.
func loadDraft(path string) (models.ItineraryDraft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.ItineraryDraft{}, WrapExitError(ExitCommandError, "cannot read draft file", err)
	}
	return llm.ParseDraft(string(raw))
}
