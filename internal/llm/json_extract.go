package llm

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// fencePattern matches fenced code blocks with an optional language tag.
var fencePattern = regexp.MustCompile("(?s)```(\\w*)\\s*\\n(.+?)\\n```")

var errNoJSON = errors.New("no JSON object found in model output")

// ExtractJSON returns the JSON object in a model reply that carries a
// top-level "days" key, or the first JSON object when none does. Fenced
// ```json blocks win over bare objects embedded in prose.
func ExtractJSON(text string) (string, error) {
	objects := candidateObjects(text)
	for _, obj := range objects {
		if hasDaysKey(obj) {
			return obj, nil
		}
	}
	if len(objects) > 0 {
		return objects[0], nil
	}
	return "", errNoJSON
}

// candidateObjects lists valid JSON objects in reply order: fenced blocks
// first, then balanced objects found in the prose.
func candidateObjects(text string) []string {
	var out []string
	for _, m := range fencePattern.FindAllStringSubmatch(text, -1) {
		lang := strings.ToLower(m[1])
		if lang != "" && lang != "json" {
			continue
		}
		body := strings.TrimSpace(m[2])
		if strings.HasPrefix(body, "{") && json.Valid([]byte(body)) {
			out = append(out, body)
		}
	}

	for start := strings.Index(text, "{"); start >= 0; {
		skip := 1
		if obj := matchObject(text[start:]); obj != "" && json.Valid([]byte(obj)) {
			out = append(out, obj)
			skip = len(obj)
		}
		next := strings.Index(text[start+skip:], "{")
		if next < 0 {
			break
		}
		start += skip + next
	}
	return out
}

func hasDaysKey(obj string) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(obj), &probe); err != nil {
		return false
	}
	_, ok := probe["days"]
	return ok
}

// matchObject returns the balanced {...} prefix of s, skipping braces
// inside string literals.
func matchObject(s string) string {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
