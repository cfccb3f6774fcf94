package parser

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sentinel markers the onboarding prompt instructs the model to wrap its JSON
// payload in. The end marker is only searched for after the start marker.
const (
	JSONStartMarker = "---JSON_START---"
	JSONEndMarker   = "---JSON_END---"
)

// ErrorTitlePrefix starts the title of every fallback candidate so callers can
// distinguish degraded output from a real role.
const ErrorTitlePrefix = "Parse failure"

// ErrorCategory tags fallback candidates produced when the model response
// could not be split or parsed.
const ErrorCategory = "Error"

// DefaultCategory is assigned when the payload carries an empty category.
const DefaultCategory = "Custom"

// echoLimit bounds the raw-response echo used as conversational text when the
// pre-marker text is empty.
const echoLimit = 200

// RoleCandidate is the structured payload extracted from an onboarding chat
// response, before any persistence metadata is attached.
type RoleCandidate struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	SystemPromptText string   `json:"systemPromptText"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
}

// IsFallback reports whether the candidate was produced by a failure branch
// rather than parsed from the model payload.
func (c RoleCandidate) IsFallback() bool {
	return c.Category == ErrorCategory
}

// SplitRoleResponse separates a raw onboarding chat response into its
// conversational part and the role candidate embedded between the sentinel
// markers. It never fails: missing markers, malformed JSON and structurally
// invalid payloads all degrade into a fallback candidate tagged with the
// failure mode. Without markers the whole trimmed response is the
// conversational text; with markers but no pre-marker text, a truncated echo
// of the raw response stands in. The userMessage is only used to label
// fallback candidates.
func SplitRoleResponse(raw, userMessage string) (string, RoleCandidate) {
	start := strings.Index(raw, JSONStartMarker)
	if start < 0 {
		return strings.TrimSpace(raw), fallbackCandidate("JSON markers not found", userMessage)
	}
	rest := raw[start+len(JSONStartMarker):]
	end := strings.Index(rest, JSONEndMarker)
	if end < 0 {
		return strings.TrimSpace(raw), fallbackCandidate("JSON markers not found", userMessage)
	}

	chatText := strings.TrimSpace(raw[:start])
	payload := strings.TrimSpace(rest[:end])
	if chatText == "" {
		chatText = truncateEcho(raw)
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		return chatText, fallbackCandidate(fmt.Sprintf("invalid JSON payload: %v", err), userMessage)
	}

	candidate, ok := candidateFromObject(obj)
	if !ok {
		return chatText, fallbackCandidate("missing required fields", userMessage)
	}

	return chatText, candidate
}

// candidateFromObject checks that all five required fields are present with
// the right primitive shape and builds the candidate from them. Tags are
// lower-cased and an empty category defaults to DefaultCategory.
func candidateFromObject(obj map[string]any) (RoleCandidate, bool) {
	title, ok := obj["title"].(string)
	if !ok {
		return RoleCandidate{}, false
	}
	description, ok := obj["description"].(string)
	if !ok {
		return RoleCandidate{}, false
	}
	systemPrompt, ok := obj["systemPromptText"].(string)
	if !ok {
		return RoleCandidate{}, false
	}
	category, ok := obj["category"].(string)
	if !ok {
		return RoleCandidate{}, false
	}
	rawTags, ok := obj["tags"].([]any)
	if !ok {
		return RoleCandidate{}, false
	}

	tags := make([]string, 0, len(rawTags))
	for _, t := range rawTags {
		s, ok := t.(string)
		if !ok {
			return RoleCandidate{}, false
		}
		tags = append(tags, strings.ToLower(s))
	}

	if category == "" {
		category = DefaultCategory
	}

	return RoleCandidate{
		Title:            title,
		Description:      description,
		SystemPromptText: systemPrompt,
		Category:         category,
		Tags:             tags,
	}, true
}

// fallbackCandidate builds the sentinel candidate returned on any failure
// branch. The user message is echoed in the description so the failure is
// traceable to the conversation turn that produced it.
func fallbackCandidate(reason, userMessage string) RoleCandidate {
	return RoleCandidate{
		Title:            fmt.Sprintf("%s: %s", ErrorTitlePrefix, reason),
		Description:      fmt.Sprintf("The model response for %q could not be turned into a role (%s).", userMessage, reason),
		SystemPromptText: "",
		Category:         ErrorCategory,
		Tags:             []string{},
	}
}

// truncateEcho trims the raw response and caps it at echoLimit runes.
func truncateEcho(raw string) string {
	raw = strings.TrimSpace(raw)
	runes := []rune(raw)
	if len(runes) <= echoLimit {
		return raw
	}
	return string(runes[:echoLimit])
}
