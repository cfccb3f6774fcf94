package parser

import (
	"strings"
)

// DefaultTitle is used when the model response contains no recognizable title line.
const DefaultTitle = "Untitled Wreck"

// RecipeText is the structured form of a free-text recipe response.
type RecipeText struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// section tracks which part of the recipe the scan is currently collecting.
type section int

const (
	sectionNone section = iota
	sectionIngredients
	sectionSteps
)

// ParseRecipe extracts a title, ingredient list and step list from raw model
// output. It is a single-pass, line-oriented scan: a "Title:" line sets the
// title (last one wins), "Ingredients"/"Steps" lines switch the active section,
// and every other line is collected into the active section. Lines seen before
// any section header are dropped. The function never fails; malformed input
// yields a best-effort result with the default title and empty lists.
func ParseRecipe(raw string) RecipeText {
	result := RecipeText{
		Title:       DefaultTitle,
		Ingredients: []string{},
		Steps:       []string{},
	}

	mode := sectionNone
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(stripMarkdown(line))
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "title:"):
			result.Title = strings.TrimSpace(line[len("title:"):])
			mode = sectionNone
		case strings.HasPrefix(lower, "ingredients"):
			mode = sectionIngredients
		case strings.HasPrefix(lower, "steps"):
			mode = sectionSteps
		default:
			switch mode {
			case sectionIngredients:
				result.Ingredients = append(result.Ingredients, stripBullet(line))
			case sectionSteps:
				result.Steps = append(result.Steps, stripNumber(line))
			}
		}
	}

	return result
}

// stripMarkdown removes emphasis and code-fence characters so a decorated
// header like "**Title:**" matches the same as "Title:".
func stripMarkdown(line string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '*', '_', '`':
			return -1
		}
		return r
	}, line)
}

// stripBullet removes a leading "-" list marker. A "*" marker is already gone
// by the time this runs because stripMarkdown drops emphasis characters.
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, "-"))
}

// stripNumber removes a leading "1." / "12)" style step marker.
func stripNumber(line string) string {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return strings.TrimSpace(line)
}
