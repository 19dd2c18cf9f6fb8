package locale

import (
	"slices"

	"tidy-planner/internal/model"
)

// Links returns the default reference links for tag, most specific region first.
func (g Guide) Links(tag model.ExitTag) []string {
	v, _ := lookup(links, g.chain(), tag)
	return slices.Clone(v)
}

// Checklist returns the template checklist for tag in the guide's language.
func (g Guide) Checklist(tag model.ExitTag) []string {
	table := englishChecklists
	if g.IsJapanese() {
		table = japaneseChecklists
	}
	v, _ := lookup(table, g.chain(), tag)
	return slices.Clone(v)
}

// Tip returns a short motivational hint for tag.
func (g Guide) Tip(tag model.ExitTag) string {
	table := englishTips
	if g.IsJapanese() {
		table = japaneseTips
	}
	v, _ := lookup(table, g.chain(), tag)
	return v
}

// ExitTagName returns the localized display name of tag.
func (g Guide) ExitTagName(tag model.ExitTag) string {
	if name, ok := exitTagNames[g.Language][tag]; ok {
		return name
	}
	return tag.DisplayName()
}

// ProjectName is the plan title for the guide's language.
func (g Guide) ProjectName() string {
	return projectNames[g.Language]
}
