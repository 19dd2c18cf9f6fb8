package intent

import (
	"strings"

	"tidy-planner/internal/model"
)

type keywordRule struct {
	keywords []string
	tag      func(model.Purpose) model.ExitTag
}

func fixed(tag model.ExitTag) func(model.Purpose) model.ExitTag {
	return func(model.Purpose) model.ExitTag { return tag }
}

// Rules are checked in order; the first match wins.
var keywordRules = []keywordRule{
	{keywords: []string{"electronics", "battery"}, tag: fixed(model.ExitTagRecycle)},
	{keywords: []string{"food", "trash"}, tag: fixed(model.ExitTagTrash)},
	{keywords: []string{"book", "clothes"}, tag: func(p model.Purpose) model.ExitTag {
		if p == model.PurposeMoveValue {
			return model.ExitTagSell
		}
		return model.ExitTagGive
	}},
}

// Classify maps an item label and the user's purpose to an exit tag. It is total.
func Classify(label string, purpose model.Purpose) model.ExitTag {
	lower := strings.ToLower(label)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.tag(purpose)
			}
		}
	}
	return purposeDefault(purpose)
}

func purposeDefault(purpose model.Purpose) model.ExitTag {
	switch purpose {
	case model.PurposeMoveValue:
		return model.ExitTagSell
	case model.PurposeLegacyHidden:
		return model.ExitTagKeep
	default:
		return model.ExitTagTrash
	}
}
