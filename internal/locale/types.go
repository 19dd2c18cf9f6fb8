package locale

import "tidy-planner/internal/model"

// Language selects which text templates a plan is written in.
type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"
)

// regionKey addresses a lookup table row. An empty city matches the whole
// country and an empty country is the generic default.
type regionKey struct {
	country string
	city    string
}

type tagTable[T any] map[regionKey]map[model.ExitTag]T

// Guide answers locale-dependent content questions for one planning run.
type Guide struct {
	Locale   model.UserLocale
	Language Language
}
