package merge

import "tidy-planner/internal/model"

// Validate drops tasks missing an id or title. It is idempotent.
func Validate(tasks []model.TidyTask) []model.TidyTask {
	out := make([]model.TidyTask, 0, len(tasks))
	for _, t := range tasks {
		if t.IsValid() {
			out = append(out, t)
		}
	}
	return out
}
