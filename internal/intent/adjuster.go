package intent

import "tidy-planner/internal/model"

// BaseAreaRatio is the minimum share of the frame an item must cover at the default threshold.
const BaseAreaRatio = 0.025

// Threshold returns the area-ratio cut-off for a threshold level.
func Threshold(level model.SmallThreshold) float64 {
	return BaseAreaRatio * level.Multiplier()
}

// Filter drops items smaller than the configured threshold and caps the result
// at maxTasks, preserving detector order. A non-empty input never yields an
// empty output: when everything is filtered the largest item is kept.
func Filter(items []model.DetectedItem, level model.SmallThreshold, maxTasks int) []model.DetectedItem {
	if len(items) == 0 {
		return nil
	}
	if maxTasks < 1 {
		maxTasks = 1
	}

	threshold := Threshold(level)
	kept := make([]model.DetectedItem, 0, len(items))
	for _, item := range items {
		if item.AreaRatio >= threshold {
			kept = append(kept, item)
		}
	}

	if len(kept) == 0 {
		largest := items[0]
		for _, item := range items[1:] {
			if item.AreaRatio > largest.AreaRatio {
				largest = item
			}
		}
		return []model.DetectedItem{largest}
	}

	if len(kept) > maxTasks {
		kept = kept[:maxTasks]
	}
	return kept
}

// FilterFor applies Filter using a settings snapshot.
func FilterFor(items []model.DetectedItem, settings model.IntentSettings) []model.DetectedItem {
	return Filter(items, settings.SmallItemThreshold, settings.MaxTasksPerPhoto)
}
