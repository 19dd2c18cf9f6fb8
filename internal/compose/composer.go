package compose

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tidy-planner/internal/intent"
	"tidy-planner/internal/locale"
	"tidy-planner/internal/model"
	"tidy-planner/internal/schedule"
	"tidy-planner/pkg/datemath"
)

// Composer builds tasks offline from detected items.
type Composer struct {
	guide     locale.Guide
	scheduler schedule.Scheduler
	purpose   model.Purpose
	newID     func() string
}

// New creates a composer for one planning run.
func New(guide locale.Guide, scheduler schedule.Scheduler, purpose model.Purpose) *Composer {
	return &Composer{
		guide:     guide,
		scheduler: scheduler,
		purpose:   purpose,
		newID:     func() string { return strings.ToUpper(uuid.NewString()) },
	}
}

// Blueprints classifies, schedules and decorates every item, in order.
func (c *Composer) Blueprints(items []model.DetectedItem) []Blueprint {
	out := make([]Blueprint, 0, len(items))
	for _, item := range items {
		tag := intent.Classify(item.Label, c.purpose)
		sched := c.scheduler.Schedule(tag)
		label := c.guide.DisplayLabel(item.Label)
		minutes := TimeEstimate(tag)

		out = append(out, Blueprint{
			ID:              item.ID,
			DisplayLabel:    label,
			LabelKey:        labelKey(item.Label),
			ExitTag:         tag,
			Schedule:        sched,
			Title:           c.title(tag, label),
			Checklist:       model.CleanList(c.guide.Checklist(tag)),
			Links:           model.CleanList(c.guide.Links(tag)),
			Note:            c.note(sched.OffsetDays, minutes),
			Tip:             c.guide.Tip(tag),
			TimeEstimateMin: minutes,
			Priority:        Priority(tag, c.purpose),
		})
	}
	return out
}

// Tasks converts blueprints 1:1 into tasks.
func (c *Composer) Tasks(blueprints []Blueprint) []model.TidyTask {
	tasks := make([]model.TidyTask, 0, len(blueprints))
	for _, bp := range blueprints {
		tasks = append(tasks, model.TidyTask{
			ID:        bp.ID,
			Title:     bp.Title,
			Note:      bp.Note,
			Tips:      bp.Tip,
			ExitTag:   bp.ExitTag,
			Priority:  bp.Priority,
			EffortMin: bp.TimeEstimateMin,
			Labels:    []string{bp.LabelKey, strings.ToLower(string(bp.ExitTag))},
			Checklist: bp.Checklist,
			Links:     bp.Links,
			DueAt:     datemath.FormatISO(bp.Schedule.DueDate),
		})
	}
	return tasks
}

// FallbackTask is the single generic task used when nothing was detected.
func (c *Composer) FallbackTask(itemCount int) model.TidyTask {
	var title string
	var checklist []string
	if c.guide.IsJapanese() {
		title = "検出されたアイテムを整理する"
		if itemCount > 0 {
			title = fmt.Sprintf("%d個のアイテムを整理する", itemCount)
		}
		checklist = []string{
			"写真の中のアイテムを確認する",
			"各アイテムの処分方法を決める",
			"必要に応じて手動でタスクを作成する",
		}
	} else {
		title = "Review detected items"
		if itemCount > 0 {
			title = fmt.Sprintf("Review %d detected items", itemCount)
		}
		checklist = []string{
			"Check items in the photo",
			"Decide disposal method for each",
			"Create tasks manually if needed",
		}
	}

	return model.TidyTask{
		ID:        c.newID(),
		Title:     title,
		ExitTag:   model.ExitTagKeep,
		Priority:  fallbackPriority,
		EffortMin: fallbackEffortMin,
		Labels:    []string{fallbackLabel},
		Checklist: checklist,
		DueAt:     c.scheduler.DueAt(model.ExitTagKeep),
	}
}

// Compose returns the local plan and the blueprints behind it. An empty item
// list yields exactly one fallback task and no blueprints.
func (c *Composer) Compose(items []model.DetectedItem, rawCount int) (model.Plan, []Blueprint) {
	if len(items) == 0 {
		return c.Plan([]model.TidyTask{c.FallbackTask(rawCount)}), nil
	}
	blueprints := c.Blueprints(items)
	return c.Plan(c.Tasks(blueprints)), blueprints
}

// Plan wraps tasks with the project name and locale.
func (c *Composer) Plan(tasks []model.TidyTask) model.Plan {
	return model.Plan{
		Project: c.guide.ProjectName(),
		Locale:  c.guide.Locale,
		Tasks:   tasks,
	}
}

func (c *Composer) title(tag model.ExitTag, label string) string {
	if c.guide.IsJapanese() {
		return fmt.Sprintf("%s：%s", c.guide.ExitTagName(tag), label)
	}
	return fmt.Sprintf("%s: %s", c.guide.ExitTagName(tag), label)
}

func (c *Composer) note(offsetDays, minutes int) string {
	if c.guide.IsJapanese() {
		return fmt.Sprintf("%s。所要 %s。", c.guide.DueDescription(offsetDays), c.guide.TimeEstimateLabel(minutes))
	}
	return fmt.Sprintf("%s. Takes %s.", c.guide.DueDescription(offsetDays), c.guide.TimeEstimateLabel(minutes))
}

func labelKey(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "_")
}
