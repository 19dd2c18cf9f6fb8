package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"tidy-planner/internal/compose"
	"tidy-planner/internal/locale"
	"tidy-planner/internal/model"
	"tidy-planner/pkg/datemath"
)

// Prompts is everything the remote planner needs for one request.
type Prompts struct {
	System    string
	Developer string
	Data      string
	Schema    json.RawMessage
	ItemCount int
}

type dataPayload struct {
	User        userPayload                `json:"user"`
	Guidance    map[string]guidancePayload `json:"guidance"`
	LinkCatalog map[string][]string        `json:"linkCatalog"`
	Tasks       []taskPayload              `json:"tasks"`
}

type userPayload struct {
	Purpose            string         `json:"purpose"`
	PurposeDescription string         `json:"purposeDescription"`
	GoalDate           string         `json:"goalDate"`
	RemindersList      string         `json:"remindersList"`
	Region             regionPayload  `json:"region"`
	SmallItemThreshold string         `json:"smallItemThreshold"`
	Offsets            map[string]int `json:"offsets"`
}

type regionPayload struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type guidancePayload struct {
	Name            string   `json:"name"`
	Focus           string   `json:"focus"`
	ChecklistHints  []string `json:"checklistHints"`
	TimeEstimateMin int      `json:"timeEstimateMin"`
}

type taskPayload struct {
	ID          string          `json:"id"`
	Label       string          `json:"label"`
	LabelKey    string          `json:"labelKey"`
	ExitTag     string          `json:"exitTag"`
	ExitTagName string          `json:"exitTagName"`
	Schedule    schedulePayload `json:"schedule"`
	Defaults    defaultsPayload `json:"defaults"`
}

type schedulePayload struct {
	OffsetDays     int    `json:"offsetDays"`
	DueAt          string `json:"dueAt"`
	DueDescription string `json:"dueDescription"`
}

type defaultsPayload struct {
	Title           string   `json:"title"`
	Note            string   `json:"note"`
	Checklist       []string `json:"checklist"`
	Links           []string `json:"links"`
	TimeEstimateMin int      `json:"timeEstimateMin"`
	Tip             string   `json:"tip"`
}

// Build assembles prompts for the given blueprints. User-controlled strings
// (labels, list names) only ever appear JSON-encoded inside Data.
func Build(settings model.IntentSettings, guide locale.Guide, blueprints []compose.Blueprint) (Prompts, error) {
	lang := guide.Language
	count := len(blueprints)

	data, err := json.Marshal(dataPayload{
		User:        userSection(settings, guide),
		Guidance:    guidanceSection(settings.Purpose, guide),
		LinkCatalog: linkCatalog(guide),
		Tasks:       taskSection(guide, blueprints),
	})
	if err != nil {
		return Prompts{}, fmt.Errorf("prompt.Build: marshal data: %w", err)
	}

	return Prompts{
		System:    systemPrompt(lang, count),
		Developer: developerPrompt(settings, guide, count),
		Data:      "DATA:\n" + string(data),
		Schema:    Schema(count),
		ItemCount: count,
	}, nil
}

func systemPrompt(lang locale.Language, count int) string {
	if lang == locale.Japanese {
		return fmt.Sprintf("%s\n\nアイテム%d個 → タスク%d個", systemJA, count, count)
	}
	return fmt.Sprintf("%s\n\n%d items -> %d tasks", systemEN, count, count)
}

func developerPrompt(settings model.IntentSettings, guide locale.Guide, count int) string {
	lang := guide.Language
	purpose := purposeDescription(settings.Purpose, lang)
	threshold := thresholdDescription(settings.SmallItemThreshold, lang)
	offsets := offsetsDescription(settings, lang)
	guidance := guidanceSummary(settings.Purpose, guide)

	if lang == locale.Japanese {
		return fmt.Sprintf(`ユーザー設定:
- 目的 = %s
- 小物の除外レベル = %s
- 各出口タグの締切 = %s
- 地域・リスト名などの詳細は DATA の user を参照

出口タグ別の書き分けガイド:
%s

生成ルール:
1. DATA の tasks と同じ id のタスクをちょうど %d 件返す。タスクの追加・分割はしない。
2. title は defaults.title を起点に、出口タグとアイテム内容がひと目で伝わる前向きな一文に整える。
3. note は2文以内で、schedule.dueDescription と defaults.timeEstimateMin を自然に盛り込み、defaults.tip を活かした一言を含める。
4. checklist は defaults.checklist から心理的ハードルの低い行動を 2〜3 件に絞り、必要に応じて言い換えて具体化する。
5. links には defaults.links を優先し、追加が必要な場合のみ linkCatalog か地域向けの有用URLを最大1件まで補う。
6. 締切日は出力しない。日付はアプリ側で計算する。`, purpose, threshold, offsets, guidance, count)
	}

	return fmt.Sprintf(`User settings:
- Purpose = %s
- Small item filter = %s
- Exit tag offsets = %s
- Region and list details are in DATA.user

Exit-tag guidance:
%s

Constraints:
1. Return exactly %d tasks whose ids match DATA.tasks ids. No new tasks, no splitting.
2. Shape each title from defaults.title into a single upbeat line that makes the exit tag and item obvious.
3. Write each note in at most two sentences, weaving in schedule.dueDescription, defaults.timeEstimateMin, and the motivational defaults.tip.
4. Use 2-3 low-friction checklist bullets based on defaults.checklist, rewriting them so the first action feels easy to start.
5. Reuse defaults.links; only add one extra authoritative local URL from linkCatalog or a well-known local source if it clearly lowers friction.
6. Do not output due dates. Dates are computed by the app.`, purpose, threshold, offsets, guidance, count)
}

func guidanceSummary(purpose model.Purpose, guide locale.Guide) string {
	lines := make([]string, 0, len(model.ExitTags))
	for _, tag := range model.ExitTags {
		focus := guidanceFocus(tag, purpose, guide.Language)
		timeLabel := guide.TimeEstimateLabel(compose.TimeEstimate(tag))
		if guide.IsJapanese() {
			steps := strings.Join(guide.Checklist(tag), "／")
			lines = append(lines, fmt.Sprintf("- %s (%s): %s。所要: %s／おすすめ手順: %s", tag, guide.ExitTagName(tag), focus, timeLabel, steps))
			continue
		}
		steps := strings.Join(guide.Checklist(tag), " / ")
		lines = append(lines, fmt.Sprintf("- %s (%s): %s. Time: %s. Suggested steps: %s", tag, guide.ExitTagName(tag), focus, timeLabel, steps))
	}
	return strings.Join(lines, "\n")
}

func userSection(settings model.IntentSettings, guide locale.Guide) userPayload {
	offsets := make(map[string]int, len(model.ExitTags))
	for _, tag := range model.ExitTags {
		offsets[string(tag)] = settings.OffsetDays(tag)
	}
	return userPayload{
		Purpose:            string(settings.Purpose),
		PurposeDescription: purposeDescription(settings.Purpose, guide.Language),
		GoalDate:           settings.GoalDateISO,
		RemindersList:      settings.RemindersList,
		Region:             regionPayload{Country: guide.Locale.Country, City: guide.Locale.City},
		SmallItemThreshold: thresholdDescription(settings.SmallItemThreshold, guide.Language),
		Offsets:            offsets,
	}
}

func guidanceSection(purpose model.Purpose, guide locale.Guide) map[string]guidancePayload {
	out := make(map[string]guidancePayload, len(model.ExitTags))
	for _, tag := range model.ExitTags {
		out[string(tag)] = guidancePayload{
			Name:            guide.ExitTagName(tag),
			Focus:           guidanceFocus(tag, purpose, guide.Language),
			ChecklistHints:  guide.Checklist(tag),
			TimeEstimateMin: compose.TimeEstimate(tag),
		}
	}
	return out
}

func linkCatalog(guide locale.Guide) map[string][]string {
	out := make(map[string][]string, len(model.ExitTags))
	for _, tag := range model.ExitTags {
		if links := guide.Links(tag); len(links) > 0 {
			out[string(tag)] = links
		}
	}
	return out
}

func taskSection(guide locale.Guide, blueprints []compose.Blueprint) []taskPayload {
	out := make([]taskPayload, 0, len(blueprints))
	for _, bp := range blueprints {
		out = append(out, taskPayload{
			ID:          bp.ID,
			Label:       bp.DisplayLabel,
			LabelKey:    bp.LabelKey,
			ExitTag:     string(bp.ExitTag),
			ExitTagName: guide.ExitTagName(bp.ExitTag),
			Schedule: schedulePayload{
				OffsetDays:     bp.Schedule.OffsetDays,
				DueAt:          datemath.FormatISO(bp.Schedule.DueDate),
				DueDescription: guide.DueDescription(bp.Schedule.OffsetDays),
			},
			Defaults: defaultsPayload{
				Title:           bp.Title,
				Note:            bp.Note,
				Checklist:       nonNil(bp.Checklist),
				Links:           nonNil(bp.Links),
				TimeEstimateMin: bp.TimeEstimateMin,
				Tip:             bp.Tip,
			},
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
