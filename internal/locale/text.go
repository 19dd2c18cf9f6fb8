package locale

import (
	"fmt"
	"strings"
	"time"
)

var japaneseLabels = map[string]string{
	"television":   "テレビ",
	"tv":           "テレビ",
	"soundbar":     "サウンドバー",
	"sound bar":    "サウンドバー",
	"coffee table": "コーヒーテーブル",
	"side table":   "サイドテーブル",
	"floor lamp":   "フロアランプ",
	"lamp":         "ランプ",
	"sofa":         "ソファ",
	"couch":        "ソファ",
	"chair":        "椅子",
	"table":        "テーブル",
	"desk":         "デスク",
	"bed":          "ベッド",
	"bookshelf":    "本棚",
	"cabinet":      "キャビネット",
	"dresser":      "ドレッサー",
	"mirror":       "鏡",
	"rug":          "ラグ",
	"carpet":       "カーペット",
	"curtain":      "カーテン",
	"plant":        "観葉植物",
	"picture":      "絵画",
	"clock":        "時計",
	"vase":         "花瓶",
	"box":          "箱",
	"basket":       "バスケット",
}

// DisplayLabel translates common furniture labels for Japanese plans.
func (g Guide) DisplayLabel(label string) string {
	if !g.IsJapanese() {
		return label
	}
	if ja, ok := japaneseLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return ja
	}
	return label
}

// DueDescription phrases an offset relative to the goal date.
func (g Guide) DueDescription(offsetDays int) string {
	abs := offsetDays
	if abs < 0 {
		abs = -abs
	}
	if g.IsJapanese() {
		if offsetDays == 0 {
			return "ゴール当日に実行"
		}
		direction := "後"
		if offsetDays < 0 {
			direction = "前"
		}
		return fmt.Sprintf("ゴール%d日%sに実行 (%s)", abs, direction, g.Locale.City)
	}
	if offsetDays == 0 {
		return "On goal date"
	}
	unit := "days"
	if abs == 1 {
		unit = "day"
	}
	direction := "after"
	if offsetDays < 0 {
		direction = "before"
	}
	return fmt.Sprintf("%d %s %s goal (%s)", abs, unit, direction, g.Locale.City)
}

// TimeEstimateLabel renders a duration in minutes.
func (g Guide) TimeEstimateLabel(minutes int) string {
	if g.IsJapanese() {
		return fmt.Sprintf("約%d分", minutes)
	}
	return fmt.Sprintf("~%d min", minutes)
}

// CooldownNotice is shown while remote detection waits out a 429.
func (g Guide) CooldownNotice(remaining time.Duration) string {
	secs := int(remaining.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	if g.IsJapanese() {
		return fmt.Sprintf("AI検出がレート制限中です。約%d秒後に再試行してください。", secs)
	}
	return fmt.Sprintf("AI detection is rate limited. Try again in about %d seconds.", secs)
}

// DetectionOffNotice is shown when remote detection is not allowed.
func (g Guide) DetectionOffNotice() string {
	if g.IsJapanese() {
		return "AI検出がオフのため、ローカルプランを表示しています。"
	}
	return "AI detection is off, showing a local plan."
}

// MissingKeyNotice is shown when no API key is configured.
func (g Guide) MissingKeyNotice() string {
	if g.IsJapanese() {
		return "OpenAI APIキーが設定されていないため、ローカルプランのみ表示します。"
	}
	return "No OpenAI API key is configured, showing a local plan only."
}

// DetectionFailedNotice is shown for any other detector failure.
func (g Guide) DetectionFailedNotice() string {
	if g.IsJapanese() {
		return "遠隔検出に失敗しました。"
	}
	return "Remote detection failed."
}

// AllDroppedNotice is shown when the detector returned only unusable records.
func (g Guide) AllDroppedNotice(count int) string {
	if g.IsJapanese() {
		return fmt.Sprintf("検出結果%d件をすべて読み取れませんでした。", count)
	}
	return fmt.Sprintf("None of the %d detections could be used.", count)
}

// RateLimitedNotice is shown when enrichment gave up after repeated 429s.
func (g Guide) RateLimitedNotice() string {
	if g.IsJapanese() {
		return "AIの利用が混み合っています。しばらくしてから再試行してください。"
	}
	return "AI enrichment is busy right now. Try again shortly."
}
