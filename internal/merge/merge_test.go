package merge

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tidy-planner/internal/model"
)

func localTasks() []model.TidyTask {
	return []model.TidyTask{
		{
			ID: "A", Title: "Sell: Tv", Note: "local note", ExitTag: model.ExitTagSell, Priority: 3, EffortMin: 25,
			Labels: []string{"tv"}, Checklist: []string{"photo"}, Links: []string{"https://a"}, DueAt: "2025-05-25T00:00:00Z",
		},
		{
			ID: "B", Title: "Trash: Box", ExitTag: model.ExitTagTrash, Priority: 4, EffortMin: 10,
			Labels: []string{"box"}, DueAt: "2025-05-30T00:00:00Z",
		},
	}
}

func TestMergeKeepsLocalSchedule(t *testing.T) {
	local := localTasks()
	remote := []model.TidyTask{{
		ID: "A", Title: "  Sell your TV fast  ", Note: " Worth $200. ", ExitTag: model.ExitTagKeep, Priority: 1, EffortMin: 99,
		Checklist: []string{" Check model ", "Check model", "", "Take photos"}, Links: []string{"https://b", "https://b "},
		DueAt: "1999-01-01T00:00:00Z", Category: "electronics", Tips: "Include model number",
	}}

	got := Merge(remote, local)
	if len(got) != 2 {
		t.Fatalf("got %d tasks", len(got))
	}
	want := model.TidyTask{
		ID: "A", Title: "Sell your TV fast", Note: "Worth $200.", Category: "electronics", Tips: "Include model number",
		ExitTag: model.ExitTagSell, Priority: 3, EffortMin: 25, Labels: []string{"tv"},
		Checklist: []string{"Check model", "Take photos"}, Links: []string{"https://b"}, DueAt: "2025-05-25T00:00:00Z",
	}
	if diff := cmp.Diff(want, got[0]); diff != "" {
		t.Errorf("merged task mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(local[1], got[1]); diff != "" {
		t.Errorf("unmatched local task changed (-want +got):\n%s", diff)
	}
}

func TestMergeFallsBackToLocalContent(t *testing.T) {
	remote := []model.TidyTask{{ID: "A", Title: "   ", Note: "  \n", Checklist: []string{" "}}}
	got := Merge(remote, localTasks())
	if got[0].Title != "Sell: Tv" || got[0].Note != "local note" {
		t.Errorf("title/note = %q/%q", got[0].Title, got[0].Note)
	}
	if diff := cmp.Diff([]string{"photo"}, got[0].Checklist); diff != "" {
		t.Errorf("checklist mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeEmptyRemoteNoteStaysAbsent(t *testing.T) {
	remote := []model.TidyTask{{ID: "B", Title: "Toss the box", Note: "   "}}
	got := Merge(remote, localTasks())
	var b model.TidyTask
	for _, task := range got {
		if task.ID == "B" {
			b = task
		}
	}
	if b.Note != "" {
		t.Errorf("Note = %q, want absent", b.Note)
	}
}

func TestMergeDropsUnknownIDs(t *testing.T) {
	remote := []model.TidyTask{{ID: "ZZZ", Title: "Invented"}}
	local := localTasks()
	got := Merge(remote, local)
	if diff := cmp.Diff(local, got); diff != "" {
		t.Errorf("local set should pass through (-want +got):\n%s", diff)
	}
}

func TestMergeOrderAndDuplicates(t *testing.T) {
	remote := []model.TidyTask{{ID: "B", Title: "b1"}, {ID: "B", Title: "b2"}, {ID: "A", Title: "a1"}}
	got := Merge(remote, localTasks())
	titles := []string{got[0].Title, got[1].Title}
	if diff := cmp.Diff([]string{"b1", "a1"}, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
	if len(got) != 2 {
		t.Errorf("duplicate remote id must not duplicate tasks: %d", len(got))
	}
}

func TestMergeNeverEmpty(t *testing.T) {
	local := localTasks()
	if got := Merge(nil, local); len(got) != len(local) {
		t.Errorf("Merge(nil) = %d tasks", len(got))
	}
}

func TestMergeCapsTitle(t *testing.T) {
	remote := []model.TidyTask{{ID: "A", Title: strings.Repeat("あ", 100)}}
	got := Merge(remote, localTasks())
	if n := len([]rune(got[0].Title)); n != MaxTitleRunes {
		t.Errorf("title runes = %d", n)
	}
}

func TestMergeIDStability(t *testing.T) {
	local := localTasks()
	remote := []model.TidyTask{
		{ID: "A", Title: "x", ExitTag: model.ExitTagGive, Priority: 1, EffortMin: 1, DueAt: "2000-01-01T00:00:00Z"},
		{ID: "B", Title: "y", ExitTag: model.ExitTagKeep, Priority: 2, EffortMin: 2, DueAt: "2000-01-01T00:00:00Z"},
	}
	got := Merge(remote, local)
	byID := map[string]model.TidyTask{}
	for _, task := range got {
		byID[task.ID] = task
	}
	for _, l := range local {
		m, ok := byID[l.ID]
		if !ok {
			t.Fatalf("id %s missing", l.ID)
		}
		if m.ExitTag != l.ExitTag || m.Priority != l.Priority || m.EffortMin != l.EffortMin || m.DueAt != l.DueAt {
			t.Errorf("id %s: schedule fields changed: %+v", l.ID, m)
		}
	}
}

func TestValidate(t *testing.T) {
	tasks := []model.TidyTask{{ID: "a", Title: "x"}, {ID: "", Title: "y"}, {ID: "c", Title: ""}, {ID: "d", Title: "z"}}
	once := Validate(tasks)
	if len(once) != 2 || once[0].ID != "a" || once[1].ID != "d" {
		t.Fatalf("Validate() = %+v", once)
	}
	if diff := cmp.Diff(once, Validate(once)); diff != "" {
		t.Errorf("Validate is not idempotent (-once +twice):\n%s", diff)
	}
}
