package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tidy-planner/internal/detection"
	"tidy-planner/internal/enrich"
	"tidy-planner/internal/model"
	"tidy-planner/internal/plan"
	"tidy-planner/internal/remote"
	"tidy-planner/pkg/log"
	"tidy-planner/pkg/openai"
)

const (
	tvID   = "11111111-1111-4111-8111-111111111111"
	sofaID = "22222222-2222-4222-8222-222222222222"
)

var fixedNow = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

type fixedSettings struct {
	s model.IntentSettings
}

func (f fixedSettings) Snapshot() model.IntentSettings { return f.s.Clone() }

func testSettings() model.IntentSettings {
	return model.IntentSettings{
		Purpose:            model.PurposeCleanup,
		GoalDateISO:        "2025-06-01T00:00:00Z",
		Region:             "US",
		RemindersList:      "TidyPlan",
		SmallItemThreshold: model.SmallThresholdDefault,
		MaxTasksPerPhoto:   8,
		Offsets:            model.DefaultOffsets(),
		LLM:                model.LLMConfig{Consent: true, TimeoutSec: 5, Concurrency: 1},
	}
}

func sceneA() *model.DetectionResult {
	return &model.DetectionResult{
		Items: []model.RawDetection{
			{ID: tvID, Label: "TV", Confidence: 0.9, BBox: []float64{0, 0, 0.6, 0.5}},
			{ID: "pen", Label: "pen", Confidence: 0.8, BBox: []float64{0.1, 0.1, 0.02, 0.05}},
		},
		Units: model.BoxUnitsNormalized,
	}
}

func twoItems() *model.DetectionResult {
	return &model.DetectionResult{
		Items: []model.RawDetection{
			{ID: tvID, Label: "TV", Confidence: 0.9, BBox: []float64{0, 0, 0.6, 0.5}},
			{ID: sofaID, Label: "sofa", Confidence: 0.9, BBox: []float64{0.2, 0.4, 0.5, 0.4}},
		},
	}
}

// openAIServer answers every /responses call with handler and counts calls.
func openAIServer(t *testing.T, handler http.HandlerFunc) (openai.IOpenAI, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/responses" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	client, err := openai.New(openai.Config{APIKey: "sk-test", BaseURL: ts.URL, HTTPClient: ts.Client()})
	if err != nil {
		t.Fatalf("openai.New: %v", err)
	}
	return client, &calls
}

type sleeps struct {
	delays []time.Duration
}

func (s *sleeps) sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return ctx.Err()
}

func newUseCase(settings model.IntentSettings, client openai.IOpenAI, sl *sleeps) *implUseCase {
	cfg := Config{
		Settings:          fixedSettings{s: settings},
		EnrichmentEnabled: true,
		Now:               func() time.Time { return fixedNow },
	}
	if client != nil {
		planner := remote.New(log.NewNop(), remote.Config{Client: client, Model: "planner", Timeout: 5 * time.Second})
		opts := enrich.Options{Policy: &enrich.Policy{MaxAttempts: 3}}
		if sl != nil {
			opts.Sleep = sl.sleep
		}
		cfg.Enricher = enrich.NewOrchestrator(log.NewNop(), planner, opts)
	}
	return New(log.NewNop(), cfg)
}

// assertSchedule checks that every due date is goal + offset(tag).
func assertSchedule(t *testing.T, settings model.IntentSettings, tasks []model.TidyTask) {
	t.Helper()
	goal, _ := time.Parse(time.RFC3339, settings.GoalDateISO)
	for _, task := range tasks {
		want := goal.AddDate(0, 0, settings.OffsetDays(task.ExitTag)).UTC().Format(time.RFC3339)
		if task.DueAt != want {
			t.Errorf("task %s (%s) due %s, want %s", task.ID, task.ExitTag, task.DueAt, want)
		}
	}
}

func TestGenerate_SceneA_LocalOnly(t *testing.T) {
	settings := testSettings()
	uc := newUseCase(settings, nil, nil)

	out, err := uc.Generate(context.Background(), plan.GenerateInput{Detections: sceneA(), AllowNetwork: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	tasks := out.Result.Plan.Tasks
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	if tasks[0].ID != tvID || tasks[0].ExitTag != model.ExitTagTrash || tasks[0].DueAt != "2025-05-30T00:00:00Z" {
		t.Errorf("task = %+v", tasks[0])
	}
	if out.Result.Source != model.LocalSource() || out.SkipReason != enrich.SkipMissingAPIKey {
		t.Errorf("source=%+v skip=%s", out.Result.Source, out.SkipReason)
	}
	if out.Result.Plan.Project != "Declutter Project" || out.Result.Plan.Locale.City != "San Francisco" {
		t.Errorf("plan header = %q / %+v", out.Result.Plan.Project, out.Result.Plan.Locale)
	}
}

func TestGenerate_SceneB_EmptyDetections(t *testing.T) {
	client, calls := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no remote call expected")
	})
	uc := newUseCase(testSettings(), client, nil)

	out, err := uc.Generate(context.Background(), plan.GenerateInput{Detections: &model.DetectionResult{}, AllowNetwork: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	tasks := out.Result.Plan.Tasks
	if len(tasks) != 1 || tasks[0].ExitTag != model.ExitTagKeep {
		t.Fatalf("tasks = %+v", tasks)
	}
	if out.Result.Source.Kind != model.SourceLocal || out.SkipReason != enrich.SkipNoDetectedItems {
		t.Errorf("source=%+v skip=%s", out.Result.Source, out.SkipReason)
	}
	if calls.Load() != 0 {
		t.Errorf("calls = %d", calls.Load())
	}
	assertSchedule(t, testSettings(), tasks)
}

func TestGenerate_AllDroppedKeepsFallback(t *testing.T) {
	uc := newUseCase(testSettings(), nil, nil)
	bad := &model.DetectionResult{Items: []model.RawDetection{
		{Label: "", Confidence: 0.9, BBox: []float64{0, 0, 0.5, 0.5}},
		{Label: "chair", Confidence: 0.9, BBox: []float64{0, 0}},
	}}

	out, err := uc.Generate(context.Background(), plan.GenerateInput{Detections: bad})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(out.Result.Plan.Tasks) != 1 || out.Result.Plan.Tasks[0].Title != "Review 2 detected items" {
		t.Errorf("tasks = %+v", out.Result.Plan.Tasks)
	}
	if out.Result.Notice == "" || !out.Detection.AllDropped() {
		t.Errorf("expected all-dropped notice, got %q", out.Result.Notice)
	}
}

func TestGenerate_RemoteMerge(t *testing.T) {
	client, calls := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", "req_77")
		w.Write([]byte(`{"id":"resp_1","status":"completed","output":[{"type":"message","content":[{"type":"output_json","json":{"tasks":[
			{"id":"` + tvID + `","title":"Haul the TV to the curb","category":"electronics","exitTag":"KEEP","checklist":["Unplug"," Unplug "],"tips":"Check pickup day","links":["https://sf.example/pickup"],"estimatedMinutes":99,"note":"Big item.","dueDate":"1999-01-01T00:00:00Z"},
			{"id":"ZZZ","title":"Invented","category":"x","exitTag":"SELL","checklist":[],"tips":"","links":[],"estimatedMinutes":1,"note":""}
		]}}]}]}`))
	})
	settings := testSettings()
	uc := newUseCase(settings, client, nil)

	out, err := uc.Generate(context.Background(), plan.GenerateInput{Detections: twoItems(), AllowNetwork: true, PhotoAssetID: "ph-9"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d", calls.Load())
	}
	if diff := cmp.Diff(model.RemoteSource("req_77"), out.Result.Source); diff != "" {
		t.Errorf("source mismatch (-want +got):\n%s", diff)
	}

	tasks := out.Result.Plan.Tasks
	if len(tasks) != 2 {
		t.Fatalf("got %d tasks: %+v", len(tasks), tasks)
	}
	tv, sofa := tasks[0], tasks[1]
	if tv.ID != tvID || tv.Title != "Haul the TV to the curb" || tv.ExitTag != model.ExitTagTrash || tv.EffortMin != 10 {
		t.Errorf("tv = %+v", tv)
	}
	if diff := cmp.Diff([]string{"Unplug"}, tv.Checklist); diff != "" {
		t.Errorf("checklist mismatch (-want +got):\n%s", diff)
	}
	if sofa.ID != sofaID || sofa.Title != "Trash: Sofa" {
		t.Errorf("sofa = %+v", sofa)
	}
	for _, task := range tasks {
		if task.PhotoAssetID != "ph-9" {
			t.Errorf("task %s missing photo id", task.ID)
		}
	}
	assertSchedule(t, settings, tasks)
}

func TestGenerate_SceneC_RateLimited(t *testing.T) {
	client, calls := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "5")
		w.WriteHeader(http.StatusTooManyRequests)
	})
	settings := testSettings()
	sl := &sleeps{}
	uc := newUseCase(settings, client, sl)

	out, err := uc.Generate(context.Background(), plan.GenerateInput{Detections: sceneA(), AllowNetwork: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if calls.Load() != 3 || out.Attempts != 3 {
		t.Errorf("calls=%d attempts=%d, want 3", calls.Load(), out.Attempts)
	}
	if len(sl.delays) != 2 {
		t.Fatalf("delays = %v", sl.delays)
	}
	for _, d := range sl.delays {
		if d < 5*time.Second {
			t.Errorf("delay %s < 5s", d)
		}
	}
	if out.Result.Source.Kind != model.SourceRateLimited || out.Result.Notice == "" {
		t.Errorf("source=%+v notice=%q", out.Result.Source, out.Result.Notice)
	}

	local := newUseCase(settings, nil, nil)
	want, _ := local.Generate(context.Background(), plan.GenerateInput{Detections: sceneA()})
	if diff := cmp.Diff(want.Result.Plan, out.Result.Plan); diff != "" {
		t.Errorf("rate-limited plan should equal the local plan (-want +got):\n%s", diff)
	}
}

func TestGenerate_SceneE_IncompleteNoRetry(t *testing.T) {
	client, calls := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"resp_2","status":"incomplete","incomplete_details":{"reason":"max_output_tokens"},"output":[]}`))
	})
	uc := newUseCase(testSettings(), client, &sleeps{})

	out, err := uc.Generate(context.Background(), plan.GenerateInput{Detections: sceneA(), AllowNetwork: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
	if out.Result.Source.Kind != model.SourceLocal || out.Result.Plan.Tasks[0].Title != "Trash: Tv" {
		t.Errorf("result = %+v", out.Result)
	}
}

func TestGenerate_ServerErrorFallsBack(t *testing.T) {
	client, calls := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	uc := newUseCase(testSettings(), client, &sleeps{})

	out, err := uc.Generate(context.Background(), plan.GenerateInput{Detections: sceneA(), AllowNetwork: true})
	if err != nil || calls.Load() != 1 || out.Result.Source.Kind != model.SourceLocal {
		t.Errorf("err=%v calls=%d source=%+v", err, calls.Load(), out.Result.Source)
	}
}

func TestGenerate_SkipReasons(t *testing.T) {
	client, calls := openAIServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no remote call expected")
	})

	noConsent := testSettings()
	noConsent.LLM.Consent = false

	tests := []struct {
		name     string
		settings model.IntentSettings
		network  bool
		disable  bool
		want     enrich.SkipReason
	}{
		{name: "feature off", settings: testSettings(), network: true, disable: true, want: enrich.SkipFeatureOff},
		{name: "consent off", settings: noConsent, network: true, want: enrich.SkipConsentOff},
		{name: "network disallowed", settings: testSettings(), network: false, want: enrich.SkipNetworkDisallowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.settings, client, nil)
			uc.enrichmentEnabled = !tt.disable
			out, err := uc.Generate(context.Background(), plan.GenerateInput{Detections: sceneA(), AllowNetwork: tt.network})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if out.SkipReason != tt.want || out.Result.Source.Kind != model.SourceLocal {
				t.Errorf("skip=%s source=%+v", out.SkipReason, out.Result.Source)
			}
		})
	}
	if calls.Load() != 0 {
		t.Errorf("calls = %d", calls.Load())
	}
}

type stubDetector struct {
	result model.DetectionResult
	err    error
	calls  int
}

func (s *stubDetector) Detect(context.Context, detection.Image, model.IntentSettings) (model.DetectionResult, error) {
	s.calls++
	return s.result, s.err
}

func TestGenerate_ImageDetection(t *testing.T) {
	img := &detection.Image{Data: []byte{0xff, 0xd8}, MIMEType: "image/jpeg"}

	t.Run("network off", func(t *testing.T) {
		det := &stubDetector{}
		uc := newUseCase(testSettings(), nil, nil)
		uc.detector = det
		out, err := uc.Generate(context.Background(), plan.GenerateInput{Image: img})
		if err != nil {
			t.Fatal(err)
		}
		if det.calls != 0 || out.Result.Notice == "" || out.Result.Plan.Tasks[0].ExitTag != model.ExitTagKeep {
			t.Errorf("calls=%d result=%+v", det.calls, out.Result)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		uc := newUseCase(testSettings(), nil, nil)
		out, err := uc.Generate(context.Background(), plan.GenerateInput{Image: img, AllowNetwork: true})
		if err != nil {
			t.Fatal(err)
		}
		if out.Result.Notice != "No OpenAI API key is configured, showing a local plan only." {
			t.Errorf("notice = %q", out.Result.Notice)
		}
	})

	t.Run("cooling down", func(t *testing.T) {
		uc := newUseCase(testSettings(), nil, nil)
		uc.detector = &stubDetector{err: &detection.CoolingDownError{Remaining: 7 * time.Second}}
		out, err := uc.Generate(context.Background(), plan.GenerateInput{Image: img, AllowNetwork: true})
		if err != nil {
			t.Fatal(err)
		}
		if out.Result.Notice != "AI detection is rate limited. Try again in about 7 seconds." {
			t.Errorf("notice = %q", out.Result.Notice)
		}
	})

	t.Run("detections used", func(t *testing.T) {
		uc := newUseCase(testSettings(), nil, nil)
		uc.detector = &stubDetector{result: *sceneA()}
		out, err := uc.Generate(context.Background(), plan.GenerateInput{Image: img, AllowNetwork: true})
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Result.Plan.Tasks) != 1 || out.Result.Plan.Tasks[0].ID != tvID || out.Result.Notice != "" {
			t.Errorf("result = %+v", out.Result)
		}
	})

	t.Run("generic failure", func(t *testing.T) {
		uc := newUseCase(testSettings(), nil, nil)
		uc.detector = &stubDetector{err: errors.New("boom")}
		out, err := uc.Generate(context.Background(), plan.GenerateInput{Image: img, AllowNetwork: true})
		if err != nil {
			t.Fatal(err)
		}
		if out.Result.Notice != "Remote detection failed." {
			t.Errorf("notice = %q", out.Result.Notice)
		}
	})
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	uc := newUseCase(testSettings(), nil, nil)
	if _, err := uc.Generate(ctx, plan.GenerateInput{Detections: sceneA()}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGenerate_JapaneseRegion(t *testing.T) {
	settings := testSettings()
	settings.Region = "JP"
	uc := newUseCase(settings, nil, nil)

	out, err := uc.Generate(context.Background(), plan.GenerateInput{Detections: sceneA()})
	if err != nil {
		t.Fatal(err)
	}
	if out.Result.Plan.Project != "片付けプロジェクト" || out.Result.Plan.Tasks[0].Title != "捨てる：テレビ" {
		t.Errorf("plan = %+v", out.Result.Plan)
	}
}
