package detection

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tidy-planner/internal/model"
	"tidy-planner/pkg/log"
	"tidy-planner/pkg/openai"
)

type mockClient struct {
	calls int
	last  *openai.Request
	resp  *openai.Response
	err   error
}

func (m *mockClient) CreateResponse(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	m.calls++
	m.last = req
	return m.resp, m.err
}

func (m *mockClient) Model() string { return "mock" }

func envelopeWith(t *testing.T, raw string) *openai.Response {
	t.Helper()
	var env openai.Envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &openai.Response{Envelope: env, RequestID: "req_1"}
}

func TestRemoteDetect_Success(t *testing.T) {
	client := &mockClient{resp: envelopeWith(t, `{"output":[{"content":[{"type":"output_json","json":{"items":[{"id":"x","label":"TV","bbox":[0.1,0.1,0.5,0.5],"confidence":0.9}]}}]}]}`)}
	d := NewRemote(log.NewNop(), RemoteConfig{Client: client, Model: "vision"})

	res, err := d.Detect(context.Background(), Image{Data: []byte("jpeg-bytes")}, model.IntentSettings{MaxTasksPerPhoto: 8})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].Label != "TV" {
		t.Errorf("items = %+v", res.Items)
	}
	if res.Units != model.BoxUnitsNormalized || res.UsedFallback {
		t.Errorf("unexpected result %+v", res)
	}
	if client.last.MaxOutputTokens != 1280 {
		t.Errorf("MaxOutputTokens = %d, want 1280", client.last.MaxOutputTokens)
	}
	if client.last.Reasoning == nil || client.last.Reasoning.Effort != "low" {
		t.Errorf("Reasoning = %+v", client.last.Reasoning)
	}
	if got := client.last.Input[1].Content[1]; got.Type != openai.InputImage || got.ImageURL[:23] != "data:image/jpeg;base64," {
		t.Errorf("image content = %+v", got)
	}
}

func TestRemoteDetect_TokenFloor(t *testing.T) {
	client := &mockClient{resp: envelopeWith(t, `{"output":[{"content":[{"type":"output_json","json":{"items":[]}}]}]}`)}
	d := NewRemote(log.NewNop(), RemoteConfig{Client: client})
	res, err := d.Detect(context.Background(), Image{Data: []byte("x")}, model.IntentSettings{MaxTasksPerPhoto: 4})
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	if client.last.MaxOutputTokens != 1000 {
		t.Errorf("MaxOutputTokens = %d, want 1000", client.last.MaxOutputTokens)
	}
	if !res.UsedFallback {
		t.Errorf("empty reply should be flagged as fallback")
	}
}

func TestRemoteDetect_RateLimitStartsCooldown(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cooldown := NewCooldown(func() time.Time { return now })
	client := &mockClient{err: &openai.RateLimitError{RetryAfter: 2 * time.Second, HasRetryAfter: true}}
	d := NewRemote(log.NewNop(), RemoteConfig{Client: client, Cooldown: cooldown})

	if _, err := d.Detect(context.Background(), Image{Data: []byte("x")}, model.IntentSettings{}); !errors.Is(err, openai.ErrRateLimited) {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if got := cooldown.Remaining(); got != 5*time.Second {
		t.Errorf("Remaining = %s, want 5s floor", got)
	}

	_, err := d.Detect(context.Background(), Image{Data: []byte("x")}, model.IntentSettings{})
	var cd *CoolingDownError
	if !errors.As(err, &cd) {
		t.Fatalf("expected CoolingDownError, got %v", err)
	}
	if client.calls != 1 {
		t.Errorf("calls = %d, remote must not be hit during cooldown", client.calls)
	}

	now = now.Add(6 * time.Second)
	client.err = nil
	client.resp = envelopeWith(t, `{"output":[{"content":[{"type":"output_json","json":{"items":[]}}]}]}`)
	if _, err := d.Detect(context.Background(), Image{Data: []byte("x")}, model.IntentSettings{}); err != nil {
		t.Fatalf("Detect() after cooldown: %v", err)
	}
}

func TestRemoteDetect_InvalidReply(t *testing.T) {
	client := &mockClient{resp: envelopeWith(t, `{"output":[{"content":[{"type":"refusal","refusal":"no"}]}]}`)}
	d := NewRemote(log.NewNop(), RemoteConfig{Client: client})
	if _, err := d.Detect(context.Background(), Image{Data: []byte("x")}, model.IntentSettings{}); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestRemoteDetect_EmptyImage(t *testing.T) {
	client := &mockClient{}
	d := NewRemote(log.NewNop(), RemoteConfig{Client: client})
	if _, err := d.Detect(context.Background(), Image{}, model.IntentSettings{}); !errors.Is(err, ErrImageEncoding) {
		t.Fatalf("expected ErrImageEncoding, got %v", err)
	}
	if client.calls != 0 {
		t.Errorf("calls = %d", client.calls)
	}
}

func TestCooldownDefault(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewCooldown(func() time.Time { return now })
	if c.Remaining() != 0 {
		t.Fatalf("fresh cooldown should be idle")
	}
	if got := c.Register(0, false); got != 10*time.Second {
		t.Errorf("Register() = %s, want 10s", got)
	}
	if got := c.Register(30*time.Second, true); got != 30*time.Second {
		t.Errorf("Register() = %s, want 30s", got)
	}
}

func TestStaticDetect(t *testing.T) {
	s := Static{Items: []model.RawDetection{{Label: "a"}}}
	res, err := s.Detect(context.Background(), Image{}, model.IntentSettings{})
	if err != nil || len(res.Items) != 1 || res.Units != model.BoxUnitsNormalized {
		t.Fatalf("Detect() = %+v, %v", res, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Detect(ctx, Image{}, model.IntentSettings{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
