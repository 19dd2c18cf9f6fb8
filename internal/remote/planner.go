package remote

import (
	"context"

	"tidy-planner/internal/model"
	"tidy-planner/internal/prompt"
	"tidy-planner/pkg/log"
	"tidy-planner/pkg/openai"
)

type implPlanner struct {
	l   log.Logger
	cfg Config
}

// GenerateTasks implements Planner.
func (p *implPlanner) GenerateTasks(ctx context.Context, req Request) (Result, error) {
	timeout := p.cfg.Timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	resp, err := p.cfg.Client.CreateResponse(ctx, p.buildRequest(req.Prompts))
	if err != nil {
		return Result{}, err
	}

	var plan remotePlan
	report, err := resp.Envelope.Decode(&plan)
	if len(report.UnhandledTypes) > 0 {
		p.l.Infof(ctx, "remote.GenerateTasks: request_id=%s unhandled content types=%v", resp.RequestID, report.UnhandledTypes)
	}
	if len(report.Refusals) > 0 {
		p.l.Warnf(ctx, "remote.GenerateTasks: request_id=%s refusal=%q", resp.RequestID, report.Refusals[0])
	}
	if err != nil {
		p.l.Errorf(ctx, "remote.GenerateTasks: request_id=%s sample=%q: %v", resp.RequestID, report.TextSample, err)
		return Result{}, err
	}

	result := Result{RequestID: resp.RequestID, Tasks: make([]model.TidyTask, 0, len(plan.Tasks))}
	for _, rt := range plan.Tasks {
		tag, ok := model.ParseExitTag(rt.ExitTag)
		if !ok {
			result.Dropped++
			p.l.Warnf(ctx, "remote.GenerateTasks: dropping task id=%s with unknown exitTag=%q", rt.ID, rt.ExitTag)
			continue
		}
		result.Tasks = append(result.Tasks, model.TidyTask{
			ID:        rt.ID,
			Title:     rt.Title,
			Category:  rt.Category,
			Note:      rt.Note,
			Tips:      rt.Tips,
			ExitTag:   tag,
			EffortMin: rt.EstimatedMinutes,
			Checklist: rt.Checklist,
			Links:     rt.Links,
			// Remote dates are never trusted.
			DueAt: req.Scheduler.DueAt(tag),
		})
	}

	p.l.Infof(ctx, "remote.GenerateTasks: request_id=%s tasks=%d dropped=%d", result.RequestID, len(result.Tasks), result.Dropped)
	return result, nil
}

func (p *implPlanner) buildRequest(pr prompt.Prompts) *openai.Request {
	effort := p.cfg.ReasoningEffort
	if effort == "" {
		effort = openai.DefaultReasoningEffort
	}
	return &openai.Request{
		Model: p.cfg.Model,
		Input: []openai.Message{
			openai.TextMessage(openai.RoleSystem, pr.System),
			openai.TextMessage(openai.RoleDeveloper, pr.Developer),
			openai.TextMessage(openai.RoleUser, pr.Data),
		},
		Text:            openai.JSONSchemaFormat(prompt.SchemaName, pr.Schema),
		MaxOutputTokens: p.tokenBudget(pr.ItemCount),
		Reasoning:       &openai.Reasoning{Effort: effort},
	}
}

func (p *implPlanner) tokenBudget(items int) int {
	return min(max(minOutputTokens, items*tokensPerTask), p.cfg.MaxOutputTokens)
}
