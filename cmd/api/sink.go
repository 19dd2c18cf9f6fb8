package main

import (
	"context"
	"net/http"
	"time"

	"tidy-planner/config"
	"tidy-planner/internal/export"
	gtasksSink "tidy-planner/internal/export/gtasks"
	memosSink "tidy-planner/internal/export/memos"
	"tidy-planner/pkg/gtasks"
	"tidy-planner/pkg/log"
)

const memosTimeout = 15 * time.Second

// newSink builds the configured export sink. It returns nil, nil when export is off.
func newSink(ctx context.Context, l log.Logger, cfg *config.Config) (export.Sink, error) {
	switch cfg.Export.Sink {
	case config.SinkGoogleTasks:
		client, err := gtasks.NewFromCredentialsFile(ctx, cfg.GoogleTasks.CredentialsPath, gtasks.Config{
			TokenPath:         cfg.GoogleTasks.TokenPath,
			RequestsPerSecond: cfg.Export.RequestsPerSecond,
		})
		if err != nil {
			return nil, err
		}
		return gtasksSink.New(l, client, cfg.Export.ListCacheTTL), nil
	case config.SinkMemos:
		client := memosSink.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken, &http.Client{Timeout: memosTimeout})
		return memosSink.New(l, client), nil
	case config.SinkNone:
		return nil, nil
	}
	return nil, export.ErrUnknownSink
}
