package plan

import (
	"context"
)

// UseCase turns a photo or its detections into a disposal plan and exports plans.
type UseCase interface {
	// Generate runs the planning pipeline. Degraded paths (detector failure,
	// enrichment skipped, remote failure) still produce a plan; the only
	// error is context cancellation.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)

	// Export writes the selected tasks of a plan into the configured sink.
	Export(ctx context.Context, input ExportInput) (ExportOutput, error)
}
