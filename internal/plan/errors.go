package plan

import "errors"

var (
	ErrExportDisabled  = errors.New("no export sink configured")
	ErrNoTasksSelected = errors.New("no tasks selected for export")
)
