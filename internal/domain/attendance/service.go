package attendance

import (
	"context"
)

// Service is the attendance capture and edit contract. Capture is a one-time
// batch insert guarded by a duplicate check; edits go through the
// re-authentication gate and mutate row by row.
type Service interface {
	LoadRoster(ctx context.Context, department string, period Period) ([]RosterRow, error)
	Save(ctx context.Context, req SaveRequest) (SaveResponse, error)

	RequestEditAccess(ctx context.Context, password string) (EditAccessResponse, error)
	LoadEditableRows(ctx context.Context, date, department string, period Period) ([]RosterRow, error)
	CommitEdits(ctx context.Context, req CommitEditsRequest) (CommitEditsResponse, error)
}
