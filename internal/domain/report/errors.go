package report

import "errors"

var (
	ErrNoAttendanceData = errors.New("no attendance data for the selected range")
)
