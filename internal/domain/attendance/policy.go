package attendance

// Status is the attendance status of a single roster entry. StatusPresent is
// the distinguished first value: it is the only status that can ever carry
// overtime.
type Status string

const (
	StatusPresent       Status = "present"
	StatusSickLeave     Status = "sick_leave"
	StatusPersonalLeave Status = "personal_leave"
	StatusAbsent        Status = "absent"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusPresent, StatusSickLeave, StatusPersonalLeave, StatusAbsent}

// Thai display labels, matching what the office staff see on screen and in
// exported sheets.
var statusLabels = map[Status]string{
	StatusPresent:       "มา",
	StatusSickLeave:     "ลาป่วย",
	StatusPersonalLeave: "ลากิจ",
	StatusAbsent:        "ขาด",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Period is the half-day attendance window.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

var periodLabels = map[Period]string{
	PeriodMorning:   "ช่วงเช้า",
	PeriodAfternoon: "ช่วงบ่าย",
}

func (p Period) Valid() bool {
	_, ok := periodLabels[p]
	return ok
}

func (p Period) Label() string {
	if label, ok := periodLabels[p]; ok {
		return label
	}
	return string(p)
}

// Order returns the sort rank of the period within a day (morning before
// afternoon). Unknown periods sort last.
func (p Period) Order() int {
	switch p {
	case PeriodMorning:
		return 1
	case PeriodAfternoon:
		return 2
	default:
		return 99
	}
}

// OTEligible reports whether a record with the given status and period may
// carry the overtime flag. Overtime is only meaningful for employees who are
// present in the afternoon; capture and edit both force the flag false in
// every other case, regardless of what the client sent.
func OTEligible(status Status, period Period) bool {
	return status == StatusPresent && period == PeriodAfternoon
}

// Counter holds per-status counts for a set of attendance records. It is
// derived on every aggregation call and never persisted.
type Counter struct {
	Present int `json:"present"`
	Sick    int `json:"sick"`
	Leave   int `json:"leave"`
	Absent  int `json:"absent"`
	OT      int `json:"ot"`
	Unknown int `json:"unknown,omitempty"`
	Total   int `json:"total"`
}

// Add folds one record into the counter. Statuses outside the known set are
// counted under Unknown rather than dropped, so the total always matches the
// number of rows seen.
func (c *Counter) Add(rec Record) {
	switch rec.Status {
	case StatusPresent:
		c.Present++
	case StatusSickLeave:
		c.Sick++
	case StatusPersonalLeave:
		c.Leave++
	case StatusAbsent:
		c.Absent++
	default:
		c.Unknown++
	}
	if rec.OT {
		c.OT++
	}
	c.Total++
}

// Aggregate reduces a row set into a Counter. Deterministic and
// order-independent.
func Aggregate(recs []Record) Counter {
	var c Counter
	for _, rec := range recs {
		c.Add(rec)
	}
	return c
}
