package attendance

import (
	"testing"
)

func TestOTEligible(t *testing.T) {
	cases := []struct {
		status Status
		period Period
		want   bool
	}{
		{StatusPresent, PeriodAfternoon, true},
		{StatusPresent, PeriodMorning, false},
		{StatusSickLeave, PeriodAfternoon, false},
		{StatusSickLeave, PeriodMorning, false},
		{StatusPersonalLeave, PeriodAfternoon, false},
		{StatusPersonalLeave, PeriodMorning, false},
		{StatusAbsent, PeriodAfternoon, false},
		{StatusAbsent, PeriodMorning, false},
	}
	for _, c := range cases {
		got := OTEligible(c.status, c.period)
		if got != c.want {
			t.Errorf("OTEligible(%q, %q) = %v, want %v", c.status, c.period, got, c.want)
		}
	}
}

func TestAggregate(t *testing.T) {
	recs := []Record{
		{Status: StatusPresent},
		{Status: StatusPresent, OT: true},
		{Status: StatusSickLeave},
		{Status: StatusAbsent},
		{Status: StatusAbsent},
	}

	got := Aggregate(recs)

	want := Counter{Present: 2, Sick: 1, Leave: 0, Absent: 2, OT: 1, Total: 5}
	if got != want {
		t.Errorf("Aggregate() = %+v, want %+v", got, want)
	}
}

func TestAggregateCountsOTRegardlessOfStatus(t *testing.T) {
	// A stale overtime flag on an ineligible row still counts in the OT
	// bucket; aggregation reports what is stored, it does not re-derive.
	recs := []Record{
		{Status: StatusSickLeave, OT: true},
		{Status: StatusAbsent, OT: true},
	}

	got := Aggregate(recs)
	if got.OT != 2 {
		t.Errorf("Aggregate().OT = %d, want 2", got.OT)
	}
}

func TestAggregateUnknownStatus(t *testing.T) {
	recs := []Record{
		{Status: StatusPresent},
		{Status: Status("vacation")},
	}

	got := Aggregate(recs)

	if got.Unknown != 1 {
		t.Errorf("Aggregate().Unknown = %d, want 1", got.Unknown)
	}
	if got.Total != 2 {
		t.Errorf("Aggregate().Total = %d, want 2", got.Total)
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if got != (Counter{}) {
		t.Errorf("Aggregate(nil) = %+v, want zero counter", got)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("Status(%q).Valid() = false, want true", s)
		}
	}
	if Status("late").Valid() {
		t.Error(`Status("late").Valid() = true, want false`)
	}
}

func TestPeriodOrder(t *testing.T) {
	if PeriodMorning.Order() >= PeriodAfternoon.Order() {
		t.Error("morning must sort before afternoon")
	}
}
