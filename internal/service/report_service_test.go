package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"campus-events/internal/dto"
)

type fakeReportRepo struct {
	calls int
}

func (f *fakeReportRepo) EventRegistrations(_ context.Context) ([]dto.EventRegistrationsRow, error) {
	f.calls++
	return []dto.EventRegistrationsRow{
		{ID: 1, EventName: "Hack Night", Type: "hackathon", Date: time.Now(), CollegeName: "MIT", TotalRegistrations: 12},
		{ID: 2, EventName: "Tech Expo", Type: "fest", Date: time.Now(), CollegeName: "MIT", TotalRegistrations: 4},
	}, nil
}

func (f *fakeReportRepo) EventAttendance(_ context.Context) ([]dto.EventAttendanceRow, error) {
	f.calls++
	pct := 75.0
	return []dto.EventAttendanceRow{
		{ID: 1, EventName: "Hack Night", TotalRegistrations: 4, AttendanceMarked: 3, PresentCount: 2, LateCount: 1, AttendancePercentage: &pct},
		{ID: 2, EventName: "Ghost Town", TotalRegistrations: 0},
	}, nil
}

func (f *fakeReportRepo) EventFeedback(_ context.Context) ([]dto.EventFeedbackRow, error) {
	f.calls++
	return []dto.EventFeedbackRow{}, nil
}

func (f *fakeReportRepo) PopularEvents(_ context.Context) ([]dto.PopularEventRow, error) {
	f.calls++
	return []dto.PopularEventRow{}, nil
}

func (f *fakeReportRepo) StudentParticipation(_ context.Context) ([]dto.StudentParticipationRow, error) {
	f.calls++
	return []dto.StudentParticipationRow{}, nil
}

func (f *fakeReportRepo) TopStudents(_ context.Context) ([]dto.TopStudentRow, error) {
	f.calls++
	return []dto.TopStudentRow{
		{ID: 1, StudentName: "Ana", TotalRegistrations: 9},
		{ID: 2, StudentName: "Ben", TotalRegistrations: 7},
		{ID: 3, StudentName: "Cleo", TotalRegistrations: 5},
	}, nil
}

func (f *fakeReportRepo) CollegeStats(_ context.Context) ([]dto.CollegeStatsRow, error) {
	f.calls++
	return []dto.CollegeStatsRow{}, nil
}

func generate(t *testing.T, svc ReportService, name string) dto.Report {
	t.Helper()
	payload, err := svc.Generate(context.Background(), name)
	if err != nil {
		t.Fatalf("Generate(%s) returned error: %v", name, err)
	}
	var report dto.Report
	if err := json.Unmarshal(payload, &report); err != nil {
		t.Fatalf("Generate(%s) produced invalid JSON: %v", name, err)
	}
	return report
}

func TestReportLabelsAndCounts(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, nil)

	cases := []struct {
		name  string
		label string
		count int
	}{
		{ReportEventRegistrations, "Event Registrations", 2},
		{ReportAttendance, "Event Attendance", 2},
		{ReportFeedback, "Event Feedback", 0},
		{ReportPopularEvents, "Popular Events", 0},
		{ReportStudentParticipation, "Student Participation", 0},
		{ReportTopStudents, "Top 3 Most Active Students", 3},
		{ReportCollegeStats, "College Statistics", 0},
	}
	for _, tc := range cases {
		report := generate(t, svc, tc.name)
		if report.Report != tc.label {
			t.Errorf("%s: expected label %q, got %q", tc.name, tc.label, report.Report)
		}
		if report.Count != tc.count {
			t.Errorf("%s: expected count %d, got %d", tc.name, tc.count, report.Count)
		}
	}
}

func TestReportEmptyDataIsArray(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, nil)

	payload, err := svc.Generate(context.Background(), ReportFeedback)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if string(raw["data"]) != "[]" {
		t.Errorf("expected empty data to serialize as [], got %s", raw["data"])
	}
}

func TestReportNullPercentageForZeroRegistrations(t *testing.T) {
	report := generate(t, NewReportService(&fakeReportRepo{}, nil), ReportAttendance)

	rows, ok := report.Data.([]interface{})
	if !ok || len(rows) != 2 {
		t.Fatalf("expected 2 attendance rows, got %v", report.Data)
	}
	second, ok := rows[1].(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected row shape: %v", rows[1])
	}
	if second["attendance_percentage"] != nil {
		t.Errorf("expected null percentage for zero registrations, got %v", second["attendance_percentage"])
	}
}

func TestReportUnknownName(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{}, nil)

	if _, err := svc.Generate(context.Background(), "made-up"); err == nil {
		t.Error("expected an error for an unknown report name")
	}
}
