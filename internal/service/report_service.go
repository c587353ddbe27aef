package service

import (
	"context"
	"encoding/json"
	"fmt"

	"campus-events/internal/dto"
	"campus-events/internal/repository"
	"campus-events/pkg/cache"
)

// Report names, matching the URL path segments under /reports.
const (
	ReportEventRegistrations   = "event-registrations"
	ReportAttendance           = "attendance"
	ReportFeedback             = "feedback"
	ReportPopularEvents        = "popular-events"
	ReportStudentParticipation = "student-participation"
	ReportTopStudents          = "top-students"
	ReportCollegeStats         = "college-stats"
)

type ReportService interface {
	// Generate returns the serialized report body, ready to write as
	// application/json.
	Generate(ctx context.Context, name string) ([]byte, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	cache      *cache.ReportCache
}

func NewReportService(reportRepo repository.ReportRepository, reportCache *cache.ReportCache) ReportService {
	return &reportService{reportRepo: reportRepo, cache: reportCache}
}

func (s *reportService) Generate(ctx context.Context, name string) ([]byte, error) {
	if payload, ok := s.cache.Get(ctx, name); ok {
		return payload, nil
	}

	label, rows, count, err := s.run(ctx, name)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(dto.Report{
		Report: label,
		Data:   rows,
		Count:  count,
	})
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, name, payload)
	return payload, nil
}

func (s *reportService) run(ctx context.Context, name string) (string, interface{}, int, error) {
	switch name {
	case ReportEventRegistrations:
		rows, err := s.reportRepo.EventRegistrations(ctx)
		return "Event Registrations", rows, len(rows), err
	case ReportAttendance:
		rows, err := s.reportRepo.EventAttendance(ctx)
		return "Event Attendance", rows, len(rows), err
	case ReportFeedback:
		rows, err := s.reportRepo.EventFeedback(ctx)
		return "Event Feedback", rows, len(rows), err
	case ReportPopularEvents:
		rows, err := s.reportRepo.PopularEvents(ctx)
		return "Popular Events", rows, len(rows), err
	case ReportStudentParticipation:
		rows, err := s.reportRepo.StudentParticipation(ctx)
		return "Student Participation", rows, len(rows), err
	case ReportTopStudents:
		rows, err := s.reportRepo.TopStudents(ctx)
		return "Top 3 Most Active Students", rows, len(rows), err
	case ReportCollegeStats:
		rows, err := s.reportRepo.CollegeStats(ctx)
		return "College Statistics", rows, len(rows), err
	}
	return "", nil, 0, fmt.Errorf("unknown report %q", name)
}
