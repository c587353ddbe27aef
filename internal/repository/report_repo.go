package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/internal/dto"
)

// ReportRepository runs the read-only aggregate queries. Each report is a
// single SQL statement with a fixed grouping key and sort order so results
// are reproducible. Percentages use NULLIF on the denominator: an event or
// student with zero registrations yields NULL, not a division error.
type ReportRepository interface {
	EventRegistrations(ctx context.Context) ([]dto.EventRegistrationsRow, error)
	EventAttendance(ctx context.Context) ([]dto.EventAttendanceRow, error)
	EventFeedback(ctx context.Context) ([]dto.EventFeedbackRow, error)
	PopularEvents(ctx context.Context) ([]dto.PopularEventRow, error)
	StudentParticipation(ctx context.Context) ([]dto.StudentParticipationRow, error)
	TopStudents(ctx context.Context) ([]dto.TopStudentRow, error)
	CollegeStats(ctx context.Context) ([]dto.CollegeStatsRow, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) EventRegistrations(ctx context.Context) ([]dto.EventRegistrationsRow, error) {
	rows := []dto.EventRegistrationsRow{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.name AS event_name,
			e.type,
			e.date,
			c.name AS college_name,
			COUNT(r.id) AS total_registrations
		FROM events e
		JOIN colleges c ON e.college_id = c.id
		LEFT JOIN registrations r ON e.id = r.event_id
		GROUP BY e.id, e.name, e.type, e.date, c.name
		ORDER BY total_registrations DESC, e.date DESC
	`).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) EventAttendance(ctx context.Context) ([]dto.EventAttendanceRow, error) {
	rows := []dto.EventAttendanceRow{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.name AS event_name,
			e.type,
			e.date,
			c.name AS college_name,
			COUNT(r.id) AS total_registrations,
			COUNT(a.id) AS attendance_marked,
			COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS present_count,
			COUNT(CASE WHEN a.status = 'late' THEN 1 END) AS late_count,
			COUNT(CASE WHEN a.status = 'absent' THEN 1 END) AS absent_count,
			ROUND(
				(COUNT(CASE WHEN a.status IN ('present', 'late') THEN 1 END) * 100.0 /
				 NULLIF(COUNT(r.id), 0))::numeric, 2
			) AS attendance_percentage
		FROM events e
		JOIN colleges c ON e.college_id = c.id
		LEFT JOIN registrations r ON e.id = r.event_id
		LEFT JOIN attendance a ON r.id = a.registration_id
		GROUP BY e.id, e.name, e.type, e.date, c.name
		ORDER BY attendance_percentage DESC NULLS LAST, e.date DESC
	`).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) EventFeedback(ctx context.Context) ([]dto.EventFeedbackRow, error) {
	rows := []dto.EventFeedbackRow{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.name AS event_name,
			e.type,
			e.date,
			c.name AS college_name,
			COUNT(f.id) AS total_feedback,
			ROUND(AVG(f.rating)::numeric, 2) AS average_rating,
			MIN(f.rating) AS min_rating,
			MAX(f.rating) AS max_rating
		FROM events e
		JOIN colleges c ON e.college_id = c.id
		LEFT JOIN registrations r ON e.id = r.event_id
		LEFT JOIN feedback f ON r.id = f.registration_id
		GROUP BY e.id, e.name, e.type, e.date, c.name
		HAVING COUNT(f.id) > 0
		ORDER BY average_rating DESC NULLS LAST, e.date DESC
	`).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) PopularEvents(ctx context.Context) ([]dto.PopularEventRow, error) {
	rows := []dto.PopularEventRow{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.name AS event_name,
			e.type,
			e.date,
			c.name AS college_name,
			COUNT(r.id) AS registration_count,
			COUNT(a.id) AS attendance_count,
			ROUND(
				(COUNT(CASE WHEN a.status IN ('present', 'late') THEN 1 END) * 100.0 /
				 NULLIF(COUNT(r.id), 0))::numeric, 2
			) AS attendance_percentage
		FROM events e
		JOIN colleges c ON e.college_id = c.id
		LEFT JOIN registrations r ON e.id = r.event_id
		LEFT JOIN attendance a ON r.id = a.registration_id
		GROUP BY e.id, e.name, e.type, e.date, c.name
		ORDER BY registration_count DESC, e.date DESC
	`).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) StudentParticipation(ctx context.Context) ([]dto.StudentParticipationRow, error) {
	rows := []dto.StudentParticipationRow{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name AS student_name,
			s.email,
			c.name AS college_name,
			COUNT(r.id) AS total_registrations,
			COUNT(a.id) AS events_attended,
			COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS present_count,
			COUNT(CASE WHEN a.status = 'late' THEN 1 END) AS late_count,
			COUNT(CASE WHEN a.status = 'absent' THEN 1 END) AS absent_count,
			ROUND(
				(COUNT(CASE WHEN a.status IN ('present', 'late') THEN 1 END) * 100.0 /
				 NULLIF(COUNT(r.id), 0))::numeric, 2
			) AS participation_percentage
		FROM users s
		JOIN colleges c ON s.college_id = c.id
		LEFT JOIN registrations r ON s.id = r.student_id
		LEFT JOIN attendance a ON r.id = a.registration_id
		WHERE s.role = 'student'
		GROUP BY s.id, s.name, s.email, c.name
		ORDER BY participation_percentage DESC NULLS LAST, total_registrations DESC
	`).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) TopStudents(ctx context.Context) ([]dto.TopStudentRow, error) {
	rows := []dto.TopStudentRow{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name AS student_name,
			s.email,
			c.name AS college_name,
			COUNT(r.id) AS total_registrations,
			COUNT(a.id) AS events_attended,
			COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS present_count,
			COUNT(CASE WHEN a.status = 'late' THEN 1 END) AS late_count,
			COUNT(f.id) AS feedback_submitted,
			ROUND(AVG(f.rating)::numeric, 2) AS average_feedback_rating,
			ROUND(
				(COUNT(CASE WHEN a.status IN ('present', 'late') THEN 1 END) * 100.0 /
				 NULLIF(COUNT(r.id), 0))::numeric, 2
			) AS participation_percentage
		FROM users s
		JOIN colleges c ON s.college_id = c.id
		LEFT JOIN registrations r ON s.id = r.student_id
		LEFT JOIN attendance a ON r.id = a.registration_id
		LEFT JOIN feedback f ON r.id = f.registration_id
		WHERE s.role = 'student'
		GROUP BY s.id, s.name, s.email, c.name
		HAVING COUNT(r.id) > 0
		ORDER BY total_registrations DESC, participation_percentage DESC NULLS LAST
		LIMIT 3
	`).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) CollegeStats(ctx context.Context) ([]dto.CollegeStatsRow, error) {
	rows := []dto.CollegeStatsRow{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name AS college_name,
			COUNT(DISTINCT s.id) AS total_students,
			COUNT(DISTINCT e.id) AS total_events,
			COUNT(r.id) AS total_registrations,
			COUNT(a.id) AS total_attendance,
			COUNT(f.id) AS total_feedback,
			ROUND(AVG(f.rating)::numeric, 2) AS average_feedback_rating,
			ROUND(
				(COUNT(CASE WHEN a.status IN ('present', 'late') THEN 1 END) * 100.0 /
				 NULLIF(COUNT(r.id), 0))::numeric, 2
			) AS overall_attendance_percentage
		FROM colleges c
		LEFT JOIN users s ON c.id = s.college_id AND s.role = 'student'
		LEFT JOIN events e ON c.id = e.college_id
		LEFT JOIN registrations r ON s.id = r.student_id
		LEFT JOIN attendance a ON r.id = a.registration_id
		LEFT JOIN feedback f ON r.id = f.registration_id
		GROUP BY c.id, c.name
		ORDER BY total_students DESC, total_events DESC
	`).Scan(&rows).Error
	return rows, err
}
