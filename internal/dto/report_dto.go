package dto

import "time"

// Report wraps every report response: a label, the ordered rows and the
// row count.
type Report struct {
	Report string      `json:"report"`
	Data   interface{} `json:"data"`
	Count  int         `json:"count"`
}

// Percentages and averages are pointers: a zero denominator yields JSON
// null, never NaN or a division error.

type EventRegistrationsRow struct {
	ID                 uint      `json:"id"`
	EventName          string    `json:"event_name"`
	Type               string    `json:"type"`
	Date               time.Time `json:"date"`
	CollegeName        string    `json:"college_name"`
	TotalRegistrations int       `json:"total_registrations"`
}

type EventAttendanceRow struct {
	ID                   uint      `json:"id"`
	EventName            string    `json:"event_name"`
	Type                 string    `json:"type"`
	Date                 time.Time `json:"date"`
	CollegeName          string    `json:"college_name"`
	TotalRegistrations   int       `json:"total_registrations"`
	AttendanceMarked     int       `json:"attendance_marked"`
	PresentCount         int       `json:"present_count"`
	LateCount            int       `json:"late_count"`
	AbsentCount          int       `json:"absent_count"`
	AttendancePercentage *float64  `json:"attendance_percentage"`
}

type EventFeedbackRow struct {
	ID            uint      `json:"id"`
	EventName     string    `json:"event_name"`
	Type          string    `json:"type"`
	Date          time.Time `json:"date"`
	CollegeName   string    `json:"college_name"`
	TotalFeedback int       `json:"total_feedback"`
	AverageRating *float64  `json:"average_rating"`
	MinRating     *int      `json:"min_rating"`
	MaxRating     *int      `json:"max_rating"`
}

type PopularEventRow struct {
	ID                   uint      `json:"id"`
	EventName            string    `json:"event_name"`
	Type                 string    `json:"type"`
	Date                 time.Time `json:"date"`
	CollegeName          string    `json:"college_name"`
	RegistrationCount    int       `json:"registration_count"`
	AttendanceCount      int       `json:"attendance_count"`
	AttendancePercentage *float64  `json:"attendance_percentage"`
}

type StudentParticipationRow struct {
	ID                      uint     `json:"id"`
	StudentName             string   `json:"student_name"`
	Email                   string   `json:"email"`
	CollegeName             string   `json:"college_name"`
	TotalRegistrations      int      `json:"total_registrations"`
	EventsAttended          int      `json:"events_attended"`
	PresentCount            int      `json:"present_count"`
	LateCount               int      `json:"late_count"`
	AbsentCount             int      `json:"absent_count"`
	ParticipationPercentage *float64 `json:"participation_percentage"`
}

type TopStudentRow struct {
	ID                      uint     `json:"id"`
	StudentName             string   `json:"student_name"`
	Email                   string   `json:"email"`
	CollegeName             string   `json:"college_name"`
	TotalRegistrations      int      `json:"total_registrations"`
	EventsAttended          int      `json:"events_attended"`
	PresentCount            int      `json:"present_count"`
	LateCount               int      `json:"late_count"`
	FeedbackSubmitted       int      `json:"feedback_submitted"`
	AverageFeedbackRating   *float64 `json:"average_feedback_rating"`
	ParticipationPercentage *float64 `json:"participation_percentage"`
}

type CollegeStatsRow struct {
	ID                          uint     `json:"id"`
	CollegeName                 string   `json:"college_name"`
	TotalStudents               int      `json:"total_students"`
	TotalEvents                 int      `json:"total_events"`
	TotalRegistrations          int      `json:"total_registrations"`
	TotalAttendance             int      `json:"total_attendance"`
	TotalFeedback               int      `json:"total_feedback"`
	AverageFeedbackRating       *float64 `json:"average_feedback_rating"`
	OverallAttendancePercentage *float64 `json:"overall_attendance_percentage"`
}
