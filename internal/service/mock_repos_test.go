package service

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"campus-events/internal/dto"
	"campus-events/internal/model"
)

// In-memory fakes for the repository interfaces. They mimic the lookup
// and not-found behavior of the real gorm-backed implementations.

type mockUserRepo struct {
	nextID uint
	users  map[uint]*model.User

	studentEvents map[uint][]dto.StudentEventView
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:         make(map[uint]*model.User),
		studentEvents: make(map[uint][]dto.StudentEventView),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindStudents(_ context.Context) ([]dto.StudentView, error) {
	students := []dto.StudentView{}
	for _, u := range m.users {
		if u.Role == model.RoleStudent {
			students = append(students, studentView(u))
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Name < students[j].Name })
	return students, nil
}

func (m *mockUserRepo) FindStudentByID(_ context.Context, id uint) (*dto.StudentView, error) {
	u, ok := m.users[id]
	if !ok || u.Role != model.RoleStudent {
		return nil, gorm.ErrRecordNotFound
	}
	view := studentView(u)
	return &view, nil
}

func (m *mockUserRepo) FindStudentEvents(_ context.Context, studentID uint) ([]dto.StudentEventView, error) {
	if events, ok := m.studentEvents[studentID]; ok {
		return events, nil
	}
	return []dto.StudentEventView{}, nil
}

func studentView(u *model.User) dto.StudentView {
	return dto.StudentView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CollegeID: u.CollegeID,
		CreatedAt: u.CreatedAt,
	}
}

type mockCollegeRepo struct {
	nextID   uint
	colleges map[uint]*model.College
}

func newMockCollegeRepo() *mockCollegeRepo {
	return &mockCollegeRepo{colleges: make(map[uint]*model.College)}
}

func (m *mockCollegeRepo) Create(_ context.Context, college *model.College) error {
	m.nextID++
	college.ID = m.nextID
	m.colleges[college.ID] = college
	return nil
}

func (m *mockCollegeRepo) FindByID(_ context.Context, id uint) (*model.College, error) {
	if c, ok := m.colleges[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCollegeRepo) FindByName(_ context.Context, name string) (*model.College, error) {
	for _, c := range m.colleges {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCollegeRepo) FindAll(_ context.Context) ([]model.College, error) {
	colleges := []model.College{}
	for _, c := range m.colleges {
		colleges = append(colleges, *c)
	}
	sort.Slice(colleges, func(i, j int) bool { return colleges[i].Name < colleges[j].Name })
	return colleges, nil
}

type mockEventRepo struct {
	nextID uint
	events map[uint]*model.Event
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[uint]*model.Event)}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	m.nextID++
	event.ID = m.nextID
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) FindByID(_ context.Context, id uint) (*model.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) Update(_ context.Context, event *model.Event) error {
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.events[id]; !ok {
		return 0, nil
	}
	delete(m.events, id)
	return 1, nil
}

func (m *mockEventRepo) FindAllViews(_ context.Context, query string) ([]dto.EventView, error) {
	views := []dto.EventView{}
	for _, e := range m.events {
		if query != "" && !eventMatches(e, query) {
			continue
		}
		views = append(views, eventView(e))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Date.After(views[j].Date) })
	return views, nil
}

func (m *mockEventRepo) FindViewsByIDs(_ context.Context, ids []uint) ([]dto.EventView, error) {
	views := []dto.EventView{}
	for _, id := range ids {
		if e, ok := m.events[id]; ok {
			views = append(views, eventView(e))
		}
	}
	return views, nil
}

func (m *mockEventRepo) FindViewByID(_ context.Context, id uint) (*dto.EventView, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	view := eventView(e)
	return &view, nil
}

func eventMatches(e *model.Event, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Name), q) {
		return true
	}
	return e.Description != nil && strings.Contains(strings.ToLower(*e.Description), q)
}

func eventView(e *model.Event) dto.EventView {
	return dto.EventView{
		ID:          e.ID,
		Name:        e.Name,
		Type:        e.Type,
		Date:        e.Date,
		CollegeID:   e.CollegeID,
		CreatedBy:   e.CreatedBy,
		Description: e.Description,
		PosterURL:   e.PosterURL,
		CreatedAt:   e.CreatedAt,
	}
}

type mockRegistrationRepo struct {
	nextID        uint
	registrations map[uint]*model.Registration
}

func newMockRegistrationRepo() *mockRegistrationRepo {
	return &mockRegistrationRepo{registrations: make(map[uint]*model.Registration)}
}

func (m *mockRegistrationRepo) Create(_ context.Context, registration *model.Registration) error {
	m.nextID++
	registration.ID = m.nextID
	m.registrations[registration.ID] = registration
	return nil
}

func (m *mockRegistrationRepo) FindByID(_ context.Context, id uint) (*model.Registration, error) {
	if r, ok := m.registrations[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) FindByStudentAndEvent(_ context.Context, studentID, eventID uint) (*model.Registration, error) {
	for _, r := range m.registrations {
		if r.StudentID == studentID && r.EventID == eventID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRegistrationRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.registrations[id]; !ok {
		return 0, nil
	}
	delete(m.registrations, id)
	return 1, nil
}

func (m *mockRegistrationRepo) FindAllViews(_ context.Context) ([]dto.RegistrationView, error) {
	views := []dto.RegistrationView{}
	for _, r := range m.registrations {
		views = append(views, registrationView(r))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID > views[j].ID })
	return views, nil
}

func (m *mockRegistrationRepo) FindViewByID(_ context.Context, id uint) (*dto.RegistrationView, error) {
	r, ok := m.registrations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	view := registrationView(r)
	return &view, nil
}

func registrationView(r *model.Registration) dto.RegistrationView {
	return dto.RegistrationView{
		ID:           r.ID,
		StudentID:    r.StudentID,
		EventID:      r.EventID,
		RegisteredAt: r.RegisteredAt,
	}
}

type mockAttendanceRepo struct {
	nextID  uint
	records map[uint]*model.Attendance
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[uint]*model.Attendance)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, attendance *model.Attendance) error {
	m.nextID++
	attendance.ID = m.nextID
	m.records[attendance.ID] = attendance
	return nil
}

func (m *mockAttendanceRepo) FindByRegistrationID(_ context.Context, registrationID uint) (*model.Attendance, error) {
	for _, a := range m.records {
		if a.RegistrationID == registrationID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) UpdateStatus(_ context.Context, id uint, status string) (int64, error) {
	a, ok := m.records[id]
	if !ok {
		return 0, nil
	}
	a.Status = status
	return 1, nil
}

func (m *mockAttendanceRepo) FindAllViews(_ context.Context) ([]dto.AttendanceView, error) {
	views := []dto.AttendanceView{}
	for _, a := range m.records {
		views = append(views, attendanceView(a))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID > views[j].ID })
	return views, nil
}

func (m *mockAttendanceRepo) FindViewByID(_ context.Context, id uint) (*dto.AttendanceView, error) {
	a, ok := m.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	view := attendanceView(a)
	return &view, nil
}

func attendanceView(a *model.Attendance) dto.AttendanceView {
	return dto.AttendanceView{
		ID:             a.ID,
		RegistrationID: a.RegistrationID,
		Status:         a.Status,
		MarkedAt:       a.MarkedAt,
	}
}

type mockFeedbackRepo struct {
	nextID  uint
	records map[uint]*model.Feedback
}

func newMockFeedbackRepo() *mockFeedbackRepo {
	return &mockFeedbackRepo{records: make(map[uint]*model.Feedback)}
}

func (m *mockFeedbackRepo) Create(_ context.Context, feedback *model.Feedback) error {
	m.nextID++
	feedback.ID = m.nextID
	m.records[feedback.ID] = feedback
	return nil
}

func (m *mockFeedbackRepo) FindByRegistrationID(_ context.Context, registrationID uint) (*model.Feedback, error) {
	for _, f := range m.records {
		if f.RegistrationID == registrationID {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFeedbackRepo) Update(_ context.Context, id uint, rating int, comment *string) (int64, error) {
	f, ok := m.records[id]
	if !ok {
		return 0, nil
	}
	f.Rating = rating
	f.Comment = comment
	return 1, nil
}

func (m *mockFeedbackRepo) FindAllViews(_ context.Context) ([]dto.FeedbackView, error) {
	views := []dto.FeedbackView{}
	for _, f := range m.records {
		views = append(views, feedbackView(f))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID > views[j].ID })
	return views, nil
}

func (m *mockFeedbackRepo) FindViewByID(_ context.Context, id uint) (*dto.FeedbackView, error) {
	f, ok := m.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	view := feedbackView(f)
	return &view, nil
}

func feedbackView(f *model.Feedback) dto.FeedbackView {
	return dto.FeedbackView{
		ID:             f.ID,
		RegistrationID: f.RegistrationID,
		Rating:         f.Rating,
		Comment:        f.Comment,
		SubmittedAt:    f.SubmittedAt,
	}
}
