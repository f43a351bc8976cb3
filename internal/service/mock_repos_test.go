package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"course-cms/internal/model"
	"course-cms/internal/repository"
)

// ── 内存数据集 ──
//
// 所有 mock repository 共享同一份行数据；读取时按 GORM 实现的预加载深度组装关联。

type memStore struct {
	courses     map[uint]*model.Course
	users       map[uint]*model.User
	assignments map[uint]*model.Assignment
	submissions map[uint]*model.Submission
	students    map[[2]uint]bool // {courseID, userID}
	instructors map[[2]uint]bool
	nextID      uint
}

func newMemStore() *memStore {
	return &memStore{
		courses:     make(map[uint]*model.Course),
		users:       make(map[uint]*model.User),
		assignments: make(map[uint]*model.Assignment),
		submissions: make(map[uint]*model.Submission),
		students:    make(map[[2]uint]bool),
		instructors: make(map[[2]uint]bool),
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) roster(role model.RosterRole) map[[2]uint]bool {
	if role == model.RoleInstructor {
		return m.instructors
	}
	return m.students
}

// ── 测试数据构造 ──

func (m *memStore) addCourse(code, name string) *model.Course {
	c := &model.Course{ID: m.id(), Code: code, Name: name}
	m.courses[c.ID] = c
	return c
}

func (m *memStore) addUser(name, netID string) *model.User {
	u := &model.User{ID: m.id(), Name: name, NetID: netID}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addAssignment(courseID uint, title string, due int64) *model.Assignment {
	a := &model.Assignment{ID: m.id(), Title: title, DueDate: due, CourseID: courseID}
	m.assignments[a.ID] = a
	return a
}

func (m *memStore) addSubmission(assignmentID, userID uint, content string, score *int) *model.Submission {
	s := &model.Submission{ID: m.id(), Content: content, Score: score, UserID: userID, AssignmentID: assignmentID}
	m.submissions[s.ID] = s
	return s
}

func (m *memStore) enroll(courseID, userID uint, role model.RosterRole) {
	m.roster(role)[[2]uint{courseID, userID}] = true
}

// ── 关联组装 ──

func sortedIDs[T any](rows map[uint]*T, keep func(*T) bool) []uint {
	ids := make([]uint, 0, len(rows))
	for id, row := range rows {
		if keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *memStore) submissionsWhere(keep func(*model.Submission) bool) []model.Submission {
	var list []model.Submission
	for _, id := range sortedIDs(m.submissions, keep) {
		list = append(list, *m.submissions[id])
	}
	return list
}

func (m *memStore) assignmentWithSubmissions(id uint) *model.Assignment {
	a := *m.assignments[id]
	a.Submissions = m.submissionsWhere(func(s *model.Submission) bool { return s.AssignmentID == id })
	return &a
}

func (m *memStore) fullSubmission(s model.Submission) model.Submission {
	s.Assignment = m.assignmentWithSubmissions(s.AssignmentID)
	u := *m.users[s.UserID]
	s.User = &u
	return s
}

func (m *memStore) members(courseID uint, role model.RosterRole) []model.User {
	var list []model.User
	ids := sortedIDs(m.users, func(u *model.User) bool { return m.roster(role)[[2]uint{courseID, u.ID}] })
	for _, id := range ids {
		list = append(list, *m.users[id])
	}
	return list
}

func (m *memStore) coursesOf(userID uint, role model.RosterRole) []model.Course {
	var list []model.Course
	ids := sortedIDs(m.courses, func(c *model.Course) bool { return m.roster(role)[[2]uint{c.ID, userID}] })
	for _, id := range ids {
		list = append(list, *m.courses[id])
	}
	return list
}

func (m *memStore) courseGraph(id uint) *model.Course {
	c := *m.courses[id]
	for _, aid := range sortedIDs(m.assignments, func(a *model.Assignment) bool { return a.CourseID == id }) {
		c.Assignments = append(c.Assignments, *m.assignmentWithSubmissions(aid))
	}
	c.Instructors = m.members(id, model.RoleInstructor)
	c.Students = m.members(id, model.RoleStudent)
	return &c
}

func (m *memStore) userGraph(id uint) *model.User {
	u := *m.users[id]
	u.InstructingCourses = m.coursesOf(id, model.RoleInstructor)
	u.StudentCourses = m.coursesOf(id, model.RoleStudent)
	for _, s := range m.submissionsWhere(func(s *model.Submission) bool { return s.UserID == id }) {
		u.Submissions = append(u.Submissions, m.fullSubmission(s))
	}
	return &u
}

func (m *memStore) assignmentGraph(id uint) *model.Assignment {
	a := *m.assignments[id]
	c := *m.courses[a.CourseID]
	a.Course = &c
	for _, s := range m.submissionsWhere(func(s *model.Submission) bool { return s.AssignmentID == id }) {
		a.Submissions = append(a.Submissions, m.fullSubmission(s))
	}
	return &a
}

// ── Mock CourseRepository ──

type mockCourseRepo struct{ s *memStore }

func (r *mockCourseRepo) Create(_ context.Context, c *model.Course) error {
	c.ID = r.s.id()
	row := *c
	r.s.courses[c.ID] = &row
	return nil
}

func (r *mockCourseRepo) GetByID(_ context.Context, id uint) (*model.Course, error) {
	if _, ok := r.s.courses[id]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.s.courseGraph(id), nil
}

func (r *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var list []model.Course
	for _, id := range sortedIDs(r.s.courses, func(*model.Course) bool { return true }) {
		list = append(list, *r.s.courseGraph(id))
	}
	return list, nil
}

func (r *mockCourseRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.s.courses[id]
	return ok, nil
}

func (r *mockCourseRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.s.courses[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for aid, a := range r.s.assignments {
		if a.CourseID != id {
			continue
		}
		for sid, sub := range r.s.submissions {
			if sub.AssignmentID == aid {
				delete(r.s.submissions, sid)
			}
		}
		delete(r.s.assignments, aid)
	}
	for _, roster := range []map[[2]uint]bool{r.s.students, r.s.instructors} {
		for k := range roster {
			if k[0] == id {
				delete(roster, k)
			}
		}
	}
	delete(r.s.courses, id)
	return nil
}

// ── Mock UserRepository ──

type mockUserRepo struct{ s *memStore }

func (r *mockUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = r.s.id()
	row := *u
	r.s.users[u.ID] = &row
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if _, ok := r.s.users[id]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.s.userGraph(id), nil
}

func (r *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var list []model.User
	for _, id := range sortedIDs(r.s.users, func(*model.User) bool { return true }) {
		list = append(list, *r.s.userGraph(id))
	}
	return list, nil
}

func (r *mockUserRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.s.users[id]
	return ok, nil
}

func (r *mockUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.s.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for sid, sub := range r.s.submissions {
		if sub.UserID == id {
			delete(r.s.submissions, sid)
		}
	}
	for _, roster := range []map[[2]uint]bool{r.s.students, r.s.instructors} {
		for k := range roster {
			if k[1] == id {
				delete(roster, k)
			}
		}
	}
	delete(r.s.users, id)
	return nil
}

// ── Mock RosterRepository ──

type mockRosterRepo struct{ s *memStore }

func (r *mockRosterRepo) IsMember(_ context.Context, courseID, userID uint, role model.RosterRole) (bool, error) {
	return r.s.roster(role)[[2]uint{courseID, userID}], nil
}

func (r *mockRosterRepo) Add(_ context.Context, courseID, userID uint, role model.RosterRole) error {
	key := [2]uint{courseID, userID}
	if r.s.roster(role)[key] {
		return fmt.Errorf("duplicate roster entry %v", key)
	}
	r.s.roster(role)[key] = true
	return nil
}

func (r *mockRosterRepo) Remove(_ context.Context, courseID, userID uint, role model.RosterRole) error {
	delete(r.s.roster(role), [2]uint{courseID, userID})
	return nil
}

func (r *mockRosterRepo) ListMembers(_ context.Context, courseID uint, role model.RosterRole) ([]model.User, error) {
	return r.s.members(courseID, role), nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct{ s *memStore }

func (r *mockAssignmentRepo) Create(_ context.Context, a *model.Assignment) error {
	a.ID = r.s.id()
	row := *a
	r.s.assignments[a.ID] = &row
	return nil
}

func (r *mockAssignmentRepo) GetByID(_ context.Context, id uint) (*model.Assignment, error) {
	if _, ok := r.s.assignments[id]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.s.assignmentGraph(id), nil
}

func (r *mockAssignmentRepo) ListByCourse(_ context.Context, courseID uint) ([]model.Assignment, error) {
	var list []model.Assignment
	for _, id := range sortedIDs(r.s.assignments, func(a *model.Assignment) bool { return a.CourseID == courseID }) {
		list = append(list, *r.s.assignmentWithSubmissions(id))
	}
	return list, nil
}

func (r *mockAssignmentRepo) Exists(_ context.Context, id uint) (bool, error) {
	_, ok := r.s.assignments[id]
	return ok, nil
}

func (r *mockAssignmentRepo) Update(_ context.Context, a *model.Assignment) error {
	row, ok := r.s.assignments[a.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	row.Title = a.Title
	row.DueDate = a.DueDate
	return nil
}

// ── Mock SubmissionRepository ──

type mockSubmissionRepo struct{ s *memStore }

func (r *mockSubmissionRepo) Create(_ context.Context, sub *model.Submission) error {
	if _, ok := r.s.assignments[sub.AssignmentID]; !ok {
		return fmt.Errorf("foreign key: assignment %d", sub.AssignmentID)
	}
	sub.ID = r.s.id()
	row := *sub
	r.s.submissions[sub.ID] = &row
	return nil
}

func (r *mockSubmissionRepo) GetByID(_ context.Context, id uint) (*model.Submission, error) {
	row, ok := r.s.submissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	sub := r.s.fullSubmission(*row)
	return &sub, nil
}

func (r *mockSubmissionRepo) UpdateScore(_ context.Context, id uint, score int) error {
	row, ok := r.s.submissions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	row.Score = &score
	return nil
}

// ── Mock SchemaRepository ──

type mockSchemaRepo struct {
	tables map[string][]repository.Column
}

func (r *mockSchemaRepo) HasTable(_ context.Context, table string) bool {
	_, ok := r.tables[table]
	return ok
}

func (r *mockSchemaRepo) Columns(_ context.Context, table string) ([]repository.Column, error) {
	return r.tables[table], nil
}

// ── Mock Storage ──

type mockStorage struct {
	uploads map[string][]byte
	err     error
}

func newMockStorage() *mockStorage {
	return &mockStorage{uploads: make(map[string][]byte)}
}

func (m *mockStorage) Upload(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.uploads[key] = data
	return "https://files.test/" + key, nil
}

func (m *mockStorage) Close() error { return nil }

// ── 测试辅助 ──

func setupTestService() (*Service, *memStore, *mockStorage) {
	store := newMemStore()
	files := newMockStorage()
	repo := &repository.Repository{
		Course:     &mockCourseRepo{s: store},
		User:       &mockUserRepo{s: store},
		Roster:     &mockRosterRepo{s: store},
		Assignment: &mockAssignmentRepo{s: store},
		Submission: &mockSubmissionRepo{s: store},
		Schema: &mockSchemaRepo{tables: map[string][]repository.Column{
			"submissions": {
				{Name: "id", Type: "INTEGER"},
				{Name: "content", Type: "TEXT"},
				{Name: "score", Type: "INTEGER", Nullable: true},
			},
		}},
	}
	return NewService(repo, files, zap.NewNop()), store, files
}

func textFile(name, content string) *SubmissionFile {
	return &SubmissionFile{Filename: name, ContentType: "text/plain", Body: bytes.NewBufferString(content)}
}

func ptr[T any](v T) *T { return &v }
