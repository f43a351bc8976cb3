package service

import (
	"course-cms/internal/dto"
	"course-cms/internal/model"
)

// ── 序列化 ──
//
// 完整序列化展开一层关联，关联实体一律使用简要序列化，因此输出有界、无环。
// 空关联输出 []，不输出 null。

func renderCourse(c *model.Course) dto.CourseResponse {
	resp := dto.CourseResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Assignments: make([]dto.AssignmentSimple, 0, len(c.Assignments)),
		Instructors: renderUsersSimple(c.Instructors),
		Students:    renderUsersSimple(c.Students),
	}
	for i := range c.Assignments {
		resp.Assignments = append(resp.Assignments, renderAssignmentSimple(&c.Assignments[i]))
	}
	return resp
}

func renderCourseSimple(c *model.Course) dto.CourseSimple {
	return dto.CourseSimple{ID: c.ID, Code: c.Code, Name: c.Name}
}

func renderCoursesSimple(courses []model.Course) []dto.CourseSimple {
	list := make([]dto.CourseSimple, 0, len(courses))
	for i := range courses {
		list = append(list, renderCourseSimple(&courses[i]))
	}
	return list
}

func renderUser(u *model.User) dto.UserResponse {
	resp := dto.UserResponse{
		ID:                 u.ID,
		Name:               u.Name,
		NetID:              u.NetID,
		InstructingCourses: renderCoursesSimple(u.InstructingCourses),
		StudentCourses:     renderCoursesSimple(u.StudentCourses),
		Submissions:        make([]dto.SubmissionResponse, 0, len(u.Submissions)),
	}
	for i := range u.Submissions {
		resp.Submissions = append(resp.Submissions, renderSubmission(&u.Submissions[i]))
	}
	return resp
}

func renderUserSimple(u *model.User) dto.UserSimple {
	return dto.UserSimple{ID: u.ID, Name: u.Name, NetID: u.NetID}
}

func renderUsersSimple(users []model.User) []dto.UserSimple {
	list := make([]dto.UserSimple, 0, len(users))
	for i := range users {
		list = append(list, renderUserSimple(&users[i]))
	}
	return list
}

func renderAssignment(a *model.Assignment) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		ID:          a.ID,
		Title:       a.Title,
		DueDate:     a.DueDate,
		Course:      []dto.CourseSimple{},
		Submissions: make([]dto.SubmissionResponse, 0, len(a.Submissions)),
	}
	if a.Course != nil {
		resp.Course = append(resp.Course, renderCourseSimple(a.Course))
	}
	for i := range a.Submissions {
		resp.Submissions = append(resp.Submissions, renderSubmission(&a.Submissions[i]))
	}
	return resp
}

func renderAssignmentSimple(a *model.Assignment) dto.AssignmentSimple {
	resp := dto.AssignmentSimple{
		ID:          a.ID,
		Title:       a.Title,
		DueDate:     a.DueDate,
		CourseID:    a.CourseID,
		Submissions: make([]dto.SubmissionSimple, 0, len(a.Submissions)),
	}
	for i := range a.Submissions {
		resp.Submissions = append(resp.Submissions, renderSubmissionSimple(&a.Submissions[i]))
	}
	return resp
}

func renderSubmission(s *model.Submission) dto.SubmissionResponse {
	resp := dto.SubmissionResponse{
		ID:      s.ID,
		Content: s.Content,
		Score:   s.Score,
		UserID:  s.UserID,
		Assignment: dto.AssignmentSimple{
			ID:          s.AssignmentID,
			Submissions: []dto.SubmissionSimple{},
		},
		User: dto.UserSimple{ID: s.UserID},
	}
	if s.Assignment != nil {
		resp.Assignment = renderAssignmentSimple(s.Assignment)
	}
	if s.User != nil {
		resp.User = renderUserSimple(s.User)
	}
	return resp
}

func renderSubmissionSimple(s *model.Submission) dto.SubmissionSimple {
	return dto.SubmissionSimple{ID: s.ID, Content: s.Content, Score: s.Score, UserID: s.UserID}
}
