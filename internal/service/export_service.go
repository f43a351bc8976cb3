package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"course-cms/internal/model"
	"course-cms/internal/repository"
	apperrors "course-cms/pkg/errors"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = apperrors.New(apperrors.ErrUpstream, "Failed to generate export file")

// ExportService 导出业务接口
//
// 导出内容以内存 buffer 返回，由 Handler 层设置响应头后写出
type ExportService interface {
	// Gradebook 成绩册：行为学生，列为作业
	Gradebook(ctx context.Context, courseID uint) (*bytes.Buffer, string, error)
	// Calendar 每份作业的截止时间生成一个 VEVENT
	Calendar(ctx context.Context, courseID uint) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

const (
	gradebookSheet   = "Gradebook"
	cellNotSubmitted = "-"
	cellUngraded     = "ungraded"
)

// ═══════════════════════════════════════════════════════════
// Gradebook — 成绩册导出为 Excel
// ═══════════════════════════════════════════════════════════
//
// 表头：Student | NetID | 各作业标题（按作业 ID 升序）
// 单元格：该学生对该作业最近一次提交的分数；未评分为 "ungraded"，未提交为 "-"

func (s *exportService) Gradebook(ctx context.Context, courseID uint) (*bytes.Buffer, string, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		return nil, "", notFoundAs(err, ErrCourseNotFound)
	}
	students, err := s.repo.Roster.ListMembers(ctx, courseID, model.RoleStudent)
	if err != nil {
		s.logger.Error("查询学生名单失败", zap.Error(err))
		return nil, "", err
	}
	assignments, err := s.repo.Assignment.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("查询作业列表失败", zap.Error(err))
		return nil, "", err
	}

	// (assignment, user) → 最近一次提交
	latest := make(map[[2]uint]*model.Submission)
	for i := range assignments {
		for j := range assignments[i].Submissions {
			sub := &assignments[i].Submissions[j]
			key := [2]uint{sub.AssignmentID, sub.UserID}
			if prev, ok := latest[key]; !ok || sub.ID > prev.ID {
				latest[key] = sub
			}
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", gradebookSheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}

	f.SetColWidth(gradebookSheet, "A", "A", 20)
	f.SetColWidth(gradebookSheet, "B", "B", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(gradebookSheet, cell("A", 1), "Student")
	f.SetCellValue(gradebookSheet, cell("B", 1), "NetID")
	for i, a := range assignments {
		f.SetCellValue(gradebookSheet, cell(colName(2+i), 1), a.Title)
	}
	f.SetCellStyle(gradebookSheet, "A1", cell(colName(1+len(assignments)), 1), headerStyle)

	for r, student := range students {
		row := r + 2
		f.SetCellValue(gradebookSheet, cell("A", row), student.Name)
		f.SetCellValue(gradebookSheet, cell("B", row), student.NetID)
		for i, a := range assignments {
			var value interface{} = cellNotSubmitted
			if sub, ok := latest[[2]uint{a.ID, student.ID}]; ok {
				value = cellUngraded
				if sub.Score != nil {
					value = *sub.Score
				}
			}
			f.SetCellValue(gradebookSheet, cell(colName(2+i), row), value)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("gradebook_%s.xlsx", course.Code), nil
}

// ═══════════════════════════════════════════════════════════
// Calendar — 作业截止时间导出为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) Calendar(ctx context.Context, courseID uint) ([]byte, string, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		return nil, "", notFoundAs(err, ErrCourseNotFound)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//course-cms//assignments//EN")

	for _, a := range course.Assignments {
		due := time.Unix(a.DueDate, 0).UTC()
		stamp := a.UpdatedAt
		if stamp.IsZero() {
			stamp = due
		}

		evt := cal.AddEvent(fmt.Sprintf("assignment-%d@course-cms", a.ID))
		evt.SetDtStampTime(stamp.UTC())
		evt.SetStartAt(due)
		evt.SetEndAt(due)
		evt.SetSummary(fmt.Sprintf("%s: %s", course.Code, a.Title))
		evt.SetDescription(fmt.Sprintf("%s is due for %s", a.Title, course.Name))
	}

	return []byte(cal.Serialize()), fmt.Sprintf("%s.ics", course.Code), nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
