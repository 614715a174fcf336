package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/hosammostafait/AICareerAdvisor/entities"
)

const (
	SheetTools    = "الأدوات"
	SheetCourses  = "الدورات"
	SheetVideos   = "الفيديوهات"
	SheetArticles = "المقالات"
	SheetSteps    = "الخطوات"
	SheetTips     = "النصائح"
)

// WriteXLSX writes the plan as a workbook with one right-to-left sheet per
// section.
func WriteXLSX(w io.Writer, p *entities.Plan) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetTools, []any{"الأداة", "التصنيف", "السعر", "الوصف", "طريقة الاستخدام", "الرابط"}, toolRows(p.Tools)},
		{SheetCourses, []any{"الدورة", "المنصة", "المدرب", "الملخص", "الرابط"}, courseRows(p.Courses)},
		{SheetVideos, []any{"الفيديو", "الملخص", "الرابط"}, videoRows(p.Videos)},
		{SheetArticles, []any{"المقال", "الملخص", "الرابط"}, articleRows(p.Articles)},
		{SheetSteps, []any{"#", "الخطوة"}, numbered(p.Steps)},
		{SheetTips, []any{"#", "النصيحة"}, numbered(p.Tips)},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}
		rightToLeft := true
		if err := f.SetSheetView(s.name, 0, &excelize.ViewOptions{RightToLeft: &rightToLeft}); err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, "A1", &s.header); err != nil {
			return err
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return fmt.Errorf("%s row %d: %w", s.name, r+1, err)
			}
		}
	}
	f.SetActiveSheet(0)
	return f.Write(w)
}

func toolRows(tools []entities.ToolRecommendation) [][]any {
	rows := make([][]any, 0, len(tools))
	for _, t := range tools {
		rows = append(rows, []any{t.Name, CategoryLabel(t.Category), PriceLabel(t.IsPaid), t.Description, t.Usage, t.URL})
	}
	return rows
}

func courseRows(courses []entities.CourseRecommendation) [][]any {
	rows := make([][]any, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []any{c.Title, c.Platform, c.Instructor, c.Summary, c.URL})
	}
	return rows
}

func videoRows(videos []entities.VideoRecommendation) [][]any {
	rows := make([][]any, 0, len(videos))
	for _, v := range videos {
		rows = append(rows, []any{v.Title, v.Summary, VideoLink(v)})
	}
	return rows
}

func articleRows(articles []entities.ArticleRecommendation) [][]any {
	rows := make([][]any, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []any{a.Title, a.Summary, a.URL})
	}
	return rows
}

func numbered(items []string) [][]any {
	rows := make([][]any, 0, len(items))
	for i, s := range items {
		rows = append(rows, []any{i + 1, s})
	}
	return rows
}
