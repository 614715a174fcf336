// Package report turns a generated plan into the artefacts users take away
// from it: the copyable text, share links and the spreadsheet export.
package report

import (
	"fmt"
	"strings"

	"github.com/hosammostafait/AICareerAdvisor/entities"
)

type ToolFilter string

const (
	FilterAll  ToolFilter = "all"
	FilterFree ToolFilter = "free"
	FilterPaid ToolFilter = "paid"
)

// ParseToolFilter maps a query value to a filter. Unknown values mean all.
func ParseToolFilter(s string) ToolFilter {
	switch ToolFilter(strings.ToLower(strings.TrimSpace(s))) {
	case FilterFree:
		return FilterFree
	case FilterPaid:
		return FilterPaid
	}
	return FilterAll
}

func FilterTools(tools []entities.ToolRecommendation, f ToolFilter) []entities.ToolRecommendation {
	if f != FilterFree && f != FilterPaid {
		return tools
	}
	out := make([]entities.ToolRecommendation, 0, len(tools))
	for _, t := range tools {
		if t.IsPaid == (f == FilterPaid) {
			out = append(out, t)
		}
	}
	return out
}

type PlatformCourses struct {
	Platform string
	Courses  []entities.CourseRecommendation
}

// GroupCoursesByPlatform keeps platforms in the order they first appear.
func GroupCoursesByPlatform(courses []entities.CourseRecommendation) []PlatformCourses {
	var groups []PlatformCourses
	idx := map[string]int{}
	for _, c := range courses {
		i, ok := idx[c.Platform]
		if !ok {
			i = len(groups)
			idx[c.Platform] = i
			groups = append(groups, PlatformCourses{Platform: c.Platform})
		}
		groups[i].Courses = append(groups[i].Courses, c)
	}
	return groups
}

var categoryLabels = map[entities.ToolCategory]string{
	entities.CategoryWriting:      "كتابة وتحرير",
	entities.CategoryImage:        "صور وجرافيك",
	entities.CategoryVideo:        "فيديو ومونتاج",
	entities.CategoryCoding:       "برمجة وكود",
	entities.CategoryProductivity: "إنتاجية وتنظيم",
	entities.CategoryDesign:       "تصميم وإبداع",
	entities.CategoryOther:        "عام",
}

func CategoryLabel(c entities.ToolCategory) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return categoryLabels[entities.CategoryOther]
}

func PriceLabel(paid bool) string {
	if paid {
		return "مدفوع"
	}
	return "مجاني"
}

// ToolShareText is the message used when a single tool is shared.
func ToolShareText(t entities.ToolRecommendation) string {
	return fmt.Sprintf("جرب هذه الأداة الرائعة: %s\n%s\n%s", t.Name, t.Description, t.URL)
}

// PlanText renders the plan as the plain text users copy or share.
func PlanText(p *entities.Plan) string {
	var b strings.Builder
	b.WriteString("خطة العمل من \"المسار الذكي\" 🚀\n\n")
	b.WriteString(p.Greeting)

	section(&b, "🛠️ أدوات مقترحة:")
	for i, t := range p.Tools {
		line(&b, i, fmt.Sprintf("- %s (%s): %s\n  الرابط: %s", t.Name, PriceLabel(t.IsPaid), t.Description, t.URL))
	}
	section(&b, "🎓 دورات مقترحة:")
	for i, c := range p.Courses {
		line(&b, i, fmt.Sprintf("- %s [%s]: %s", c.Title, c.Platform, c.URL))
	}
	section(&b, "📖 مقالات مقترحة:")
	for i, a := range p.Articles {
		line(&b, i, fmt.Sprintf("- %s: %s", a.Title, a.URL))
	}
	section(&b, "📺 فيديوهات مقترحة:")
	for i, v := range p.Videos {
		target := v.URL
		if target == "" {
			target = v.SearchQuery
		}
		line(&b, i, fmt.Sprintf("- %s: %s", v.Title, target))
	}
	section(&b, "✅ خطوات العمل:")
	for i, s := range p.Steps {
		line(&b, i, fmt.Sprintf("%d. %s", i+1, s))
	}
	section(&b, "💡 نصائح:")
	for i, t := range p.Tips {
		line(&b, i, "- "+t)
	}
	return strings.TrimSpace(b.String())
}

func section(b *strings.Builder, title string) {
	b.WriteString("\n\n")
	b.WriteString(title)
	b.WriteString("\n")
}

func line(b *strings.Builder, i int, s string) {
	if i > 0 {
		b.WriteString("\n")
	}
	b.WriteString(s)
}
