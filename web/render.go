// Package web holds the server-rendered pages.
package web

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hosammostafait/AICareerAdvisor/entities"
	"github.com/hosammostafait/AICareerAdvisor/pkg/report"
)

const (
	PageForm   = "form.html"
	PageReport = "report.html"
	PageError  = "error.html"
)

//go:embed templates/*.html
var files embed.FS

// Suggestion is a quick-fill preset shown above the form.
type Suggestion struct {
	Label      string
	Profession string
	Tasks      string
}

var Suggestions = []Suggestion{
	{Label: "👨‍🏫 معلم", Profession: "معلم مدرسي", Tasks: "تحضير الدروس، إنشاء اختبارات، متابعة الطلاب"},
	{Label: "📈 مسوق", Profession: "مسوق رقمي", Tasks: "كتابة محتوى إعلاني، تحليل الحملات، تصميم بوستات"},
	{Label: "💰 محاسب", Profession: "محاسب مالي", Tasks: "إعداد القوائم المالية، تحليل البيانات، إدخال الفواتير"},
	{Label: "💻 مبرمج", Profession: "مطور واجهات", Tasks: "كتابة كود نظيف، تصحيح الأخطاء، توثيق البرمجيات"},
}

// FormPage is the input form, optionally refilled after a failed attempt.
type FormPage struct {
	Input       entities.UserInput
	Levels      []entities.ExperienceLevel
	Suggestions []Suggestion
	Problem     string
}

type ReportPage struct {
	Input    entities.UserInput
	Plan     *entities.Plan
	Filter   report.ToolFilter
	Tools    []entities.ToolRecommendation
	Courses  []report.PlatformCourses
	Share    []report.ShareLink
	PlanText string
}

type ErrorPage struct {
	Message string
	Kind    string
	Input   entities.UserInput
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"categoryLabel": report.CategoryLabel,
		"priceLabel":    report.PriceLabel,
		"videoLink":     report.VideoLink,
		"toolShareText": report.ToolShareText,
		"inc":           func(i int) int { return i + 1 },
	}
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, name := range []string{PageForm, PageReport, PageError} {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "unknown page "+name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
