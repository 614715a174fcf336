package controllerImp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hosammostafait/AICareerAdvisor/entities"
	"github.com/hosammostafait/AICareerAdvisor/pkg/plan/service"
	"github.com/hosammostafait/AICareerAdvisor/pkg/report"
	"github.com/hosammostafait/AICareerAdvisor/web"
)

type fakePlanService struct {
	plan  *entities.Plan
	err   error
	calls int
	last  entities.UserInput
}

func (f *fakePlanService) Generate(_ context.Context, in entities.UserInput) (*entities.Plan, error) {
	f.calls++
	f.last = in
	return f.plan, f.err
}

func samplePlan() *entities.Plan {
	return &entities.Plan{
		PlanDraft: entities.PlanDraft{
			Greeting: "أهلاً أستاذنا",
			Tools: []entities.ToolRecommendation{
				{Name: "ChatGPT", URL: "https://chat.openai.com", Category: entities.CategoryWriting},
				{Name: "Canva", URL: "https://canva.com", Category: entities.CategoryDesign, IsPaid: true},
			},
			Videos:  []entities.VideoRecommendation{{Title: "v", SearchQuery: "q"}},
			Courses: []entities.CourseRecommendation{{Title: "c", Platform: "Coursera"}},
			Steps:   []string{"a", "b", "c"},
			Tips:    []string{"t"},
		},
		Articles: []entities.ArticleRecommendation{{Title: "art", URL: "https://www.ektebsa7.com/?cat=631"}},
	}
}

func newServer(t *testing.T, svc service.PlanService) *echo.Echo {
	t.Helper()
	e := echo.New()
	r, err := web.NewRenderer()
	require.NoError(t, err)
	e.Renderer = r

	h := NewPlanCtrl(svc)
	e.GET("/", h.Form)
	e.POST("/report", h.Report)
	e.POST("/api/plan", h.Generate)
	e.POST("/api/plan/text", h.Text)
	e.POST("/api/plan/xlsx", h.Export)
	return e
}

func postJSON(e *echo.Echo, target string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postForm(e *echo.Echo, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validInput() map[string]string {
	return map[string]string{"profession": "معلم مدرسي", "tasks": "تحضير الدروس", "experience": "مبتدئ"}
}

func TestGenerate_OK(t *testing.T) {
	svc := &fakePlanService{plan: samplePlan()}
	e := newServer(t, svc)

	rec := postJSON(e, "/api/plan", map[string]string{"profession": "  معلم مدرسي ", "tasks": "تحضير الدروس", "experience": "beginner"})

	require.Equal(t, http.StatusOK, rec.Code)
	var got entities.Plan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, *samplePlan(), got)
	assert.Equal(t, entities.UserInput{Profession: "معلم مدرسي", Tasks: "تحضير الدروس", Experience: entities.ExperienceBeginner}, svc.last)
}

func TestGenerate_InvalidInput(t *testing.T) {
	tests := map[string]map[string]string{
		"blank profession": {"profession": "  ", "tasks": "t", "experience": "مبتدئ"},
		"missing tasks":    {"profession": "p", "experience": "مبتدئ"},
		"unknown level":    {"profession": "p", "tasks": "t", "experience": "خبير"},
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			svc := &fakePlanService{plan: samplePlan()}
			e := newServer(t, svc)

			rec := postJSON(e, "/api/plan", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, svc.calls)
		})
	}
}

func TestGenerate_ErrorKinds(t *testing.T) {
	tests := []struct {
		kind   service.Kind
		status int
	}{
		{service.KindMissingCredential, http.StatusServiceUnavailable},
		{service.KindInvalidCredential, http.StatusBadGateway},
		{service.KindEmptyResponse, http.StatusBadGateway},
		{service.KindUnclassified, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			e := newServer(t, &fakePlanService{err: service.NewError(tt.kind, nil)})

			rec := postJSON(e, "/api/plan", validInput())

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(tt.kind), body["kind"])
			assert.Equal(t, service.UserMessage(tt.kind), body["error"])
		})
	}
}

func TestForm(t *testing.T) {
	e := newServer(t, &fakePlanService{})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "مبتدئ", doc.Find("#experience option[selected]").AttrOr("value", ""))
	assert.Equal(t, "/report", doc.Find("#plan-form").AttrOr("action", ""))
}

func TestReport_OK(t *testing.T) {
	svc := &fakePlanService{plan: samplePlan()}
	e := newServer(t, svc)
	form := url.Values{}
	for k, v := range validInput() {
		form.Set(k, v)
	}

	rec := postForm(e, "/report?tools=free", form)

	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "أهلاً أستاذنا", doc.Find("#greeting h2").Text())
	require.Equal(t, 1, doc.Find("#tools .tool").Length())
	assert.Equal(t, "ChatGPT", doc.Find("#tools .tool h3").Text())
	assert.Equal(t, "معلم مدرسي", doc.Find(`.filters input[name="profession"]`).AttrOr("value", ""))
	assert.Equal(t, "https://www.linkedin.com/sharing/share-offsite/?url=http%3A%2F%2Fexample.com%2F",
		doc.Find(`#share a[data-network="linkedin"]`).AttrOr("href", ""))
}

func TestReport_InvalidInputRefillsForm(t *testing.T) {
	svc := &fakePlanService{plan: samplePlan()}
	e := newServer(t, svc)

	rec := postForm(e, "/report", url.Values{"profession": {"مصمم"}})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.calls)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, invalidInput, strings.TrimSpace(doc.Find("#problem").Text()))
	assert.Equal(t, "مصمم", doc.Find("#profession").AttrOr("value", ""))
}

func TestReport_ErrorPage(t *testing.T) {
	e := newServer(t, &fakePlanService{err: service.NewError(service.KindInvalidCredential, nil)})
	form := url.Values{}
	for k, v := range validInput() {
		form.Set(k, v)
	}

	rec := postForm(e, "/report", form)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "invalid_credential", doc.Find("#error").AttrOr("data-kind", ""))
	assert.Equal(t, service.UserMessage(service.KindInvalidCredential), strings.TrimSpace(doc.Find("#error .message").Text()))
}

func TestText(t *testing.T) {
	e := newServer(t, &fakePlanService{})

	rec := postJSON(e, "/api/plan/text", samplePlan())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
	assert.Equal(t, report.PlanText(samplePlan()), rec.Body.String())
}

func TestExport(t *testing.T) {
	e := newServer(t, &fakePlanService{})

	rec := postJSON(e, "/api/plan/xlsx", samplePlan())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), xlsxFilename)

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(report.SheetTools)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExport_BadJSON(t *testing.T) {
	e := newServer(t, &fakePlanService{})
	req := httptest.NewRequest(http.MethodPost, "/api/plan/xlsx", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
