package controllerImp

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/hosammostafait/AICareerAdvisor/entities"
	"github.com/hosammostafait/AICareerAdvisor/pkg/plan/controller"
	"github.com/hosammostafait/AICareerAdvisor/pkg/plan/service"
	"github.com/hosammostafait/AICareerAdvisor/pkg/report"
	"github.com/hosammostafait/AICareerAdvisor/web"
)

const (
	xlsxMIME     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	xlsxFilename = "masar-plan.xlsx"
	invalidInput = "يرجى إدخال المهنة والمهام واختيار مستوى الخبرة."
)

var levels = []entities.ExperienceLevel{
	entities.ExperienceBeginner,
	entities.ExperienceIntermediate,
	entities.ExperienceAdvanced,
}

var _ controller.PlanController = (*PlanCtrl)(nil)

type PlanCtrl struct {
	svc      service.PlanService
	validate *validator.Validate
}

func NewPlanCtrl(svc service.PlanService) *PlanCtrl {
	return &PlanCtrl{svc: svc, validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (h *PlanCtrl) Form(c echo.Context) error {
	return c.Render(http.StatusOK, web.PageForm, h.formPage(entities.UserInput{Experience: entities.ExperienceBeginner}, ""))
}

// Report handles the form post and renders the plan as a page. The tools
// value (query or form) narrows the tool list to free or paid ones.
func (h *PlanCtrl) Report(c echo.Context) error {
	in, err := h.bindInput(c)
	if err != nil {
		return c.Render(http.StatusBadRequest, web.PageForm, h.formPage(in, invalidInput))
	}

	plan, err := h.svc.Generate(c.Request().Context(), in)
	if err != nil {
		kind := service.KindOf(err)
		return c.Render(statusFor(kind), web.PageError, web.ErrorPage{
			Message: service.UserMessage(kind),
			Kind:    string(kind),
			Input:   in,
		})
	}

	filter := report.ParseToolFilter(c.FormValue("tools"))
	return c.Render(http.StatusOK, web.PageReport, web.ReportPage{
		Input:    in,
		Plan:     plan,
		Filter:   filter,
		Tools:    report.FilterTools(plan.Tools, filter),
		Courses:  report.GroupCoursesByPlatform(plan.Courses),
		Share:    report.ShareLinks(plan, c.Scheme()+"://"+c.Request().Host+"/"),
		PlanText: report.PlanText(plan),
	})
}

func (h *PlanCtrl) Generate(c echo.Context) error {
	in, err := h.bindInput(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	plan, err := h.svc.Generate(c.Request().Context(), in)
	if err != nil {
		kind := service.KindOf(err)
		return c.JSON(statusFor(kind), echo.Map{"error": service.UserMessage(kind), "kind": kind})
	}
	return c.JSON(http.StatusOK, plan)
}

// Text renders a plan posted as JSON in the copyable text form.
func (h *PlanCtrl) Text(c echo.Context) error {
	var plan entities.Plan
	if err := c.Bind(&plan); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	return c.String(http.StatusOK, report.PlanText(&plan))
}

// Export returns a plan posted as JSON as an xlsx workbook.
func (h *PlanCtrl) Export(c echo.Context) error {
	var plan entities.Plan
	if err := c.Bind(&plan); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, &plan); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+xlsxFilename+`"`)
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

// bindInput reads the input from JSON or form data, trims it and checks it.
// The returned input is usable for refilling the form even on error.
func (h *PlanCtrl) bindInput(c echo.Context) (entities.UserInput, error) {
	var in entities.UserInput
	if err := c.Bind(&in); err != nil {
		return in, errors.New("invalid request body")
	}
	in.Profession = strings.TrimSpace(in.Profession)
	in.Tasks = strings.TrimSpace(in.Tasks)
	if lvl, ok := entities.ParseExperience(string(in.Experience)); ok {
		in.Experience = lvl
	}
	if err := h.validate.Struct(in); err != nil {
		return in, describe(err)
	}
	return in, nil
}

func describe(err error) error {
	var fe validator.ValidationErrors
	if !errors.As(err, &fe) {
		return err
	}
	fields := make([]string, 0, len(fe))
	for _, f := range fe {
		fields = append(fields, strings.ToLower(f.Field())+" "+f.Tag())
	}
	return errors.New("invalid input: " + strings.Join(fields, ", "))
}

func statusFor(kind service.Kind) int {
	if kind == service.KindMissingCredential {
		return http.StatusServiceUnavailable
	}
	return http.StatusBadGateway
}

func (h *PlanCtrl) formPage(in entities.UserInput, problem string) web.FormPage {
	if in.Experience == "" {
		in.Experience = entities.ExperienceBeginner
	}
	return web.FormPage{Input: in, Levels: levels, Suggestions: web.Suggestions, Problem: problem}
}
