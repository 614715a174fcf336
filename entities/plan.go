package entities

import "strings"

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "مبتدئ"
	ExperienceIntermediate ExperienceLevel = "متوسط"
	ExperienceAdvanced     ExperienceLevel = "متقدم"
)

// ParseExperience accepts the Arabic level names used by the form and
// their English equivalents used on the command line.
func ParseExperience(s string) (ExperienceLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ExperienceBeginner), "beginner":
		return ExperienceBeginner, true
	case string(ExperienceIntermediate), "intermediate":
		return ExperienceIntermediate, true
	case string(ExperienceAdvanced), "advanced":
		return ExperienceAdvanced, true
	}
	return "", false
}

type UserInput struct {
	Profession string          `json:"profession" form:"profession" validate:"required"`
	Tasks      string          `json:"tasks" form:"tasks" validate:"required"`
	Experience ExperienceLevel `json:"experience" form:"experience" validate:"required,oneof=مبتدئ متوسط متقدم"`
}

type ToolCategory string // writing|image|video|design|coding|productivity|other

const (
	CategoryWriting      ToolCategory = "writing"
	CategoryImage        ToolCategory = "image"
	CategoryVideo        ToolCategory = "video"
	CategoryDesign       ToolCategory = "design"
	CategoryCoding       ToolCategory = "coding"
	CategoryProductivity ToolCategory = "productivity"
	CategoryOther        ToolCategory = "other"
)

func (c ToolCategory) Valid() bool {
	switch c {
	case CategoryWriting, CategoryImage, CategoryVideo, CategoryDesign,
		CategoryCoding, CategoryProductivity, CategoryOther:
		return true
	}
	return false
}

type ToolRecommendation struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Usage       string       `json:"usage"`
	URL         string       `json:"url"`
	Category    ToolCategory `json:"category"`
	IsPaid      bool         `json:"isPaid"`
}

type VideoRecommendation struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	SearchQuery string `json:"searchQuery"`
	URL         string `json:"url,omitempty"`
}

type CourseRecommendation struct {
	Title      string `json:"title"`
	Platform   string `json:"platform"` // free text: Udemy, Coursera, Edraak...
	Instructor string `json:"instructor,omitempty"`
	Summary    string `json:"summary"`
	URL        string `json:"url"`
}

type ArticleRecommendation struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

// PlanDraft is the part of a plan produced by the model. Its JSON shape is
// also the response schema sent with every generation request: fields
// without omitempty are required.
type PlanDraft struct {
	Greeting string                 `json:"greeting"`
	Tools    []ToolRecommendation   `json:"tools"`
	Videos   []VideoRecommendation  `json:"videos"`
	Courses  []CourseRecommendation `json:"courses"`
	Steps    []string               `json:"steps"`
	Tips     []string               `json:"tips"`
}

type Plan struct {
	PlanDraft
	Articles []ArticleRecommendation `json:"articles"`
}
