package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hosammostafait/AICareerAdvisor/entities"
	"github.com/hosammostafait/AICareerAdvisor/pkg/plan/service"
	"github.com/hosammostafait/AICareerAdvisor/pkg/report"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

type generateOptions struct {
	profession string
	tasks      string
	experience string
	format     string
}

func newGenerateCmd(load loadConfig) *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one plan and print it",
		Example: `  masar generate --profession "معلم مدرسي" --tasks "تحضير الدروس" --experience beginner
  masar generate --profession accountant --tasks "monthly reports" --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := opts.input()
			if err != nil {
				return err
			}
			a, err := newApp(load)
			if err != nil {
				return err
			}
			defer a.Close()

			plan, err := a.plans.Generate(cmd.Context(), in)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(service.UserMessage(service.KindOf(err))))
				return err
			}
			return printPlan(cmd.OutOrStdout(), plan, opts.format)
		},
	}
	cmd.Flags().StringVar(&opts.profession, "profession", "", "profession, e.g. \"معلم مدرسي\" (required)")
	cmd.Flags().StringVar(&opts.tasks, "tasks", "", "main daily tasks (required)")
	cmd.Flags().StringVar(&opts.experience, "experience", string(entities.ExperienceBeginner), "experience with AI: مبتدئ|متوسط|متقدم or beginner|intermediate|advanced")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text|json")
	_ = cmd.MarkFlagRequired("profession")
	_ = cmd.MarkFlagRequired("tasks")
	return cmd
}

func (o generateOptions) input() (entities.UserInput, error) {
	in := entities.UserInput{
		Profession: strings.TrimSpace(o.profession),
		Tasks:      strings.TrimSpace(o.tasks),
	}
	if in.Profession == "" || in.Tasks == "" {
		return in, fmt.Errorf("--profession and --tasks must not be blank")
	}
	lvl, ok := entities.ParseExperience(o.experience)
	if !ok {
		return in, fmt.Errorf("unknown experience level %q", o.experience)
	}
	in.Experience = lvl
	if o.format != "text" && o.format != "json" {
		return in, fmt.Errorf("unknown format %q (want text or json)", o.format)
	}
	return in, nil
}

func printPlan(w io.Writer, plan *entities.Plan, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	text := report.PlanText(plan)
	heading, body, _ := strings.Cut(text, "\n")
	_, err := fmt.Fprintln(w, titleStyle.Render(heading)+"\n"+body)
	return err
}
