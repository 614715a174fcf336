package service

import (
	"context"

	"github.com/hosammostafait/AICareerAdvisor/entities"
)

type PlanService interface {
	// Generate turns the user's input into a plan with exactly one call to
	// the model. Failures are *GenerateError values; no partial plan is
	// ever returned.
	Generate(ctx context.Context, in entities.UserInput) (*entities.Plan, error)
}
