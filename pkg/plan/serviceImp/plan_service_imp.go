package serviceImp

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hosammostafait/AICareerAdvisor/entities"
	"github.com/hosammostafait/AICareerAdvisor/logger"
	"github.com/hosammostafait/AICareerAdvisor/pkg/ai"
	genrepo "github.com/hosammostafait/AICareerAdvisor/pkg/generation/repository"
	"github.com/hosammostafait/AICareerAdvisor/pkg/metrics"
	"github.com/hosammostafait/AICareerAdvisor/pkg/plan/service"
)

const outcomeOK = "ok"

// draftSchema is sent with every request and checked against every answer.
var draftSchema = ai.SchemaFor(entities.PlanDraft{})

type Options struct {
	APIKey  string
	Model   string
	Timeout time.Duration // zero leaves the caller's deadline alone
}

var _ service.PlanService = (*PlanSvc)(nil)

type PlanSvc struct {
	opts      Options
	newClient ai.Factory
	logs      genrepo.GenerationRepository
	metrics   *metrics.Metrics
	log       logger.Logger
	now       func() time.Time
}

// NewPlanService wires the generation pipeline. logs and m may be nil.
func NewPlanService(opts Options, newClient ai.Factory, logs genrepo.GenerationRepository, m *metrics.Metrics, log logger.Logger) *PlanSvc {
	if log == nil {
		log = logger.NewNop()
	}
	return &PlanSvc{opts: opts, newClient: newClient, logs: logs, metrics: m, log: log, now: time.Now}
}

// CredentialConfigured reports whether an API key is set. Empty strings and
// the literal "undefined" left behind by unset build-time variables count
// as not configured.
func CredentialConfigured(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != "undefined"
}

func (s *PlanSvc) Generate(ctx context.Context, in entities.UserInput) (*entities.Plan, error) {
	start := s.now()
	plan, err := s.generate(ctx, in)
	elapsed := s.now().Sub(start)

	outcome := outcomeOK
	if err != nil {
		outcome = string(service.KindOf(err))
		s.log.Error("plan generation failed",
			logger.String("kind", outcome),
			logger.String("experience", string(in.Experience)),
			logger.Int64("latency_ms", elapsed.Milliseconds()),
			logger.Err(err),
		)
	} else {
		s.log.Info("plan generated",
			logger.String("experience", string(in.Experience)),
			logger.Int("tools", len(plan.Tools)),
			logger.Int("videos", len(plan.Videos)),
			logger.Int64("latency_ms", elapsed.Milliseconds()),
		)
	}
	s.metrics.ObserveGeneration(outcome, elapsed)
	s.record(in, plan, outcome, start, elapsed)

	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanSvc) generate(ctx context.Context, in entities.UserInput) (*entities.Plan, error) {
	if !CredentialConfigured(s.opts.APIKey) {
		return nil, service.NewError(service.KindMissingCredential, nil)
	}
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	client, err := s.newClient(ctx, s.opts.APIKey)
	if err != nil {
		return nil, classify(err)
	}
	text, err := client.GenerateJSON(ctx, ai.Request{
		Model:  s.opts.Model,
		Prompt: renderPrompt(in),
		Schema: draftSchema,
	})
	if err != nil {
		return nil, classify(err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, service.NewError(service.KindEmptyResponse, nil)
	}

	draft, err := parseDraft(text)
	if err != nil {
		return nil, service.NewError(service.KindUnclassified, err)
	}
	return injectPromotions(draft), nil
}

func parseDraft(text string) (entities.PlanDraft, error) {
	var d entities.PlanDraft
	if err := ai.Validate(draftSchema, []byte(text)); err != nil {
		return d, err
	}
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return d, err
	}
	for i := range d.Tools {
		if !d.Tools[i].Category.Valid() {
			d.Tools[i].Category = entities.CategoryOther
		}
	}
	return d, nil
}

// record writes the audit entry. Storage problems are logged and never
// change the result of the generation.
func (s *PlanSvc) record(in entities.UserInput, plan *entities.Plan, outcome string, start time.Time, elapsed time.Duration) {
	if s.logs == nil {
		return
	}
	entry := &entities.GenerationLog{
		ID:         uuid.NewString(),
		Experience: string(in.Experience),
		Outcome:    outcome,
		LatencyMS:  elapsed.Milliseconds(),
		CreatedAt:  start,
	}
	if plan != nil {
		entry.Tools, entry.Videos, entry.Courses = len(plan.Tools), len(plan.Videos), len(plan.Courses)
	}
	if err := s.logs.Create(entry); err != nil {
		s.log.Warn("record generation", logger.Err(err))
	}
}
