package repository

import "github.com/hosammostafait/AICareerAdvisor/entities"

type GenerationRepository interface {
	Create(l *entities.GenerationLog) error
	CountByOutcome() (map[string]int64, error)
	Recent(limit int) ([]entities.GenerationLog, error)
}
