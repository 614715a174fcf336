package repositoryImp

import (
	"gorm.io/gorm"

	"github.com/hosammostafait/AICareerAdvisor/entities"
	"github.com/hosammostafait/AICareerAdvisor/pkg/generation/repository"
)

type generationRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GenerationRepository { return &generationRepo{db} }

func (r *generationRepo) Create(l *entities.GenerationLog) error { return r.db.Create(l).Error }

func (r *generationRepo) CountByOutcome() (map[string]int64, error) {
	var rows []struct {
		Outcome string
		N       int64
	}
	err := r.db.Model(&entities.GenerationLog{}).
		Select("outcome, COUNT(*) AS n").
		Group("outcome").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Outcome] = row.N
	}
	return out, nil
}

func (r *generationRepo) Recent(limit int) ([]entities.GenerationLog, error) {
	var ls []entities.GenerationLog
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&ls).Error; err != nil {
		return nil, err
	}
	return ls, nil
}
