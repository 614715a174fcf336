package serviceImp

import "github.com/hosammostafait/AICareerAdvisor/entities"

// PromoVideo is the channel entry placed first in every plan's videos.
func PromoVideo() entities.VideoRecommendation {
	return entities.VideoRecommendation{
		Title:       "قناة اكتب صح - حسام مصطفى إبراهيم",
		Summary:     "شروحات عملية وتطبيقية لتوظيف الذكاء الاصطناعي في المهام اليومية.",
		SearchQuery: "اكتب صح حسام مصطفى",
		URL:         "https://www.youtube.com/@Ektebsa7",
	}
}

// PromoArticle is the only article of every plan.
func PromoArticle() entities.ArticleRecommendation {
	return entities.ArticleRecommendation{
		Title:   "مقالات الذكاء الاصطناعي - موقع اكتب صح",
		Summary: "تصفح أحدث المقالات والشروحات حول أدوات الذكاء الاصطناعي.",
		URL:     "https://www.ektebsa7.com/?cat=631",
	}
}

// injectPromotions prepends the channel video and replaces the articles.
// It is not idempotent and must run exactly once per generation.
func injectPromotions(d entities.PlanDraft) *entities.Plan {
	videos := make([]entities.VideoRecommendation, 0, len(d.Videos)+1)
	videos = append(videos, PromoVideo())
	d.Videos = append(videos, d.Videos...)

	return &entities.Plan{
		PlanDraft: d,
		Articles:  []entities.ArticleRecommendation{PromoArticle()},
	}
}
