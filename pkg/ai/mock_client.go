// pkg/ai/mock_client.go

package ai

import "context"

type mockClient struct{}

// NewMockFactory returns a Factory whose clients answer with a fixed plan.
// It is meant for running the service without network access.
func NewMockFactory() Factory {
	return func(ctx context.Context, apiKey string) (Client, error) {
		return &mockClient{}, nil
	}
}

func (m *mockClient) GenerateJSON(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return mockPlanJSON, nil
}

const mockPlanJSON = `{
  "greeting": "أهلاً بك! هذه خطة مبدئية (mock) لتوظيف الذكاء الاصطناعي في عملك.",
  "tools": [
    {"name": "ChatGPT", "description": "مساعد محادثة لكتابة المسودات وتلخيص النصوص.", "usage": "اطلب منه مسودة أولى ثم حررها بأسلوبك.", "url": "https://chat.openai.com", "category": "writing", "isPaid": false},
    {"name": "Canva", "description": "تصميم سريع للعروض والمنشورات.", "usage": "استخدم القوالب الجاهزة مع ميزة التصميم السحري.", "url": "https://www.canva.com", "category": "design", "isPaid": false},
    {"name": "Notion AI", "description": "تنظيم الملاحظات والمهام.", "usage": "لخّص الاجتماعات وحوّلها إلى مهام.", "url": "https://www.notion.so", "category": "productivity", "isPaid": true},
    {"name": "Gemini", "description": "مساعد بحث وكتابة من جوجل.", "usage": "ابحث عن مصادر موثوقة وقارن بينها.", "url": "https://gemini.google.com", "category": "other", "isPaid": false}
  ],
  "videos": [
    {"title": "مقدمة في أدوات الذكاء الاصطناعي", "summary": "جولة سريعة على أشهر الأدوات.", "searchQuery": "مقدمة أدوات الذكاء الاصطناعي"}
  ],
  "courses": [
    {"title": "الذكاء الاصطناعي للجميع", "platform": "Coursera", "summary": "أساسيات الذكاء الاصطناعي دون برمجة.", "url": "https://www.coursera.org/learn/ai-for-everyone"},
    {"title": "مدخل إلى الذكاء الاصطناعي", "platform": "Edraak", "summary": "دورة عربية مجانية.", "url": "https://www.edraak.org"},
    {"title": "هندسة الأوامر", "platform": "Udemy", "summary": "كتابة أوامر فعالة للنماذج اللغوية.", "url": "https://www.udemy.com"}
  ],
  "steps": [
    "اختر مهمة واحدة متكررة وجرّب عليها أداة واحدة هذا الأسبوع.",
    "دوّن الوقت الذي وفرته وقارن النتائج.",
    "وسّع الاستخدام تدريجياً إلى مهام أخرى."
  ],
  "tips": [
    "راجع مخرجات الذكاء الاصطناعي دائماً قبل اعتمادها.",
    "لا تشارك بيانات سرية مع الأدوات العامة."
  ]
}`
