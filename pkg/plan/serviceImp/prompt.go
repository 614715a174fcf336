package serviceImp

import (
	"fmt"

	"github.com/hosammostafait/AICareerAdvisor/entities"
)

func renderPrompt(in entities.UserInput) string {
	return fmt.Sprintf(`أنت مستشار ذكاء اصطناعي خبير. المستخدم يعمل بمهنة: %s. المهام الأساسية: %s. مستوى الخبرة: %s.
قدم خطة كاملة لتوظيف الذكاء الاصطناعي في عمله باللغة العربية بصيغة JSON تتضمن:
- تحية مخصصة تناسب مهنته (greeting).
- من 4 إلى 8 أدوات ذكاء اصطناعي تجمع بين المجانية والمدفوعة، لكل أداة وصف وطريقة استخدام ورابط وتصنيف واحد من: writing, image, video, design, coding, productivity, other (tools).
- فيديوهات تعليمية مع عبارة بحث دقيقة على يوتيوب لكل فيديو (videos).
- من 3 إلى 5 دورات من منصات معروفة مثل Coursera وUdemy وEdraak وAlmentor مع الروابط (courses).
- 3 خطوات عملية بالضبط للبدء (steps).
- نصائح للتركيز وتجنب الأخطاء الشائعة (tips).`,
		in.Profession, in.Tasks, in.Experience)
}
