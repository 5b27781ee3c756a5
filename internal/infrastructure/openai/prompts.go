package openai

import "strings"

// Language codes the mobile app sends.
const (
	LanguageEnglish    = "en"
	LanguageLithuanian = "lt"
	LanguageRussian    = "ru"
)

// jsonShapeHint pins the reply shape regardless of the answer language, so
// parsing never depends on which prompt was used.
const jsonShapeHint = `Respond with a single JSON object using exactly these keys:
{
  "brandAndModel": "string or omit",
  "materials": {"upper": "", "lining": "", "insole": "", "outsole": "", "laces": "", "tongue": ""},
  "cleaningRecommendations": [{"affectedPart": "", "recommendations": [""]}],
  "recommendedTags": [""],
  "generalCare": ""
}
Use "unknown" for any material you cannot determine from the photo.`

var analysisPrompts = map[string]string{
	LanguageEnglish: `You are a footwear care expert. Look at this shoe photo and identify the brand and model if visible, the material of each part of the shoe, which parts show dirt, stains or wear, and how to clean and care for each affected part. Suggest a few short product tags (e.g. "suede brush", "leather cleaner") that describe what the owner should buy. Answer in English. ` + jsonShapeHint,

	LanguageLithuanian: `Esi avalynės priežiūros ekspertas. Apžiūrėk šią batų nuotrauką ir nustatyk prekės ženklą bei modelį, jei matomas, kiekvienos bato dalies medžiagą, kurios dalys nešvarios, dėmėtos ar nusidėvėjusios, ir kaip kiekvieną paveiktą dalį valyti bei prižiūrėti. Pasiūlyk kelias trumpas produktų žymas (pvz. "suede brush", "leather cleaner") angliškai. Atsakyk lietuviškai. ` + jsonShapeHint,

	LanguageRussian: `Ты эксперт по уходу за обувью. Посмотри на фото обуви и определи бренд и модель, если видны, материал каждой части обуви, какие части загрязнены, в пятнах или изношены, и как чистить и ухаживать за каждой повреждённой частью. Предложи несколько коротких товарных тегов (например "suede brush", "leather cleaner") на английском. Отвечай по-русски. ` + jsonShapeHint,
}

// PromptFor returns the instruction prompt for the requested language code,
// falling back to English for anything unsupported. A non-empty user question
// is appended so the model addresses it in its general care answer.
func PromptFor(language, question string) string {
	prompt, ok := analysisPrompts[strings.ToLower(language)]
	if !ok {
		prompt = analysisPrompts[LanguageEnglish]
	}
	if question != "" {
		prompt += "\n\nUser question: " + question
	}
	return prompt
}
