// Package autocat suggests a task category from free text by matching
// keyword substrings against a fixed, ordered table.
package autocat

import (
	"strings"

	"github.com/Vinillian/daily-tracker/internal/models"
)

type rule struct {
	category string
	keywords []string
}

// The table is ordered: the first category with a matching keyword
// wins, so Здоровье outranks Работа for text mentioning both.
var rules = []rule{
	{"🩺 Здоровье", []string{"🩺", "🚑", "💊", "врач", "больниц", "здоровь", "нейрохирург", "приём", "консультация", "диагностика"}},
	{"💼 Работа", []string{"📦", "💼", "🚚", "курьер", "работ", "доход", "зарабат", "проект"}},
	{"📚 Обучение", []string{"📚", "🧮", "📖", "python", "изучение", "лекция", "чтение", "марк лутц", "класс", "атрибут", "программирование"}},
	{"🧘 Практики", []string{"🕉️", "🧘", "☯️", "медитац", "мантра", "растяжка", "даосизм", "духовн", "практик"}},
	{"🏠 Быт", []string{"🏠", "🛏️", "☕", "🍽️", "🛀", "уборк", "завтрак", "ужин", "сбор", "документ", "дом"}},
	{"🎭 Отдых", []string{"📺", "🎬", "🚶", "сериал", "отдых", "прогулка", "разговор", "хобби", "развлечен"}},
}

// Categorize returns the first category whose keyword table has a
// substring match in the lower-cased text, or the default category
// when nothing matches.
func Categorize(text string) string {
	if text == "" {
		return models.DefaultCategory
	}

	lower := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return models.DefaultCategory
}
