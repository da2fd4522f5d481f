// scoring содержит чистые функции расчёта производных метрик статьи:
// время чтения, количество слов, ключевые слова, оценки качества,
// вовлечённости и трендовости.
//
// Все функции детерминированы и не имеют побочных эффектов — они
// вызываются на каждом создании/обновлении статьи и при ранжировании,
// поэтому должны тестироваться изолированно.
package scoring

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
)

// wordsPerMinute — базовая скорость чтения для оценки времени.
const wordsPerMinute = 200

// DefaultMaxKeywords — количество ключевых слов по умолчанию.
const DefaultMaxKeywords = 10

// stopWords — фиксированный набор стоп-слов для извлечения ключевых слов.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "can": {}, "may": {},
	"might": {}, "this": {}, "that": {}, "these": {}, "those": {}, "i": {},
	"you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {}, "me": {},
	"him": {}, "her": {}, "us": {}, "them": {},
}

// wordRe — алфавитные токены длиной >= 3.
var wordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// WordCount возвращает количество слов (токены по пробельным символам).
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// ReadingTime возвращает оценку времени чтения в минутах (200 слов/мин).
// Никогда не возвращает меньше 1.
func ReadingTime(content string) int {
	minutes := int(math.Round(float64(WordCount(content)) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// ExtractKeywords извлекает до maxKeywords ключевых слов:
// алфавитные токены длиной >= 3 в нижнем регистре, без стоп-слов,
// отсортированные по частоте (убывание). При равной частоте порядок
// стабилен — слово, встреченное раньше, идёт первым.
func ExtractKeywords(content string, maxKeywords int) []string {
	if maxKeywords <= 0 {
		return nil
	}

	words := wordRe.FindAllString(strings.ToLower(content), -1)

	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	return order
}

// QualityScore оценивает качество контента в диапазоне [0, 100].
//
// Слагаемые (каждое с собственным потолком):
//   - длина: >=500 слов -> 30, >=300 -> 20, >=150 -> 10, иначе 0;
//   - заголовок: 5–12 слов -> 20, 3–15 -> 15, иначе 5;
//   - аннотация: есть и длиннее 50 символов -> 15, просто есть -> 10, нет -> 0;
//   - читабельность: средняя длина предложения 10–20 слов -> 20, 5–25 -> 15, иначе 10;
//   - структура: >=3 абзацев -> 15, >=2 -> 10, иначе 5.
//
// Результат округляется до 2 знаков и обрезается сверху до 100.
func QualityScore(content, title, summary string) float64 {
	var score float64

	// Длина контента (0-30).
	switch wc := WordCount(content); {
	case wc >= 500:
		score += 30
	case wc >= 300:
		score += 20
	case wc >= 150:
		score += 10
	}

	// Качество заголовка (0-20).
	switch tw := len(strings.Fields(title)); {
	case tw >= 5 && tw <= 12:
		score += 20
	case tw >= 3 && tw <= 15:
		score += 15
	default:
		score += 5
	}

	// Наличие аннотации (0-15).
	if len(strings.TrimSpace(summary)) > 50 {
		score += 15
	} else if summary != "" {
		score += 10
	}

	// Читабельность (0-20): грубая оценка по средней длине предложения.
	sentences := strings.Split(content, ".")
	var totalWords int
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}
	avgSentence := float64(totalWords) / float64(len(sentences))
	switch {
	case avgSentence >= 10 && avgSentence <= 20:
		score += 20
	case avgSentence >= 5 && avgSentence <= 25:
		score += 15
	default:
		score += 10
	}

	// Структура (0-15): количество абзацев.
	switch paragraphs := len(strings.Split(content, "\n\n")); {
	case paragraphs >= 3:
		score += 15
	case paragraphs >= 2:
		score += 10
	default:
		score += 5
	}

	return round2(math.Min(score, 100))
}

// EngagementScore считает вовлечённость по агрегатам взаимодействий.
// При нуле просмотров возвращает 0. Рейты нормируются на просмотры,
// completion — доля среднего времени чтения от расчётного (не более 1).
func EngagementScore(views, likes, shares, comments int64, readingTimeMinutes int, avgTimeSpentSeconds float64) float64 {
	if views == 0 {
		return 0
	}

	v := float64(views)
	likeRate := float64(likes) / v
	shareRate := float64(shares) / v
	commentRate := float64(comments) / v

	var completionRate float64
	if readingTimeMinutes > 0 {
		completionRate = math.Min(avgTimeSpentSeconds/(float64(readingTimeMinutes)*60), 1.0)
	}

	score := (likeRate*0.3 + shareRate*0.3 + commentRate*0.2 + completionRate*0.2) * 100

	return round2(score)
}

// TrendingScore считает трендовость по активности и свежести публикации.
//
// activity = views*0.1 + likes*2 + shares*3 + comments*2.5;
// множитель затухания по возрасту: <=1ч -> 1.0, <=24ч -> 0.8,
// <=72ч -> 0.6, <=168ч -> 0.4, иначе 0.1.
func TrendingScore(views, likes, shares, comments int64, publishedAt, now time.Time) float64 {
	hours := now.Sub(publishedAt).Hours()

	var timeFactor float64
	switch {
	case hours <= 1:
		timeFactor = 1.0
	case hours <= 24:
		timeFactor = 0.8
	case hours <= 72:
		timeFactor = 0.6
	case hours <= 168:
		timeFactor = 0.4
	default:
		timeFactor = 0.1
	}

	activity := float64(views)*0.1 + float64(likes)*2 + float64(shares)*3 + float64(comments)*2.5

	return round2(activity * timeFactor)
}

// round2 округляет до 2 знаков после запятой.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
