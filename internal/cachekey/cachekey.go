// cachekey строит детерминированные ключи эпемерного кэша из
// структурированных параметров запроса.
//
// Ключ — чистая функция входа: одинаковые наборы полей (в любом порядке)
// всегда дают одинаковый ключ, поэтому поля сериализуются в каноническом
// виде — отсортированными по имени.
package cachekey

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// recommendationsPrefix — пространство ключей рекомендаций.
const recommendationsPrefix = "recommendations"

// Recommendations возвращает ключ кэша рекомендаций для пользователя:
// "recommendations:<userID>:<sha256-hex от канонической сериализации полей>".
func Recommendations(userID uuid.UUID, fields map[string]any) string {
	return recommendationsPrefix + ":" + userID.String() + ":" + digest(fields)
}

// digest сериализует поля канонически (сортировка по имени, "name=value",
// разделитель ":") и возвращает hex-представление sha256-дайджеста.
func digest(fields map[string]any) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+encodeValue(fields[name]))
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}

// encodeValue приводит значение поля к строковому литералу.
// Скаляры кодируются как есть, последовательности трактуются как
// множества (сортировка элементов, затем запятая), прочие типы —
// через хэш их отладочного представления.
func encodeValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case []string:
		sorted := make([]string, len(val))
		copy(sorted, val)
		sort.Strings(sorted)
		return strings.Join(sorted, ",")
	case []int32:
		sorted := make([]int32, len(val))
		copy(sorted, val)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		parts := make([]string, 0, len(sorted))
		for _, x := range sorted {
			parts = append(parts, strconv.FormatInt(int64(x), 10))
		}
		return strings.Join(parts, ",")
	case fmt.Stringer:
		return val.String()
	default:
		sum := sha256.Sum256([]byte(fmt.Sprintf("%v", v)))
		return hex.EncodeToString(sum[:])
	}
}
