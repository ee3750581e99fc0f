package tagstore

import (
	"regexp"
	"strings"

	"event-insights-service/internal/domain"
)

const internalPrefix = "sentry:"

var (
	userPrefixes = []string{"id:", "email:", "username:", "ip:"}
	hexSHA       = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)
)

// TagStore реализует domain.TagStore без обращения к хранилищу:
// отображаемые метки выводятся из самих ключей и значений.
type TagStore struct{}

// New создает новый экземпляр TagStore.
func New() domain.TagStore {
	return &TagStore{}
}

// GetStandardizedKey убирает служебный префикс ключа.
func (s *TagStore) GetStandardizedKey(key string) string {
	return strings.TrimPrefix(key, internalPrefix)
}

// GetTagValueLabel возвращает отображаемую метку значения тега.
func (s *TagStore) GetTagValueLabel(key, value string) string {
	switch key {
	case "sentry:user":
		for _, prefix := range userPrefixes {
			if strings.HasPrefix(value, prefix) {
				return value[len(prefix):]
			}
		}
	case "sentry:release":
		return FormatVersion(value)
	}
	return value
}

// FormatVersion сокращает версию релиза для отображения.
func FormatVersion(version string) string {
	// package@1.2.3 -> 1.2.3
	if i := strings.LastIndex(version, "@"); i > 0 && i < len(version)-1 {
		version = version[i+1:]
	}
	if hexSHA.MatchString(version) {
		return version[:12]
	}
	return version
}
