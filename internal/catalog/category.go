package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory возвращается при разборе идентификатора вне перечисления.
var ErrUnknownCategory = errors.New("catalog: неизвестная категория")

// Category — закрытое перечисление категорий каталога.
// Набор фиксирован: динамические строковые ключи не допускаются.
type Category string

const (
	CategoryWebDevelopment    Category = "web-development"
	CategoryMobileDevelopment Category = "mobile-development"
	CategoryDataScienceML     Category = "data-science-ml"
	CategoryCybersecurity     Category = "cybersecurity"
	CategoryCloudDevOps       Category = "cloud-devops"
)

// DefaultCategory — категория, отображаемая при первом открытии каталога.
const DefaultCategory = CategoryWebDevelopment

// AllCategories возвращает категории в фиксированном порядке.
// Этот порядок используется везде, где нужен детерминированный обход
// (склейка всех категорий, извлечение навыков).
func AllCategories() []Category {
	return []Category{
		CategoryWebDevelopment,
		CategoryMobileDevelopment,
		CategoryDataScienceML,
		CategoryCybersecurity,
		CategoryCloudDevOps,
	}
}

var displayNames = map[Category]string{
	CategoryWebDevelopment:    "Web Development",
	CategoryMobileDevelopment: "Mobile Development",
	CategoryDataScienceML:     "Data Science & ML",
	CategoryCybersecurity:     "Cybersecurity",
	CategoryCloudDevOps:       "Cloud & DevOps",
}

// DisplayName возвращает человекочитаемое имя категории.
// Для неизвестной категории возвращает её идентификатор как есть.
func (c Category) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// Valid сообщает, входит ли категория в перечисление.
func (c Category) Valid() bool {
	_, ok := displayNames[c]
	return ok
}

// ParseCategory валидирует строковый идентификатор категории.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
