package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/store"
)

// FilterKind — вид применённого фильтра.
type FilterKind string

const (
	FilterKindCategory FilterKind = "category"
	FilterKindMinPrice FilterKind = "min-price"
	FilterKindMaxPrice FilterKind = "max-price"
	FilterKindSkill    FilterKind = "skill"
)

// ActiveFilter описывает одно применённое ограничение. Возвращается вместе
// с результатами, чтобы клиент мог показать фильтры как удаляемые теги.
type ActiveFilter struct {
	Kind  FilterKind `json:"type"`
	Value string     `json:"value"`
}

// FilterCriteria — входные критерии фильтрации. nil-поля означают
// отсутствие ограничения.
type FilterCriteria struct {
	Category *catalog.Category
	MinPrice *int
	MaxPrice *int
	Skills   []string
}

// ParseCriteria собирает критерии из сырых строк запроса.
// Цены парсятся как целые; нечисловые или пустые значения считаются
// отсутствующими, а не нулевыми. Навыки — список через запятую,
// приводится к нижнему регистру, пустые элементы отбрасываются.
// Неизвестная категория — ошибка вызывающему.
func ParseCriteria(categoryRaw, minRaw, maxRaw, skillsRaw string) (FilterCriteria, error) {
	var criteria FilterCriteria

	if categoryRaw != "" {
		c, err := catalog.ParseCategory(categoryRaw)
		if err != nil {
			return FilterCriteria{}, fmt.Errorf("service: %w", err)
		}
		criteria.Category = &c
	}

	if v, err := strconv.Atoi(strings.TrimSpace(minRaw)); err == nil {
		criteria.MinPrice = &v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(maxRaw)); err == nil {
		criteria.MaxPrice = &v
	}

	for _, s := range strings.Split(skillsRaw, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			criteria.Skills = append(criteria.Skills, s)
		}
	}

	return criteria, nil
}

// FilterEngine применяет критерии к содержимому store.
type FilterEngine struct {
	store *store.Store
}

// NewFilterEngine создаёт движок фильтрации над указанным store.
func NewFilterEngine(s *store.Store) *FilterEngine {
	return &FilterEngine{store: s}
}

// Apply отбирает записи по критериям и строит список активных фильтров.
//
// Кандидаты — записи выбранной категории либо все записи store. Предикаты
// соединяются по И: цена не ниже MinPrice, не выше MaxPrice, и хотя бы один
// навык входит в описание как подстрока без учёта регистра (ИЛИ между
// навыками). Относительный порядок кандидатов сохраняется, сортировки нет.
// Пустые критерии возвращают всех кандидатов и пустой список фильтров.
//
// Активные фильтры идут в фиксированном порядке: категория, минимальная
// цена, максимальная цена, затем навыки в порядке ввода.
func (e *FilterEngine) Apply(criteria FilterCriteria) ([]catalog.TaggedFreelancer, []ActiveFilter) {
	var candidates []catalog.TaggedFreelancer
	if criteria.Category != nil {
		for _, f := range e.store.Get(*criteria.Category) {
			candidates = append(candidates, catalog.TaggedFreelancer{
				Freelancer: f,
				Category:   *criteria.Category,
			})
		}
	} else {
		candidates = e.store.All()
	}

	var results []catalog.TaggedFreelancer
	for _, f := range candidates {
		if !matches(f, criteria) {
			continue
		}
		results = append(results, f)
	}

	return results, activeFilters(criteria)
}

// matches проверяет запись против всех предикатов критериев.
func matches(f catalog.TaggedFreelancer, criteria FilterCriteria) bool {
	price := int(f.Price)

	if criteria.MinPrice != nil && price < *criteria.MinPrice {
		return false
	}
	if criteria.MaxPrice != nil && price > *criteria.MaxPrice {
		return false
	}

	if len(criteria.Skills) > 0 {
		description := strings.ToLower(f.ShortDescription)
		found := false
		for _, skill := range criteria.Skills {
			if strings.Contains(description, skill) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// activeFilters строит отображаемый список фильтров в фиксированном порядке.
func activeFilters(criteria FilterCriteria) []ActiveFilter {
	var filters []ActiveFilter

	if criteria.Category != nil {
		filters = append(filters, ActiveFilter{
			Kind:  FilterKindCategory,
			Value: string(*criteria.Category),
		})
	}
	if criteria.MinPrice != nil {
		filters = append(filters, ActiveFilter{
			Kind:  FilterKindMinPrice,
			Value: fmt.Sprintf("$%d+", *criteria.MinPrice),
		})
	}
	if criteria.MaxPrice != nil {
		filters = append(filters, ActiveFilter{
			Kind:  FilterKindMaxPrice,
			Value: fmt.Sprintf("Up to $%d", *criteria.MaxPrice),
		})
	}
	for _, skill := range criteria.Skills {
		filters = append(filters, ActiveFilter{
			Kind:  FilterKindSkill,
			Value: skill,
		})
	}

	return filters
}
