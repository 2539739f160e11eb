package store

import (
	"sync"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
)

// Store — кэш каталога на время жизни процесса. Категории заполняются
// лениво или целиком и никогда не удаляются; повторная загрузка категории
// заменяет её список полностью, без слияния отдельных записей.
//
// В отличие от исходной однопоточной модели, HTTP-обработчики работают
// конкурентно, поэтому доступ защищён RWMutex. Читатели всегда видят либо
// прежний, либо полностью заменённый список категории.
type Store struct {
	mu         sync.RWMutex
	byCategory map[catalog.Category][]catalog.Freelancer
	meta       catalog.Metadata
}

// New создаёт пустой store с метаданными по умолчанию.
func New() *Store {
	return &Store{
		byCategory: make(map[catalog.Category][]catalog.Freelancer),
		meta: catalog.Metadata{
			LastUpdated: "2025-05-07 17:45:45",
			UpdatedBy:   "souhail4real",
		},
	}
}

// Get возвращает копию списка категории. Пустой срез, если категория
// ещё не загружена.
func (s *Store) Get(c catalog.Category) []catalog.Freelancer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.byCategory[c]
	out := make([]catalog.Freelancer, len(records))
	copy(out, records)
	return out
}

// Has сообщает, загружена ли категория (в том числе пустым списком).
func (s *Store) Has(c catalog.Category) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.byCategory[c]
	return ok
}

// SetCategory заменяет список категории целиком.
func (s *Store) SetCategory(c catalog.Category, records []catalog.Freelancer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := make([]catalog.Freelancer, len(records))
	copy(owned, records)
	s.byCategory[c] = owned
}

// SetAll заменяет содержимое store данными полной загрузки.
// Категории, отсутствующие в новом наборе, сохраняются как есть.
func (s *Store) SetAll(data map[catalog.Category][]catalog.Freelancer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c, records := range data {
		owned := make([]catalog.Freelancer, len(records))
		copy(owned, records)
		s.byCategory[c] = owned
	}
}

// All возвращает все записи, помеченные категорией, склеенные в
// фиксированном порядке категорий. Внутри категории порядок источника
// сохраняется.
func (s *Store) All() []catalog.TaggedFreelancer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []catalog.TaggedFreelancer
	for _, c := range catalog.AllCategories() {
		for _, f := range s.byCategory[c] {
			out = append(out, catalog.TaggedFreelancer{Freelancer: f, Category: c})
		}
	}
	return out
}

// Empty сообщает, что в store нет ни одной загруженной категории.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byCategory) == 0
}

// Metadata возвращает текущие метаданные каталога.
func (s *Store) Metadata() catalog.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.meta
}

// SetMetadata перезаписывает метаданные целиком.
func (s *Store) SetMetadata(meta catalog.Metadata) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.meta = meta
}
