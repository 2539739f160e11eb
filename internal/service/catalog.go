package service

import (
	"context"

	"github.com/souhail4real/freelanci-catalog/internal/catalog"
	"github.com/souhail4real/freelanci-catalog/internal/store"
)

// CategoryLoader загружает одну категорию из upstream в store.
type CategoryLoader interface {
	LoadCategory(ctx context.Context, cat catalog.Category) ([]catalog.Freelancer, error)
}

// CatalogService отдаёт страницы каталога, лениво подгружая категории:
// категория запрашивается у upstream при первом обращении, дальше
// обслуживается из store.
type CatalogService struct {
	store  *store.Store
	loader CategoryLoader
}

// NewCatalogService создаёт сервис каталога.
func NewCatalogService(s *store.Store, loader CategoryLoader) *CatalogService {
	return &CatalogService{store: s, loader: loader}
}

// Browse возвращает страницу категории и общее число страниц.
// Ошибка загрузки не фатальна: сервис деградирует до пустой страницы,
// ошибка уже залогирована загрузчиком.
func (s *CatalogService) Browse(ctx context.Context, cat catalog.Category, page, pageSize int) ([]catalog.Freelancer, int) {
	if len(s.store.Get(cat)) == 0 {
		// Повторная неудачная загрузка не кэшируется: следующий запрос
		// попробует снова.
		_, _ = s.loader.LoadCategory(ctx, cat)
	}

	records := s.store.Get(cat)
	return Paginate(records, pageSize, page)
}
