package service

// DefaultPageSize — размер страницы каталога по умолчанию.
const DefaultPageSize = 28

// Paginate возвращает страницу списка и общее число страниц.
//
// Нумерация страниц с единицы. Число страниц — округление вверх, ноль для
// пустого списка. Страница за пределами диапазона даёт пустой срез: клампа
// и зацикливания нет, за корректность номера отвечает вызывающий.
func Paginate[T any](records []T, pageSize, page int) ([]T, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalPages := (len(records) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if page < 1 || start >= len(records) {
		return nil, totalPages
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	return records[start:end], totalPages
}
