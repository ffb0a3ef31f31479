package services

import "github.com/tbourn/go-ecommerce-api/internal/utils"

// Default and maximum page sizes applied by every ListPage method.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// listPage runs count then list, skipping the list query when the table is
// empty. The returned slice is never nil.
func listPage[T any](page, pageSize int, count func() (int64, error), list func(offset, limit int) ([]T, error)) ([]T, int64, error) {
	_, size, offset := utils.PageWindow(page, pageSize, defaultPageSize, maxPageSize)

	total, err := count()
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []T{}, 0, nil
	}
	items, err := list(offset, size)
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []T{}
	}
	return items, total, nil
}
