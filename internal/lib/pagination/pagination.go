// Package pagination разбирает параметры постраничного вывода из запроса.
package pagination

import (
	"net/http"
	"strconv"
)

// DefaultLimit — размер страницы по умолчанию.
const DefaultLimit = 20

// FromQuery возвращает limit и offset из query-параметров запроса.
// Некорректные или отсутствующие значения заменяются значениями по умолчанию.
func FromQuery(r *http.Request) (limit, offset int) {
	limit = DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
