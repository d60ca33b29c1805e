package httpx

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrBadNumber - параметр не является допустимым целым.
var ErrBadNumber = errors.New("bad numeric parameter")

// Page - окно выборки limit/offset.
type Page struct {
	Limit  int
	Offset int
}

// PageFromQuery - limit/offset из query. Нечисловой limit заменяется дефолтом,
// limit прижимается к [1, maxLimit], отрицательный или нечисловой offset -> 0.
func PageFromQuery(c *gin.Context, defaultLimit, maxLimit int) Page {
	p := Page{Limit: min(max(defaultLimit, 1), maxLimit)}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		p.Limit = min(max(v, 1), maxLimit)
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		p.Offset = v
	}
	return p
}

// ParseID - строго положительный идентификатор.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadNumber
	}
	return id, nil
}

// ParseOptionalUint - необязательное неотрицательное число; пустая строка -> 0.
func ParseOptionalUint(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0, ErrBadNumber
	}
	return v, nil
}
