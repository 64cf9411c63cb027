package paging

import (
	"math"

	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
)

// MaxPage keeps (page-1)*limit inside int for any allowed limit.
const MaxPage = math.MaxInt / constant.MaxPageSize

// Normalize clamps page and limit to sane values and returns the matching row offset.
func Normalize(page, limit int) (int, int, int) {
	if page < 1 {
		page = constant.DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = constant.DefaultPageSize
	}
	if limit > constant.MaxPageSize {
		limit = constant.MaxPageSize
	}
	return page, limit, (page - 1) * limit
}
