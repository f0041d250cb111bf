// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaginationParams struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Page is the list-response envelope: a total count plus one page of
// results.
type Page struct {
	Count   int64       `json:"count"`
	Results interface{} `json:"results"`
}

func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return PaginationParams{Page: page, PageSize: pageSize}
}

func ApplyPagination(db *gorm.DB, params PaginationParams) *gorm.DB {
	offset := (params.Page - 1) * params.PageSize
	return db.Offset(offset).Limit(params.PageSize)
}

func PaginatedResponse(c *gin.Context, results interface{}, total int64, params PaginationParams) {
	totalPages := int(math.Ceil(float64(total) / float64(params.PageSize)))
	c.Header("X-Total-Count", strconv.FormatInt(total, 10))
	c.Header("X-Page", strconv.Itoa(params.Page))
	c.Header("X-Total-Pages", strconv.Itoa(totalPages))
	SuccessResponse(c, Page{Count: total, Results: results})
}
