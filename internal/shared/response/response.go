package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Total  int64 `json:"total,omitempty"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit,omitempty"`
	Count  int   `json:"count"`
}

func NewPaginationMeta(offset, limit, count int) PaginationMeta {
	return PaginationMeta{
		Offset: offset,
		Limit:  limit,
		Count:  count,
	}
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error any             `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:    true,
		Data:  data,
		Meta:  meta,
		Error: nil,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok:   false,
		Data: nil,
		Meta: nil,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// PageLimits bounds the page size a listing endpoint hands to storage.
type PageLimits struct {
	Default int
	Max     int
}

// Clamp replaces a missing limit with the default and caps it at Max.
func (p PageLimits) Clamp(limit int) int {
	if limit <= 0 {
		return p.Default
	}
	if p.Max > 0 && limit > p.Max {
		return p.Max
	}
	return limit
}
