package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"vastrabazaar/internal/catalog"
	"vastrabazaar/internal/domain"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q catalog.Query

		if v := c.Query("category"); v != "" {
			cat := domain.Category(v)
			if !cat.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
				return
			}
			q.Category = cat
		}
		var err error
		if q.MinPriceCents, err = priceParam(c, "minPrice"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minPrice must be a non-negative integer"})
			return
		}
		if q.MaxPriceCents, err = priceParam(c, "maxPrice"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be a non-negative integer"})
			return
		}
		switch v := catalog.Order(c.Query("sort")); v {
		case "", catalog.OrderPopularity, catalog.OrderPriceLow, catalog.OrderPriceHigh, catalog.OrderNewest:
			q.Sort = v
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort order"})
			return
		}

		products := svc.Search(q)
		c.JSON(http.StatusOK, gin.H{
			"products": toProductViews(products),
			"total":    len(products),
		})
	}
}

func getProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toProductView(*p))
	}
}

func priceParam(c *gin.Context, name string) (int64, error) {
	v := c.Query(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, errors.New("invalid price parameter")
	}
	return n, nil
}
