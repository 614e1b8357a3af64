package httpserver

import (
	"errors"
	"net/http"

	"vastrabazaar/internal/catalog"
	"vastrabazaar/internal/domain"
	"vastrabazaar/internal/settlement"
	"vastrabazaar/internal/trycart"
	"github.com/gin-gonic/gin"
)

type moveRequest struct {
	ProductIDs []string `json:"productIds" binding:"required"`
}

type settlementRequest struct {
	PurchasedProductIDs []string `json:"purchasedProductIds"`
}

func getTryCartHandler(c *gin.Context) {
	s := currentSession(c)
	c.JSON(http.StatusOK, toTryCartView(s.TryCart()))
}

func addTryCartItemHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		p, err := svc.Get(req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		s := currentSession(c)
		s.AddToTryCart(*p)
		c.JSON(http.StatusOK, toTryCartView(s.TryCart()))
	}
}

func removeTryCartItemHandler(c *gin.Context) {
	s := currentSession(c)
	s.RemoveFromTryCart(c.Param("productId"))
	c.JSON(http.StatusOK, toTryCartView(s.TryCart()))
}

func clearTryCartHandler(c *gin.Context) {
	s := currentSession(c)
	s.ClearTryCart()
	c.JSON(http.StatusOK, toTryCartView(s.TryCart()))
}

func payDepositHandler(c *gin.Context) {
	s := currentSession(c)
	s.PayDeposit()
	c.JSON(http.StatusOK, toTryCartView(s.TryCart()))
}

// moveToCartHandler applies the single-item move per id; ids that are
// not staged are skipped silently. Both resulting snapshots are
// returned so the client can refresh in one round trip.
func moveToCartHandler(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productIds required"})
		return
	}
	s := currentSession(c)
	for _, id := range req.ProductIDs {
		s.MoveToCart(id)
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":    toCartView(s.Cart()),
		"tryCart": toTryCartView(s.TryCart()),
	})
}

func settlementHandler(c *gin.Context) {
	var req settlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settlement request"})
		return
	}
	s := currentSession(c)
	snap := s.TryCart()
	d, err := settlement.Resolve(snap, req.PurchasedProductIDs)
	if err != nil {
		if errors.Is(err, domain.ErrUnpaidDeposit) {
			c.JSON(http.StatusConflict, gin.H{"error": "security deposit not paid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toSettlementView(trycart.SecurityDepositCents, d))
}
