package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"vastrabazaar/internal/catalog"
	"vastrabazaar/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionCtxKey = "storefront-session"

// Deps carries the services the handlers need.
type Deps struct {
	Catalog  *catalog.Service
	Sessions *session.Hub
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.Catalog == nil {
		return nil, errors.New("catalog service required")
	}
	if deps.Sessions == nil {
		return nil, errors.New("session hub required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = corsOrigins
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		router.Use(cors.New(cfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/sessions", openSessionHandler(deps.Sessions))
	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/products/:id", getProductHandler(deps.Catalog))

	me := router.Group("/me", sessionMiddleware(deps.Sessions))
	{
		me.GET("/cart", getCartHandler)
		me.POST("/cart/items", addCartItemHandler(deps.Catalog))
		me.PATCH("/cart/items/:productId", updateCartItemHandler)
		me.DELETE("/cart/items/:productId", removeCartItemHandler)
		me.DELETE("/cart", clearCartHandler)

		me.GET("/trycart", getTryCartHandler)
		me.POST("/trycart/items", addTryCartItemHandler(deps.Catalog))
		me.DELETE("/trycart/items/:productId", removeTryCartItemHandler)
		me.DELETE("/trycart", clearTryCartHandler)
		me.POST("/trycart/payment", payDepositHandler)
		me.POST("/trycart/move", moveToCartHandler)
		me.POST("/trycart/settlement", settlementHandler)

		me.POST("/auth/login", loginHandler)
		me.POST("/auth/logout", logoutHandler)
	}

	return router, nil
}

// sessionMiddleware resolves the bearer token to a live session and
// stashes it in the request context.
func sessionMiddleware(hub *session.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
			return
		}
		s, err := hub.Lookup(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session token"})
			return
		}
		c.Set(sessionCtxKey, s)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionCtxKey).(*session.Session)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
