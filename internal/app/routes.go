package app

import (
	"context"
	"net/http"
	"time"

	_ "skillswap/docs"
	"skillswap/internal/service/auth"
	"skillswap/internal/service/matching"
	"skillswap/internal/service/profile"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type pinger func(ctx context.Context) error

type Routes struct {
	r *gin.Engine
}

func NewRoutes(r *gin.Engine) *Routes {
	return &Routes{
		r: r,
	}
}

func (o *Routes) setupInfraRoutes(deps map[string]pinger) {
	o.r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	o.r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	o.r.GET("/docs", docsHandler)
	o.r.GET("/health", healthHandler(deps))
}

func docsHandler(c *gin.Context) {
	c.Redirect(http.StatusFound, "/swagger/index.html")
}

// healthHandler reports 503 when any dependency fails to answer a ping.
func healthHandler(deps map[string]pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := make(map[string]string, len(deps))
		for name, ping := range deps {
			if err := ping(ctx); err != nil {
				checks[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}

		c.JSON(status, gin.H{"status": http.StatusText(status), "checks": checks})
	}
}

// setupProfileRoutes registers profile endpoints
func (o *Routes) setupProfileRoutes(auth *auth.Handler, ps *profile.Service) {
	profileHandler := profile.NewHandler(ps)

	o.r.GET("/users/:id", profileHandler.GetUser)

	authorized := o.r.Group("/", auth.AuthMiddleware())
	{
		authorized.GET("/profile", profileHandler.GetProfile)
		authorized.PUT("/profile", profileHandler.UpdateProfile)
	}
}

// setupMatchingRoutes registers matching endpoints
func (o *Routes) setupMatchingRoutes(auth *auth.Handler, ms *matching.Service) {
	matchingHandler := matching.NewHandler(ms)

	authorized := o.r.Group("/", auth.AuthMiddleware())
	{
		authorized.GET("/matches", matchingHandler.FindMatches)
		authorized.GET("/matches/:id", matchingHandler.GetMatch)
		authorized.GET("/skills/recommendations", matchingHandler.RecommendSkills)
	}
}
