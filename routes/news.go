package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"news-ko-backend/controllers"
)

// SetupRoutes registers the read API. The static "lists" segment takes
// priority over the :id parameter, so /news/science/lists is always the
// category listing and never an article lookup.
func SetupRoutes(router *gin.Engine, news *controllers.NewsController) {
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "X-Amz-Date", "Authorization", "X-Api-Key", "X-Amz-Security-Token"},
	}))

	group := router.Group("/news")
	{
		group.GET("/lists", news.ListAll)
		group.GET("/:category/lists", news.ListByCategory)
		group.GET("/:category/:id", news.GetArticle)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "요청한 리소스를 찾을 수 없습니다."})
	})
}
