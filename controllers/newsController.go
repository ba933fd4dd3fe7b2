package controllers

import (
	"context"
	"log"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"news-ko-backend/models"
)

// User-facing messages stay in Korean, matching the frontend this API serves.
const (
	msgNotFound         = "요청한 리소스를 찾을 수 없습니다."
	msgListError        = "뉴스 목록 조회 중 오류가 발생했습니다."
	msgArticleNotFound  = "해당 기사를 찾을 수 없습니다."
	msgCategoryMismatch = "해당 카테고리에 기사가 존재하지 않습니다."
	msgArticleError     = "기사 조회 중 오류가 발생했습니다."
)

// ArticleStore is the read side of the store the query handlers need.
type ArticleStore interface {
	Scan(ctx context.Context, category string) ([]models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
}

// NewsController serves the read-only news API from the article store.
type NewsController struct {
	store ArticleStore
}

func NewNewsController(store ArticleStore) *NewsController {
	return &NewsController{store: store}
}

// newsSummary is the list-view projection: Korean fields only, no body.
type newsSummary struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl"`
}

// newsDetail adds the translated body for the single-article view.
type newsDetail struct {
	newsSummary
	Content string `json:"content"`
}

func toSummary(a models.Article) newsSummary {
	return newsSummary{
		ID:          a.ID,
		Category:    a.Category,
		Title:       a.TitleKo,
		Description: a.DescriptionKo,
		Source:      a.Source,
		PublishedAt: a.PublishedAt,
		URL:         a.URL,
		ImageURL:    a.ImageURL,
	}
}

// GET /news/lists?sort=date
func (n *NewsController) ListAll(c *gin.Context) {
	articles, err := n.store.Scan(c.Request.Context(), "")
	if err != nil {
		log.Printf("list all: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgListError, "error": err.Error()})
		return
	}

	items := project(articles, c.DefaultQuery("sort", "date"))
	c.JSON(http.StatusOK, gin.H{"count": len(items), "news": items})
}

// GET /news/:category/lists?sort=date
func (n *NewsController) ListByCategory(c *gin.Context) {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		return
	}

	articles, err := n.store.Scan(c.Request.Context(), category)
	if err != nil {
		log.Printf("list %s: %v", category, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgListError, "error": err.Error()})
		return
	}

	items := project(articles, c.DefaultQuery("sort", "date"))
	c.JSON(http.StatusOK, gin.H{"category": category, "count": len(items), "news": items})
}

// GET /news/:category/:id
func (n *NewsController) GetArticle(c *gin.Context) {
	category := c.Param("category")
	if !models.ValidCategory(category) {
		c.JSON(http.StatusNotFound, gin.H{"message": msgNotFound})
		return
	}

	article, err := n.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("get article %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgArticleError, "error": err.Error()})
		return
	}
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": msgArticleNotFound})
		return
	}
	if article.Category != category {
		c.JSON(http.StatusNotFound, gin.H{"message": msgCategoryMismatch})
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": newsDetail{
		newsSummary: toSummary(*article),
		Content:     article.ContentKo,
	}})
}

// project maps records to their list view, newest first when sort=date.
// publishedAt is ISO-8601, so plain string comparison orders by time.
func project(articles []models.Article, sortBy string) []newsSummary {
	items := make([]newsSummary, 0, len(articles))
	for _, a := range articles {
		items = append(items, toSummary(a))
	}
	if sortBy == "date" {
		sort.Slice(items, func(i, j int) bool {
			return items[i].PublishedAt > items[j].PublishedAt
		})
	}
	return items
}
