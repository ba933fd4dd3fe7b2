package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-ko-backend/models"
)

type fakeStore struct {
	articles []models.Article
	err      error
}

func (f *fakeStore) Scan(_ context.Context, category string) ([]models.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Article{}
	for _, a := range f.articles {
		if category == "" || a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*models.Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.articles {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func newTestRouter(store ArticleStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctl := NewNewsController(store)
	group := router.Group("/news")
	group.GET("/lists", ctl.ListAll)
	group.GET("/:category/lists", ctl.ListByCategory)
	group.GET("/:category/:id", ctl.GetArticle)
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	router.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func sampleArticles() []models.Article {
	return []models.Article{
		{
			ID: "science-abc", Category: "science",
			Title: "Probe reaches orbit", TitleKo: "탐사선이 궤도에 도달했다",
			DescriptionKo: "긴 여정이 끝났다", ContentKo: "본문 번역.\n\n둘째 단락.",
			Source: "BBC News", PublishedAt: "2024-03-01T10:00:00Z",
			URL: "https://example.com/a", ImageURL: "https://example.com/a.jpg",
		},
		{
			ID: "science-def", Category: "science",
			TitleKo: "더 새로운 과학 기사", PublishedAt: "2024-03-02T08:00:00Z",
		},
		{
			ID: "sports-123", Category: "sports",
			TitleKo: "결승전 결과", PublishedAt: "2024-03-01T22:00:00Z",
		},
	}
}

func TestListAllEmptyStore(t *testing.T) {
	router := newTestRouter(&fakeStore{})

	w, body := doGet(t, router, "/news/lists")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, body["count"])
	require.IsType(t, []any{}, body["news"])
	assert.Empty(t, body["news"])
}

func TestListAllSortsByDateDescending(t *testing.T) {
	router := newTestRouter(&fakeStore{articles: sampleArticles()})

	w, body := doGet(t, router, "/news/lists?sort=date")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 3, body["count"])

	news := body["news"].([]any)
	first := news[0].(map[string]any)
	assert.Equal(t, "science-def", first["id"])
}

func TestListAllProjectsKoreanFields(t *testing.T) {
	router := newTestRouter(&fakeStore{articles: sampleArticles()[:1]})

	_, body := doGet(t, router, "/news/lists")
	item := body["news"].([]any)[0].(map[string]any)

	assert.Equal(t, "탐사선이 궤도에 도달했다", item["title"])
	assert.Equal(t, "긴 여정이 끝났다", item["description"])
	assert.Equal(t, "BBC News", item["source"])
	_, hasContent := item["content"]
	assert.False(t, hasContent, "list view must not carry the body")
}

func TestListByCategoryFilters(t *testing.T) {
	router := newTestRouter(&fakeStore{articles: sampleArticles()})

	w, body := doGet(t, router, "/news/science/lists?sort=date")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "science", body["category"])
	assert.EqualValues(t, 2, body["count"])
	for _, item := range body["news"].([]any) {
		assert.Equal(t, "science", item.(map[string]any)["category"])
	}
}

func TestListByUnknownCategoryIs404(t *testing.T) {
	router := newTestRouter(&fakeStore{articles: sampleArticles()})

	w, _ := doGet(t, router, "/news/weather/lists")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetArticleByID(t *testing.T) {
	router := newTestRouter(&fakeStore{articles: sampleArticles()})

	w, body := doGet(t, router, "/news/science/science-abc")
	assert.Equal(t, http.StatusOK, w.Code)

	article := body["article"].(map[string]any)
	assert.Equal(t, "science-abc", article["id"])
	assert.Equal(t, "탐사선이 궤도에 도달했다", article["title"])
	assert.Equal(t, "본문 번역.\n\n둘째 단락.", article["content"])
}

func TestGetArticleCategoryMismatchIs404(t *testing.T) {
	router := newTestRouter(&fakeStore{articles: sampleArticles()})

	w, body := doGet(t, router, "/news/technology/science-abc")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgCategoryMismatch, body["message"])
}

func TestGetArticleMissingIs404(t *testing.T) {
	router := newTestRouter(&fakeStore{articles: sampleArticles()})

	w, body := doGet(t, router, "/news/science/science-zzz")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, msgArticleNotFound, body["message"])
}

func TestStoreErrorsReturn500(t *testing.T) {
	router := newTestRouter(&fakeStore{err: errors.New("connection reset")})

	for _, path := range []string{"/news/lists", "/news/science/lists", "/news/science/science-abc"} {
		w, body := doGet(t, router, path)
		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.NotEmpty(t, body["message"], path)
		assert.Contains(t, body["error"], "connection reset", path)
	}
}

func TestStaticListsSegmentOutranksIDParam(t *testing.T) {
	// "lists" must never be treated as an article id.
	router := newTestRouter(&fakeStore{articles: []models.Article{
		{ID: "lists", Category: "science", PublishedAt: "2024-01-01T00:00:00Z"},
	}})

	w, body := doGet(t, router, "/news/science/lists")
	assert.Equal(t, http.StatusOK, w.Code)
	_, isListing := body["count"]
	assert.True(t, isListing, "expected the category listing envelope")
}
