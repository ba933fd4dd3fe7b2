package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"news-ko-backend/models"
	"news-ko-backend/textproc"
)

const (
	// translateBudget keeps each translation call under the provider's
	// per-request character limit.
	translateBudget = 4500

	// retention is how long a record lives before the store expires it.
	retention = 72 * time.Hour

	sourceLang = "en"
	targetLang = "ko"

	// extractFailedMarker is stored as the Korean body when the article
	// page yields no text.
	extractFailedMarker = "본문을 가져올 수 없습니다."
)

// ArticleWriter is the slice of the store the job needs.
type ArticleWriter interface {
	Put(ctx context.Context, article models.Article) error
}

// IngestJob fetches headlines per category, extracts and translates each
// article and writes the combined record to the store. Failures are contained
// per article: one bad article never aborts the run.
type IngestJob struct {
	provider   HeadlineProvider
	extractor  Extractor
	translator Translator
	writer     ArticleWriter
	pause      time.Duration
	now        func() time.Time
}

// NewIngestJob wires the job's collaborators. pause is the delay between
// articles; production runs use one second to stay under provider limits.
func NewIngestJob(provider HeadlineProvider, extractor Extractor, translator Translator, writer ArticleWriter, pause time.Duration) *IngestJob {
	return &IngestJob{
		provider:   provider,
		extractor:  extractor,
		translator: translator,
		writer:     writer,
		pause:      pause,
		now:        time.Now,
	}
}

// Run processes every category once. A provider failure skips the category;
// an article failure skips the article; a translation failure leaves the
// corresponding _ko field empty and the record is still written.
func (j *IngestJob) Run(ctx context.Context) {
	for _, category := range models.Categories {
		headlines, err := j.provider.TopHeadlines(ctx, category)
		if err != nil {
			log.Printf("headlines for %s: %v", category, err)
			continue
		}
		log.Printf("category %s: %d headlines", category, len(headlines))

		for _, h := range headlines {
			article := j.buildArticle(ctx, category, h)
			if err := j.writer.Put(ctx, article); err != nil {
				log.Printf("store article %s: %v", article.ID, err)
			}
			// Fixed pause between articles so the providers are not
			// hammered.
			time.Sleep(j.pause)
		}
	}
}

func (j *IngestJob) buildArticle(ctx context.Context, category string, h Headline) models.Article {
	now := j.now()

	article := models.Article{
		ID:          fmt.Sprintf("%s-%s", category, uuid.NewString()),
		Category:    category,
		Title:       h.Title,
		Description: h.Description,
		Source:      h.Source,
		URL:         h.URL,
		ImageURL:    h.ImageURL,
		PublishedAt: h.PublishedAt,
		Timestamp:   now.Unix(),
		TTL:         now.Add(retention).Unix(),
		ExpireAt:    now.Add(retention),
	}

	article.TitleKo = j.translateField(ctx, article.ID, "title", h.Title)
	article.DescriptionKo = j.translateField(ctx, article.ID, "description", h.Description)

	body, err := j.extractor.Extract(ctx, h.URL)
	if err != nil || body == "" {
		if err != nil {
			log.Printf("extract %s: %v", h.URL, err)
		}
		article.ContentKo = extractFailedMarker
		return article
	}
	article.Content = body
	article.ContentKo = j.translateBody(ctx, article.ID, body)
	return article
}

// translateBody translates the extracted text chunk by chunk, rejoins the
// translations in order and reflows them into paragraphs.
func (j *IngestJob) translateBody(ctx context.Context, id, body string) string {
	chunks := textproc.Segment(body, translateBudget)
	translated := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		out, err := j.translator.Translate(ctx, chunk, sourceLang, targetLang)
		if err != nil {
			log.Printf("translate %s chunk %d/%d: %v", id, i+1, len(chunks), err)
			return ""
		}
		translated = append(translated, out)
	}
	return textproc.FormatParagraphs(strings.Join(translated, " "))
}

func (j *IngestJob) translateField(ctx context.Context, id, field, text string) string {
	if text == "" {
		return ""
	}
	out, err := j.translator.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		log.Printf("translate %s %s: %v", id, field, err)
		return ""
	}
	return out
}
