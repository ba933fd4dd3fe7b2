package models

import "time"

// Categories is the canonical set of news topics. It partitions both the
// ingestion targets and the query filters.
var Categories = []string{"science", "technology", "business", "entertainment", "general", "sports"}

// ValidCategory reports whether c is one of the canonical categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Article is one ingested news record. The original English fields are kept
// alongside the Korean translations; the query API serves only the Korean
// side. A translation failure leaves the corresponding _ko field empty.
type Article struct {
	ID            string `bson:"id" json:"id"`
	Category      string `bson:"category" json:"category"`
	Title         string `bson:"title" json:"title"`
	Description   string `bson:"description" json:"description"`
	Content       string `bson:"content" json:"content"`
	TitleKo       string `bson:"title_ko" json:"title_ko"`
	DescriptionKo string `bson:"description_ko" json:"description_ko"`
	ContentKo     string `bson:"content_ko" json:"content_ko"`
	Source        string `bson:"source" json:"source"`
	URL           string `bson:"url" json:"url"`
	ImageURL      string `bson:"imageUrl" json:"imageUrl"`
	PublishedAt   string `bson:"publishedAt" json:"publishedAt"`
	Timestamp     int64  `bson:"timestamp" json:"timestamp"`
	TTL           int64  `bson:"ttl" json:"ttl"`

	// ExpireAt mirrors TTL as a date; the store's TTL index expires on it.
	ExpireAt time.Time `bson:"expireAt" json:"-"`
}
