package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Test Article</title><script>var tracked = true;</script></head>
<body>
<nav>Home | World | Science</nav>
<article>
<h1>Probe reaches orbit</h1>
<p>The spacecraft entered orbit on Tuesday after a seven month cruise, mission
controllers confirmed during a press briefing held at the operations center.</p>
<p>Engineers will spend the coming weeks checking out the instruments before
the first science observations begin, the agency said in a statement.</p>
<p>The mission is expected to operate for at least two years and map the
surface in unprecedented detail, returning terabytes of imagery.</p>
</article>
<footer>Copyright 2024</footer>
</body>
</html>`

func TestExtractReturnsArticleText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articlePage))
	}))
	defer srv.Close()

	text, err := NewReadabilityExtractor().Extract(context.Background(), srv.URL+"/article")
	require.NoError(t, err)

	assert.Contains(t, text, "entered orbit on Tuesday")
	assert.Contains(t, text, "unprecedented detail")
	assert.NotContains(t, text, "var tracked")
	assert.NotContains(t, text, "Home | World")
}

func TestExtractNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewReadabilityExtractor().Extract(context.Background(), srv.URL+"/gone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewReadabilityExtractor().Extract(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "  first   sentence.  \n\n\n second\tline \n"
	assert.Equal(t, "first sentence.\nsecond line", normalizeWhitespace(in))
	assert.Equal(t, "", normalizeWhitespace("   \n  \t "))
}

func TestNormalizeWhitespaceKeepsLineBoundaries(t *testing.T) {
	got := normalizeWhitespace("one\ntwo\nthree")
	assert.Equal(t, 3, len(strings.Split(got, "\n")))
}
