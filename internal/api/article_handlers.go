package api

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"

	"article-generator/internal/config"
	"article-generator/internal/generator"
	"article-generator/internal/layout"
	"article-generator/internal/store"
)

type articleResponse struct {
	ID      string  `json:"id,omitempty"`
	Topic   string  `json:"topic"`
	Article string  `json:"article"`
	PDFFile *string `json:"pdf_file"`
	Status  string  `json:"status"`
}

// POST /api/articles
// Generates an article for the submitted topic, renders the PDF artifact and
// records the outcome. Upstream and rendering failures are reported on the
// article text channel with an ERROR: prefix rather than as HTTP errors,
// matching the form's caller contract.
func CreateArticleHandler(cfg *config.Config, gen generator.Generator, engine *layout.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Topic string `json:"topic"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		topic := strings.TrimSpace(req.Topic)
		if topic == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a topic to generate an article."})
			return
		}

		timeout := time.Duration(cfg.LLM.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		article, err := gen.Generate(ctx, topic)
		if err != nil {
			rec := &store.Generation{Topic: topic, Status: store.StatusFailed}
			saveRecord(rec)
			c.JSON(http.StatusOK, articleResponse{
				ID:      rec.ID,
				Topic:   topic,
				Article: fmt.Sprintf("ERROR: Failed to generate article: %v", err),
				Status:  store.StatusFailed,
			})
			return
		}
		article = generator.EnsureSections(article, topic)

		title := generator.ExtractTitle(article)
		if title == "" {
			title = topic
		}
		rec := &store.Generation{Topic: topic, Title: title, Article: article}
		resp := articleResponse{Topic: topic, Article: article}

		pdfPath, err := engine.Render(topic, article)
		if err != nil {
			log.Printf("[API] PDF rendering failed for topic %q: %v", topic, err)
			rec.Status = store.StatusDegraded
			resp.Status = store.StatusDegraded
			resp.Article = fmt.Sprintf("ERROR: Article generated but failed to create PDF: %v\n\nArticle content below:\n\n%s", err, article)
		} else {
			rec.Status = store.StatusOK
			rec.PDFPath = pdfPath
			resp.Status = store.StatusOK
			name := filepath.Base(pdfPath)
			resp.PDFFile = &name
		}

		saveRecord(rec)
		resp.ID = rec.ID
		c.JSON(http.StatusOK, resp)
	}
}

// The history ledger must not fail a request that already produced output.
func saveRecord(rec *store.Generation) {
	if err := rec.Save(); err != nil {
		log.Printf("[API] failed to record generation: %v", err)
	}
}

// GET /api/articles?limit=N
func ListArticlesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		gens, err := store.List(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list articles"})
			return
		}
		c.JSON(http.StatusOK, gens)
	}
}

// GET /api/articles/:id
func GetArticleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		gen, err := store.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		c.JSON(http.StatusOK, gen)
	}
}

// GET /api/articles/:id/preview
// Renders the stored article as HTML. The local-model prompt style produces
// markdown headings, so the text goes through goldmark.
func PreviewArticleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		gen, err := store.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(gen.Article), &buf); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render preview"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

// GET /files/:name
func DownloadHandler(outDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		if !validArtifactName(name) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file name"})
			return
		}
		path := filepath.Join(outDir, name)
		if _, err := os.Stat(path); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		c.FileAttachment(path, name)
	}
}

// validArtifactName only admits names the layout engine itself produces.
func validArtifactName(name string) bool {
	return strings.HasPrefix(name, "article_") &&
		strings.HasSuffix(name, ".pdf") &&
		name == filepath.Base(name) &&
		!strings.Contains(name, "..")
}
