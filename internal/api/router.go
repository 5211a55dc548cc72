package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"article-generator/internal/config"
	"article-generator/internal/generator"
	"article-generator/internal/layout"
)

//go:embed templates/index.html
var templatesFS embed.FS

func SetupRouter(cfg *config.Config, gen generator.Generator, engine *layout.Engine) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath // e.g. "/articles" or empty for root

	tmpl := template.Must(template.ParseFS(templatesFS, "templates/index.html"))
	r.SetHTMLTemplate(tmpl)

	// The form page lives at the subpath root.
	root := subpath
	if root == "" {
		root = "/"
	}
	r.GET(root, func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"subpath":  subpath,
			"examples": ExampleTopics,
		})
	})

	// API routes
	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))

		// --- Article generation ---
		group.POST("/api/articles", CreateArticleHandler(cfg, gen, engine))
		group.GET("/api/articles", ListArticlesHandler())
		group.GET("/api/articles/:id", GetArticleHandler())
		group.GET("/api/articles/:id/preview", PreviewArticleHandler())

		// --- Artifact download ---
		group.GET("/files/:name", DownloadHandler(cfg.Storage.OutputsDir))
	}
	return r
}
