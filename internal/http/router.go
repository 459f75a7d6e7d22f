package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crud_testbench/internal/http/handlers"
	"crud_testbench/internal/service"
	"crud_testbench/internal/ui"
)

// Options tunes the operation log listing.
type Options struct {
	DefaultLogLimit int
	MaxLogLimit     int
}

func NewRouter(db *gorm.DB, svc *service.Records, opts Options) *gin.Engine {
	if opts.DefaultLogLimit <= 0 {
		opts.DefaultLogLimit = 10
	}

	r := gin.Default()
	r.SetHTMLTemplate(ui.Templates())
	r.Use(requestContext())

	// favicon fix
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.tmpl", gin.H{
			"title": "Database Testing",
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health(db))

		// Records
		api.GET("/records", handlers.ListRecords(svc))
		api.GET("/records/:id", handlers.GetRecord(svc))
		api.POST("/records", handlers.CreateRecord(svc))
		api.PUT("/records/:id", handlers.UpdateRecord(svc))
		api.DELETE("/records/:id", handlers.DeleteRecord(svc))

		// Operation log
		api.GET("/operation-logs", handlers.ListOperationLogs(svc, opts.DefaultLogLimit, opts.MaxLogLimit))
	}

	return r
}
