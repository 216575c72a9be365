package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/studentperf/studentperf/internal/features"
	"github.com/studentperf/studentperf/internal/metrics"
)

// Dataset display metrics shown on the Project Overview page. These are
// literal strings describing the offline training set, not live counts.
const (
	datasetRowCount     = "≈ 82,000"
	datasetFeatureCount = "31"
)

// PageHandler renders the two static views: Project Overview and
// Feature Explanation.
type PageHandler struct {
	staticDir string
	imageName string
}

func NewPageHandler(staticDir, imageName string) *PageHandler {
	return &PageHandler{
		staticDir: staticDir,
		imageName: imageName,
	}
}

func (h *PageHandler) Overview(c *gin.Context) {
	metrics.Get().IncPageView("overview")

	// A missing hero image is not an error; the page renders without it.
	imageURL := ""
	if h.imageName != "" {
		if _, err := os.Stat(filepath.Join(h.staticDir, h.imageName)); err == nil {
			imageURL = "/static/" + h.imageName
		}
	}

	c.HTML(http.StatusOK, "overview", gin.H{
		"Active":       "overview",
		"ImageURL":     imageURL,
		"RowCount":     datasetRowCount,
		"FeatureCount": datasetFeatureCount,
	})
}

func (h *PageHandler) Glossary(c *gin.Context) {
	metrics.Get().IncPageView("glossary")

	c.HTML(http.StatusOK, "glossary", gin.H{
		"Active":   "glossary",
		"Features": features.All(),
	})
}
