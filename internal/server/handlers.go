package server

import (
	"bytes"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"dropoutdash/internal/charts"
	"dropoutdash/internal/dashboard"
)

type callbackRequest struct {
	Input string `json:"input" binding:"required"`
	Value string `json:"value"`
}

type callbackResponse struct {
	Output string        `json:"output"`
	Figure charts.Figure `json:"figure"`
}

var imageTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
}

func (s *Server) handleIndex(c *gin.Context) {
	var buf bytes.Buffer
	err := s.page.Execute(&buf, pageData{
		Title:    pageTitle,
		Bindings: s.ctrl.Bindings(),
	})
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleLayout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":       pageTitle,
		"performance": s.ctrl.Performance().Figure(),
		"bindings":    s.ctrl.Bindings(),
	})
}

func (s *Server) handlePerformance(c *gin.Context) {
	c.JSON(http.StatusOK, s.ctrl.Performance().Figure())
}

func (s *Server) handleCallback(c *gin.Context) {
	var req callbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	b, chart, err := s.ctrl.Dispatch(req.Input, req.Value)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, callbackResponse{Output: b.Graph, Figure: chart.Figure()})
}

// handleImage serves /charts/<graph>.<png|svg>?value=<option>. Without a
// value parameter the dropdown's default is drawn.
func (s *Server) handleImage(c *gin.Context) {
	file := c.Param("file")
	ext := strings.TrimPrefix(path.Ext(file), ".")
	contentType, ok := imageTypes[ext]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported image format"})
		return
	}
	value, explicit := c.GetQuery("value")
	chart, err := s.chartForGraph(strings.TrimSuffix(file, "."+ext), value, explicit)
	if err != nil {
		s.fail(c, err)
		return
	}
	var buf bytes.Buffer
	if err := charts.Render(&buf, chart, ext); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (s *Server) handleSummary(c *gin.Context) {
	sum, err := s.ctrl.Summary()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

var errUnknownGraph = errors.New("unknown graph")

// chartForGraph draws graph for value. Only an absent value falls back to
// the dropdown default; an explicitly empty one is rejected by the handler.
func (s *Server) chartForGraph(graph, value string, explicit bool) (charts.Chart, error) {
	if graph == charts.GraphPerformance {
		return s.ctrl.Performance(), nil
	}
	for _, b := range s.ctrl.Bindings() {
		if b.Graph != graph {
			continue
		}
		if !explicit {
			value = b.Default
		}
		return b.Handler(value)
	}
	return charts.Chart{}, errUnknownGraph
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	var sel *dashboard.UnknownSelectionError
	switch {
	case errors.As(err, &sel):
		c.JSON(http.StatusBadRequest, gin.H{"error": sel.Error(), "dropdown": sel.Dropdown, "allowed": sel.Allowed})
	case errors.Is(err, errUnknownGraph):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
