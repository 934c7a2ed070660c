// Package server exposes the generator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"promoreel/internal/app"
	"promoreel/internal/auth"
)

// artifact ids are the 8-hex-digit request ids; anything else in the
// path is rejected before touching the filesystem.
var idPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

// Generator runs one promo package request.
type Generator interface {
	Generate(ctx context.Context, req app.Request) (*app.Result, error)
}

type Server struct {
	engine      *gin.Engine
	generator   Generator
	gate        *auth.Gate
	outputDir   string
	adNetworkID string
	// generated counts successful runs since the server started.
	generated atomic.Int64
}

type Options struct {
	Generator   Generator
	Gate        *auth.Gate
	OutputDir   string
	AdNetworkID string
}

func New(opts Options) *Server {
	s := &Server{
		generator:   opts.Generator,
		gate:        opts.Gate,
		outputDir:   opts.OutputDir,
		adNetworkID: opts.AdNetworkID,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api", s.requireAuth)
	api.POST("/generate", s.handleGenerate)
	api.GET("/packages/:id", s.handlePackage)
	api.GET("/captions/:id", s.handleCaptions)

	s.engine = engine
	return s
}

func (s *Server) Run(addr string) error {
	slog.Info("Server listening", "addr", addr)
	return s.engine.Run(addr)
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) requireAuth(c *gin.Context) {
	if s.gate == nil || !s.gate.Enabled() {
		return
	}

	err := s.gate.Check(c.GetHeader("X-App-Password"))
	switch {
	case err == nil:
		return
	case errors.Is(err, auth.ErrLocked):
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleGenerate(c *gin.Context) {
	req, err := app.NewRequest(
		c.PostForm("niche"),
		c.PostForm("tone"),
		c.PostForm("url"),
		c.PostForm("background"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if musicPath, cleanup, err := s.saveMusicUpload(c, req.ID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	} else if musicPath != "" {
		req.MusicPath = musicPath
		defer cleanup()
	}

	result, err := s.generator.Generate(c.Request.Context(), req)
	if err != nil {
		slog.Error("Generation failed", "id", req.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed"})
		return
	}

	count := s.generated.Add(1)

	c.JSON(http.StatusOK, gin.H{
		"id":              result.ID,
		"duration":        result.Duration,
		"package_url":     fmt.Sprintf("/api/packages/%s", result.ID),
		"captions_url":    fmt.Sprintf("/api/captions/%s", result.ID),
		"generated_count": count,
		"ad_network_id":   s.adNetworkID,
		"seo": gin.H{
			"title":       result.Script.SEO.Title,
			"description": result.Script.SEO.Description,
			"hashtags":    result.Script.SEO.Hashtags,
			"keywords":    result.Script.SEO.Keywords,
		},
	})
}

// saveMusicUpload stores an optional music upload in a temp file and
// returns its path plus a cleanup func.
func (s *Server) saveMusicUpload(c *gin.Context, id string) (string, func(), error) {
	file, err := c.FormFile("music")
	if err != nil {
		// no upload is fine
		return "", nil, nil
	}

	dst := filepath.Join(os.TempDir(), fmt.Sprintf("promoreel_music_%s%s", id, filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", nil, fmt.Errorf("save music upload: %w", err)
	}

	return dst, func() { _ = os.Remove(dst) }, nil
}

func (s *Server) handlePackage(c *gin.Context) {
	s.serveArtifact(c, "package_%s.zip")
}

func (s *Server) handleCaptions(c *gin.Context) {
	s.serveArtifact(c, "captions_%s.vtt")
}

func (s *Server) serveArtifact(c *gin.Context, pattern string) {
	id := c.Param("id")
	if !idPattern.MatchString(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	name := fmt.Sprintf(pattern, id)
	path := filepath.Join(s.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "artifact not found"})
		return
	}

	c.FileAttachment(path, name)
}
