package analyses

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-match/internal/matching"
	"resume-match/internal/shared/server/middleware"
	"resume-match/internal/shared/server/respond"
	"resume-match/internal/shared/util"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	// multipart framing and the text fields ride on top of the file itself
	multipartOverhead = 1 << 20
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches analysis routes to the router group. The optional
// middleware guards only the routes that run the matcher.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, analyzeMiddleware ...gin.HandlerFunc) {
	rg.GET("/taxonomy", h.getTaxonomy)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/jobs/:jobId/analysis", h.getAnalysis)

	analyze := rg.Group("", analyzeMiddleware...)
	analyze.POST("/analyses", h.analyzeText)
	analyze.POST("/analyses/upload", h.analyzeUpload)
}

type jobRequest struct {
	Category     string `json:"category"`
	Requirements any    `json:"requirements"`
}

type analyzeRequest struct {
	JobID      string     `json:"jobId"`
	ResumeText string     `json:"resumeText"`
	Job        jobRequest `json:"job"`
	Locale     string     `json:"locale"`
}

func (h *Handler) getTaxonomy(c *gin.Context) {
	respond.OK(c, gin.H{
		"categories": matching.DefaultTaxonomy().Categories(),
		"locales":    matching.Locales(),
	})
}

func (h *Handler) analyzeText(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid JSON body", nil)
		return
	}
	if strings.TrimSpace(req.JobID) == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "jobId is required", []map[string]string{
			{"field": "jobId", "issue": "required"},
		})
		return
	}
	c.Set("jobId", req.JobID)

	analysis, err := h.Svc.Analyze(c.Request.Context(), AnalyzeInput{
		UserID:     middleware.UserIDFromContext(c),
		JobID:      req.JobID,
		ResumeText: req.ResumeText,
		Job:        matching.JobDescriptor{Category: req.Job.Category, Requirements: req.Job.Requirements},
		Locale:     req.Locale,
	})
	if err != nil {
		h.writeError(c, err, "failed to analyze resume")
		return
	}
	respond.OK(c, analysis)
}

func (h *Handler) analyzeUpload(c *gin.Context) {
	maxBytes := h.MaxUploadBytes
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, "file exceeds upload limit", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is required", []map[string]string{
			{"field": "file", "issue": "required"},
		})
		return
	}
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, "file exceeds upload limit", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file name is invalid", []map[string]string{
			{"field": "file", "issue": "invalid_name"},
		})
		return
	}

	jobID := strings.TrimSpace(c.PostForm("jobId"))
	if jobID == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "jobId is required", []map[string]string{
			{"field": "jobId", "issue": "required"},
		})
		return
	}
	c.Set("jobId", jobID)

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file could not be read", nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file could not be read", nil)
		return
	}

	var requirements any
	if values := c.PostFormArray("requirements"); len(values) > 0 {
		requirements = values
	}

	analysis, err := h.Svc.AnalyzeDocument(c.Request.Context(), DocumentInput{
		UserID:   middleware.UserIDFromContext(c),
		JobID:    jobID,
		Job:      matching.JobDescriptor{Category: c.PostForm("category"), Requirements: requirements},
		Locale:   c.PostForm("locale"),
		FileName: fileName,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Data:     data,
	})
	if err != nil {
		h.writeError(c, err, "failed to analyze resume")
		return
	}
	respond.OK(c, analysis)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	jobID := c.Param("jobId")
	c.Set("jobId", jobID)

	analysis, err := h.Svc.Get(c.Request.Context(), middleware.UserIDFromContext(c), jobID)
	if err != nil {
		h.writeError(c, err, "failed to fetch analysis")
		return
	}
	respond.OK(c, analysis)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	limit := queryInt(c, "limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := max(queryInt(c, "offset", 0), 0)

	analyses, err := h.Svc.List(c.Request.Context(), middleware.UserIDFromContext(c), limit, offset)
	if err != nil {
		h.writeError(c, err, "failed to list analyses")
		return
	}
	respond.OK(c, analyses)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
	case errors.Is(err, ErrUnreadableDocument):
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeUnreadable, "could not read text from the uploaded file", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "analysis not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, fallback, nil)
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return parsed
}
