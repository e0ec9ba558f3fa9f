package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Ninja-cloud-sorce/back-end/internal/app/analyzer"
	"github.com/Ninja-cloud-sorce/back-end/internal/app/extract"
	"github.com/Ninja-cloud-sorce/back-end/internal/app/renderer"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type analyzeDTO struct {
	Resume  string `json:"resume" binding:"required"`
	JobDesc string `json:"job_desc" binding:"required"`
}

type suggestDTO struct {
	Resume string `json:"resume" binding:"required"`
}

type optimizeDTO struct {
	Resume string `json:"resume" binding:"required"`
}

type coverLetterDTO struct {
	Resume  string `json:"resume" binding:"required"`
	JobDesc string `json:"job_desc" binding:"required"`
}

type downloadDTO struct {
	Resume string `json:"resume" binding:"required"`
}

var allowedPDFTypes = map[string]bool{
	"application/pdf":          true,
	"application/x-pdf":        true,
	"application/octet-stream": true,
}

// UploadResume godoc
// @Summary      Upload resume PDF
// @Description  Accepts a PDF file and returns its extracted text
// @Tags         Resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Resume PDF"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Router       /upload_resume [post]
func (h *Handler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respond(c, false, "file is required", nil)
		return
	}
	logrus.Infof("upload attempt: filename=%s content_type=%s size=%d",
		file.Filename, file.Header.Get("Content-Type"), file.Size)

	if !allowedPDFTypes[file.Header.Get("Content-Type")] {
		logrus.Warnf("invalid upload content type: %s", file.Header.Get("Content-Type"))
		respond(c, false, "Only PDF files are supported", nil)
		return
	}

	f, err := file.Open()
	if err != nil {
		respond(c, false, "file open failed", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respond(c, false, "file read failed", nil)
		return
	}
	if len(data) == 0 {
		logrus.Warn("empty file uploaded")
		respond(c, false, "Uploaded file is empty", nil)
		return
	}
	if len(data) > h.MaxPDFSizeMB<<20 {
		logrus.Warnf("file too large: %d bytes", len(data))
		respond(c, false, fmt.Sprintf("PDF exceeds %d MB", h.MaxPDFSizeMB), nil)
		return
	}

	text, err := extract.Text(data)
	if err != nil {
		logrus.Warnf("pdf extraction failed: %v", err)
		if errors.Is(err, extract.ErrNoText) {
			respond(c, false, "Could not extract text from PDF. Please upload a text-based PDF.", nil)
			return
		}
		respond(c, false, fmt.Sprintf("Failed to read PDF: %v", err), nil)
		return
	}

	logrus.Infof("processed pdf: %d characters extracted", len(text))
	respond(c, true, "Resume uploaded", gin.H{"resume_text": text})
}

// Analyze godoc
// @Summary      Analyze resume against job description
// @Tags         Resume
// @Accept       json
// @Produce      json
// @Param        request body analyzeDTO true "Resume and job description"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Router       /analyze [post]
func (h *Handler) Analyze(c *gin.Context) {
	var in analyzeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, false, "resume and job_desc are required", nil)
		return
	}
	logrus.Infof("analysis request: resume_length=%d job_desc_length=%d",
		len(in.Resume), len(in.JobDesc))

	result := analyzer.Analyze(in.Resume, in.JobDesc)
	logrus.Infof("analysis complete: match_percent=%.1f", result.MatchPercent)
	respond(c, true, "Analysis complete", result)
}

// Suggest godoc
// @Summary      Suggest a growth path for the resume
// @Tags         Resume
// @Accept       json
// @Produce      json
// @Param        request body suggestDTO true "Resume text"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Router       /suggest [post]
func (h *Handler) Suggest(c *gin.Context) {
	var in suggestDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, false, "resume is required", nil)
		return
	}
	respond(c, true, "Suggestions ready", analyzer.SuggestGrowthPath(in.Resume))
}

// OptimizeResume godoc
// @Summary      Rewrite the resume with stronger phrasing
// @Tags         Resume
// @Accept       json
// @Produce      json
// @Param        request body optimizeDTO true "Resume text"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Router       /optimize_resume [post]
func (h *Handler) OptimizeResume(c *gin.Context) {
	var in optimizeDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, false, "resume is required", nil)
		return
	}
	respond(c, true, "Resume optimized", gin.H{"optimized_resume": analyzer.Optimize(in.Resume)})
}

// GenerateCoverLetter godoc
// @Summary      Generate a cover letter from resume and job description
// @Tags         Resume
// @Accept       json
// @Produce      json
// @Param        request body coverLetterDTO true "Resume and job description"
// @Success      200 {object} map[string]any
// @Failure      400 {object} map[string]any
// @Router       /generate_cover_letter [post]
func (h *Handler) GenerateCoverLetter(c *gin.Context) {
	var in coverLetterDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, false, "resume and job_desc are required", nil)
		return
	}
	respond(c, true, "Cover letter generated", gin.H{
		"cover_letter": analyzer.CoverLetter(in.Resume, in.JobDesc),
	})
}

// DownloadPDF godoc
// @Summary      Download the resume as a file
// @Description  Renders the resume text as pdf, docx or txt and streams it as an attachment
// @Tags         Resume
// @Accept       json
// @Produce      application/pdf
// @Param        format query string false "File format" Enums(pdf, docx, txt) default(pdf)
// @Param        request body downloadDTO true "Resume text"
// @Success      200 {file} file
// @Failure      400 {object} map[string]any
// @Router       /download_pdf [post]
func (h *Handler) DownloadPDF(c *gin.Context) {
	var in downloadDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respond(c, false, "resume is required", nil)
		return
	}
	format := c.DefaultQuery("format", "pdf")

	data, mediaType, filename, err := renderer.Render(in.Resume, format)
	if err != nil {
		logrus.Errorf("file generation failed: %v", err)
		respond(c, false, fmt.Sprintf("Failed to generate file: %v", err), nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mediaType, data)
}
