package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lawrence-dass/coop-ready/internal/analysis"
	"github.com/lawrence-dass/coop-ready/internal/gaps"
	"github.com/lawrence-dass/coop-ready/internal/ingestion"
	"github.com/lawrence-dass/coop-ready/internal/llm"
	"github.com/lawrence-dass/coop-ready/internal/scoring"
	"github.com/lawrence-dass/coop-ready/internal/types"
)

// AnalyzeRequest is the body of POST /analyze.
// Keywords are extracted from JobDescription when none are given.
type AnalyzeRequest struct {
	ResumeText     string                   `json:"resumeText" validate:"max=100000"`
	ParsedResume   types.ParsedResume       `json:"parsedResume"`
	Keywords       []types.ExtractedKeyword `json:"keywords" validate:"max=200"`
	JobDescription string                   `json:"jobDescription" validate:"max=50000"`
	CandidateType  string                   `json:"candidateType" validate:"omitempty,oneof=coop career_changer fulltime"`
	SectionOrder   []string                 `json:"sectionOrder" validate:"max=10,dive,oneof=summary skills experience education projects"`
	Weights        *types.ScoreWeights      `json:"weights"`
}

// AnalyzeResponse is the body returned by POST /analyze
type AnalyzeResponse struct {
	ScanID string           `json:"scanId"`
	Report *analysis.Report `json:"report"`
}

// ExtractKeywordsRequest is the body of POST /keywords/extract
type ExtractKeywordsRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,max=50000"`
}

// FormatScoreRequest is the body of POST /score/format
type FormatScoreRequest struct {
	ResumeText string `json:"resumeText" validate:"required,max=100000"`
}

// FilterGapsRequest is the body of POST /gaps/filter
type FilterGapsRequest struct {
	Gaps    []types.ProcessedGap `json:"gaps" validate:"required"`
	Section string               `json:"section" validate:"omitempty,oneof=summary skills experience education projects"`
}

// newValidator reports field names as their JSON keys
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode reads a size-limited JSON body into dst and validates it
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrBadRequest{Cause: err}
	}
	if err := s.validate.Struct(dst); err != nil {
		return extractValidationError(err)
	}
	return nil
}

// extractValidationError converts the first validator failure into an ErrValidation
func extractValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		return &ErrValidation{Field: ve.Field(), Message: ve.Tag()}
	}
	return &ErrValidation{Field: "request", Message: "invalid request"}
}

// extractKeywords cleans a job description and asks the model for its keywords
func (s *Server) extractKeywords(ctx context.Context, jobDescription string) ([]types.ExtractedKeyword, error) {
	if s.llm == nil {
		return nil, &ErrLLMUnavailable{}
	}
	text, meta, err := ingestion.Ingest(jobDescription, "request")
	if err != nil {
		return nil, &ErrValidation{Field: "jobDescription", Message: err.Error()}
	}
	if text == "" {
		return nil, &ErrValidation{Field: "jobDescription", Message: "contains no text"}
	}
	log.Printf("[server] Job description %s, %d characters (%s)", meta.Hash[:12], meta.Characters, meta.Format)

	kws, err := llm.ExtractKeywords(ctx, s.llm, text)
	if err != nil {
		return nil, &ErrLLMFailed{Cause: err}
	}
	return kws, nil
}

// handleAnalyze runs a full scan
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	scanID := uuid.New()

	var req AnalyzeRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	kws := make([]types.ExtractedKeyword, 0, len(req.Keywords))
	for _, kw := range req.Keywords {
		if n := kw.Normalized(); n.Keyword != "" {
			kws = append(kws, n)
		}
	}
	if len(kws) == 0 {
		if strings.TrimSpace(req.JobDescription) == "" {
			s.handleError(w, &ErrValidation{Field: "keywords", Message: "keywords or jobDescription is required"})
			return
		}
		extracted, err := s.extractKeywords(r.Context(), req.JobDescription)
		if err != nil {
			s.handleError(w, err)
			return
		}
		kws = extracted
	}

	order := make([]types.SectionType, len(req.SectionOrder))
	for i, raw := range req.SectionOrder {
		order[i] = types.SectionType(raw)
	}

	resumeText, _, err := ingestion.IngestResume(req.ResumeText, "request")
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "resumeText", Message: err.Error()})
		return
	}

	report, err := analysis.Run(r.Context(), analysis.Input{
		ResumeText:    resumeText,
		ParsedResume:  req.ParsedResume,
		Keywords:      kws,
		CandidateType: types.CandidateType(req.CandidateType),
		SectionOrder:  order,
		Weights:       req.Weights,
	}, analysis.Options{Policy: s.policy})
	if err != nil {
		s.handleError(w, err)
		return
	}

	log.Printf("[server] Scan %s scored %d", scanID, report.Score.Score)
	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{ScanID: scanID.String(), Report: report})
}

// handleExtractKeywords returns the keywords of a job description
func (s *Server) handleExtractKeywords(w http.ResponseWriter, r *http.Request) {
	var req ExtractKeywordsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	kws, err := s.extractKeywords(r.Context(), req.JobDescription)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"keywords": kws,
		"count":    len(kws),
	})
}

// handleFormatScore scores ATS parseability of raw resume text
func (s *Server) handleFormatScore(w http.ResponseWriter, r *http.Request) {
	var req FormatScoreRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	text, _, err := ingestion.IngestResume(req.ResumeText, "request")
	if err != nil {
		s.handleError(w, &ErrValidation{Field: "resumeText", Message: err.Error()})
		return
	}

	fs := scoring.CalculateFormatScore(text)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"format":      fs,
		"actionItems": scoring.GenerateFormatActionItems(fs),
	})
}

// handleFilterGaps groups previously processed gaps by resume section
func (s *Server) handleFilterGaps(w http.ResponseWriter, r *http.Request) {
	var req FilterGapsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.handleError(w, err)
		return
	}

	var sections []types.SectionGaps
	if req.Section != "" {
		sections = []types.SectionGaps{gaps.FilterGapsForSection(req.Gaps, types.SectionType(req.Section))}
	} else {
		sections = gaps.FilterAllSections(req.Gaps)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"sections": sections,
		"summary":  gaps.Summarize(req.Gaps),
	})
}
