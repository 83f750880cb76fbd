package v1

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"resume-collector-backend/internal/delivery/http/middleware"
	"resume-collector-backend/internal/delivery/http/response"
	"resume-collector-backend/internal/domain"
	"resume-collector-backend/pkg/apperror"
	"resume-collector-backend/pkg/security"
	"resume-collector-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase, uploadLimit middleware.RateLimitConfig) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.POST("", middleware.RateLimitMiddleware(uploadLimit), handler.Create)
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// CreateCandidateRequest is the multipart form of a resume submission.
// Numbers, the date and the skill list stay strings here; the usecase parses them.
type CreateCandidateRequest struct {
	FullName               string                `form:"full_name" binding:"required"`
	DateOfBirth            string                `form:"dob" binding:"required"`
	ContactNumber          string                `form:"contact_number" binding:"required"`
	ContactAddress         string                `form:"contact_address" binding:"required"`
	EducationQualification string                `form:"education_qualification" binding:"required"`
	GraduationYear         string                `form:"graduation_year" binding:"required"`
	YearsOfExperience      string                `form:"years_of_experience" binding:"required"`
	SkillSet               string                `form:"skill_set" binding:"required"`
	Resume                 *multipart.FileHeader `form:"resume" binding:"required"`
}

// CreateCandidate godoc
// @Summary      Submit a resume
// @Description  Upload a candidate resume (PDF/DOC/DOCX) with metadata. skill_set accepts "Python, FastAPI, SQL" or ["Go","Rust"].
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        full_name                formData  string  true  "Full name (1-200 chars)"
// @Param        dob                      formData  string  true  "Date of birth: YYYY-MM-DD or DD-MM-YYYY"
// @Param        contact_number           formData  string  true  "Contact number (at least 5 digits)"
// @Param        contact_address          formData  string  true  "Contact address (1-500 chars)"
// @Param        education_qualification  formData  string  true  "Education qualification (1-200 chars)"
// @Param        graduation_year          formData  int     true  "Graduation year (1950-2030)"
// @Param        years_of_experience      formData  number  true  "Years of experience (0-70)"
// @Param        skill_set                formData  string  true  "Comma-separated list or JSON array of skills"
// @Param        resume                   formData  file    true  "Resume file"
// @Success      201  {object}  domain.CandidateView
// @Failure      400  {object}  response.ErrorResponse
// @Failure      413  {object}  response.ErrorResponse
// @Failure      429  {object}  response.ErrorResponse
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req CreateCandidateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.Validation(validation.FormatValidationErrors(err)))
		return
	}

	src, err := req.Resume.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Failed to open resume file"))
		return
	}
	defer src.Close()

	candidate, err := h.candidateUC.Create(c.Request.Context(), domain.CandidateSubmission{
		FullName:               req.FullName,
		DateOfBirth:            req.DateOfBirth,
		ContactNumber:          req.ContactNumber,
		ContactAddress:         req.ContactAddress,
		EducationQualification: req.EducationQualification,
		GraduationYear:         req.GraduationYear,
		YearsOfExperience:      req.YearsOfExperience,
		SkillSet:               req.SkillSet,
		Resume: domain.ResumeUpload{
			Filename:    req.Resume.Filename,
			ContentType: req.Resume.Header.Get("Content-Type"),
			Size:        req.Resume.Size,
			Body:        src,
		},
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, candidate.PublicView())
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  List all candidates, optionally filtered by skill, minimum experience, or graduation year. Filters combine.
// @Tags         candidates
// @Produce      json
// @Param        skill            query     string  false  "Case-insensitive substring of any skill"
// @Param        experience       query     number  false  "Minimum years of experience"
// @Param        graduation_year  query     int     false  "Exact graduation year"
// @Success      200  {array}   domain.CandidateView
// @Failure      400  {object}  response.ErrorResponse
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	filter, err := parseCandidateFilter(c)
	if err != nil {
		c.Error(err)
		return
	}

	candidates, err := h.candidateUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]domain.CandidateView, 0, len(candidates))
	for _, candidate := range candidates {
		views = append(views, candidate.PublicView())
	}
	response.JSON(c, http.StatusOK, views)
}

func parseCandidateFilter(c *gin.Context) (domain.CandidateFilter, error) {
	filter := domain.CandidateFilter{Skill: c.Query("skill")}
	var violations []string

	if raw := strings.TrimSpace(c.Query("experience")); raw != "" {
		exp, err := strconv.ParseFloat(raw, 64)
		if err != nil || exp < 0 {
			violations = append(violations, "experience: must be a number greater than or equal to 0")
		} else {
			filter.MinExperience = &exp
		}
	}

	if raw := strings.TrimSpace(c.Query("graduation_year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1950 || year > 2030 {
			violations = append(violations, "graduation_year: must be an integer between 1950 and 2030")
		} else {
			filter.GraduationYear = &year
		}
	}

	if len(violations) > 0 {
		return filter, apperror.Validation(violations)
	}
	return filter, nil
}

// GetCandidate godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  domain.CandidateView
// @Failure      404  {object}  response.ErrorResponse
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, candidate.PublicView())
}

// DeleteCandidate godoc
// @Summary      Delete a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.candidateUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	security.DefaultLogger().LogCandidateDeleted(c.Request.Context(), c.ClientIP(), response.RequestID(c), id)

	response.Message(c, http.StatusOK, "Candidate deleted successfully")
}
