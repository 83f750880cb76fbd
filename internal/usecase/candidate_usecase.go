package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"resume-collector-backend/internal/domain"
	"resume-collector-backend/pkg/apperror"
	"resume-collector-backend/pkg/logger"
	"resume-collector-backend/pkg/security"
	"resume-collector-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo           domain.CandidateRepository
	validate       *validator.Validate
	maxResumeBytes int64
}

// NewCandidateUsecase wires the create pipeline. maxResumeBytes <= 0 disables the upload cap.
func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate, maxResumeBytes int64) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:           repo,
		validate:       validate,
		maxResumeBytes: maxResumeBytes,
	}
}

// Create runs every check before touching the store, so a rejected submission
// leaves nothing behind.
func (u *candidateUsecase) Create(ctx context.Context, sub domain.CandidateSubmission) (*domain.Candidate, error) {
	skills, err := validation.ParseSkillSet(sub.SkillSet)
	if err != nil {
		return nil, apperror.InvalidSkillSet(validation.InvalidSkillSetMessage)
	}

	dob, err := validation.ParseDate(sub.DateOfBirth)
	if err != nil {
		return nil, apperror.InvalidDate(validation.InvalidDateMessage)
	}

	input, err := u.validateInput(sub, skills.Skills, domain.Date{Time: dob})
	if err != nil {
		return nil, err
	}

	if err := security.ValidateResumeFile(sub.Resume.Filename, sub.Resume.ContentType); err != nil {
		return nil, fileError(err)
	}
	if err := security.ValidateFileSize(sub.Resume.Size, u.maxResumeBytes); err != nil {
		return nil, fileError(err)
	}

	content, err := u.readResume(sub.Resume.Body)
	if err != nil {
		return nil, err
	}

	candidate := &domain.Candidate{
		FullName:               input.FullName,
		DateOfBirth:            input.DateOfBirth,
		ContactNumber:          input.ContactNumber,
		ContactAddress:         input.ContactAddress,
		EducationQualification: input.EducationQualification,
		GraduationYear:         input.GraduationYear,
		YearsOfExperience:      input.YearsOfExperience,
		SkillSet:               input.SkillSet,
		ResumeFilename:         sub.Resume.Filename,
		ResumeContent:          content,
		ResumeContentType:      sub.Resume.ContentType,
	}

	id, err := u.repo.Insert(ctx, candidate)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("Candidate created",
		"candidate_id", id,
		"skill_format", skills.Format.String(),
		"resume_bytes", len(content),
	)
	return candidate, nil
}

// validateInput converts the numeric form values and runs the struct rules,
// collecting every violation.
func (u *candidateUsecase) validateInput(sub domain.CandidateSubmission, skills []string, dob domain.Date) (*domain.CandidateInput, error) {
	input := &domain.CandidateInput{
		FullName:               sub.FullName,
		DateOfBirth:            dob,
		ContactNumber:          sub.ContactNumber,
		ContactAddress:         sub.ContactAddress,
		EducationQualification: sub.EducationQualification,
		SkillSet:               skills,
	}

	var violations []string
	var skip []string

	year, err := strconv.Atoi(strings.TrimSpace(sub.GraduationYear))
	if err != nil {
		violations = append(violations, "graduation_year: must be a valid integer")
		skip = append(skip, "GraduationYear")
	}
	input.GraduationYear = year

	exp, err := strconv.ParseFloat(strings.TrimSpace(sub.YearsOfExperience), 64)
	if err != nil {
		violations = append(violations, "years_of_experience: must be a valid number")
		skip = append(skip, "YearsOfExperience")
	}
	input.YearsOfExperience = exp

	if err := u.validate.StructExcept(input, skip...); err != nil {
		violations = append(violations, validation.FormatValidationErrors(err)...)
	}

	if len(violations) > 0 {
		return nil, apperror.Validation(violations)
	}
	return input, nil
}

func (u *candidateUsecase) readResume(body io.Reader) ([]byte, error) {
	if body == nil {
		return []byte{}, nil
	}
	if u.maxResumeBytes > 0 {
		body = io.LimitReader(body, u.maxResumeBytes+1)
	}
	content, err := io.ReadAll(body)
	if err != nil {
		logger.Log.Warn("Reading resume failed", "error", err)
		return nil, apperror.BadRequest("Failed to read resume file")
	}
	// The declared size can be wrong; the bytes actually read are what count.
	if err := security.ValidateFileSize(int64(len(content)), u.maxResumeBytes); err != nil {
		return nil, fileError(err)
	}
	return content, nil
}

func fileError(err error) error {
	var fe *security.FileValidationError
	if !errors.As(err, &fe) {
		return apperror.Internal(err)
	}
	switch {
	case errors.Is(err, security.ErrUnsupportedFileType):
		return apperror.UnsupportedFileType(fe.Message)
	case errors.Is(err, security.ErrUnsupportedContentType):
		return apperror.UnsupportedContentType(fe.Message)
	case errors.Is(err, security.ErrFileTooLarge):
		return apperror.ResumeTooLarge(fe.Message)
	default:
		return apperror.Internal(fmt.Errorf("unexpected file validation error: %w", err))
	}
}

func (u *candidateUsecase) List(ctx context.Context, filter domain.CandidateFilter) ([]*domain.Candidate, error) {
	candidates, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return candidates, nil
}

func (u *candidateUsecase) Get(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			return nil, apperror.NotFound("Candidate not found")
		}
		return nil, apperror.Internal(err)
	}
	return candidate, nil
}

func (u *candidateUsecase) Delete(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			return apperror.NotFound("Candidate not found")
		}
		return apperror.Internal(err)
	}
	logger.Log.Info("Candidate deleted", "candidate_id", id)
	return nil
}
