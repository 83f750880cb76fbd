package domain

import (
	"context"
	"errors"
	"io"
	"strings"
)

var ErrCandidateNotFound = errors.New("candidate not found")

// Candidate is one stored resume submission. Resume bytes never leave the store
// through the API; use PublicView for responses.
type Candidate struct {
	ID                     string
	FullName               string
	DateOfBirth            Date
	ContactNumber          string
	ContactAddress         string
	EducationQualification string
	GraduationYear         int
	YearsOfExperience      float64
	SkillSet               []string
	ResumeFilename         string
	ResumeContent          []byte
	ResumeContentType      string
}

// CandidateView is the subset of a Candidate returned over the API.
type CandidateView struct {
	ID                     string   `json:"id" example:"3f1c2b9e-8d4a-4c62-9a51-1f0e7c2d9b10"`
	FullName               string   `json:"full_name" example:"Jane Doe"`
	DateOfBirth            Date     `json:"dob" swaggertype:"string" example:"2003-04-16"`
	ContactNumber          string   `json:"contact_number" example:"+62 812 3456 7890"`
	ContactAddress         string   `json:"contact_address" example:"Jl. Sudirman 1, Jakarta"`
	EducationQualification string   `json:"education_qualification" example:"B.Sc. Computer Science"`
	GraduationYear         int      `json:"graduation_year" example:"2024"`
	YearsOfExperience      float64  `json:"years_of_experience" example:"1.5"`
	SkillSet               []string `json:"skill_set" example:"Go,SQL"`
	ResumeFilename         string   `json:"resume_filename,omitempty" example:"resume.pdf"`
}

func (c *Candidate) PublicView() CandidateView {
	return CandidateView{
		ID:                     c.ID,
		FullName:               c.FullName,
		DateOfBirth:            c.DateOfBirth,
		ContactNumber:          c.ContactNumber,
		ContactAddress:         c.ContactAddress,
		EducationQualification: c.EducationQualification,
		GraduationYear:         c.GraduationYear,
		YearsOfExperience:      c.YearsOfExperience,
		SkillSet:               append([]string(nil), c.SkillSet...),
		ResumeFilename:         c.ResumeFilename,
	}
}

// Clone returns a deep copy so stored records can't be mutated through a caller's pointer.
func (c *Candidate) Clone() *Candidate {
	cp := *c
	cp.SkillSet = append([]string(nil), c.SkillSet...)
	cp.ResumeContent = append([]byte(nil), c.ResumeContent...)
	return &cp
}

// CandidateInput holds the parsed metadata fields that go through struct validation.
type CandidateInput struct {
	FullName               string   `validate:"required,max=200"`
	DateOfBirth            Date     `validate:"-"`
	ContactNumber          string   `validate:"required,max=20,phone_digits"`
	ContactAddress         string   `validate:"required,max=500"`
	EducationQualification string   `validate:"required,max=200"`
	GraduationYear         int      `validate:"gte=1950,lte=2030"`
	YearsOfExperience      float64  `validate:"gte=0,lte=70"`
	SkillSet               []string `validate:"required,min=1,dive,required"`
}

// ResumeUpload describes the uploaded document. Body is only read after every
// other check has passed.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CandidateSubmission is a create request as received from the client, before any parsing.
type CandidateSubmission struct {
	FullName               string
	DateOfBirth            string
	ContactNumber          string
	ContactAddress         string
	EducationQualification string
	GraduationYear         string
	YearsOfExperience      string
	SkillSet               string
	Resume                 ResumeUpload
}

// CandidateFilter narrows a listing. Zero-valued fields don't filter; all set
// fields must match.
type CandidateFilter struct {
	Skill          string
	MinExperience  *float64
	GraduationYear *int
}

func (f CandidateFilter) Matches(c *Candidate) bool {
	if skill := strings.ToLower(strings.TrimSpace(f.Skill)); skill != "" {
		found := false
		for _, s := range c.SkillSet {
			if strings.Contains(strings.ToLower(s), skill) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.MinExperience != nil && c.YearsOfExperience < *f.MinExperience {
		return false
	}
	if f.GraduationYear != nil && c.GraduationYear != *f.GraduationYear {
		return false
	}
	return true
}

type CandidateRepository interface {
	// Insert stores the candidate under a freshly generated ID and returns it.
	Insert(ctx context.Context, candidate *Candidate) (string, error)
	GetByID(ctx context.Context, id string) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]*Candidate, error)
	Delete(ctx context.Context, id string) error
}

type CandidateUsecase interface {
	Create(ctx context.Context, submission CandidateSubmission) (*Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]*Candidate, error)
	Get(ctx context.Context, id string) (*Candidate, error)
	Delete(ctx context.Context, id string) error
}

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}
