package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const InvalidSkillSetMessage = "skill_set must have at least one skill"

var ErrEmptySkillSet = errors.New(InvalidSkillSetMessage)

// SkillFormat is the encoding a raw skill_set value was detected as.
type SkillFormat int

const (
	SkillFormatInvalid SkillFormat = iota
	SkillFormatCSV
	SkillFormatJSONArray
)

func (f SkillFormat) String() string {
	switch f {
	case SkillFormatCSV:
		return "csv"
	case SkillFormatJSONArray:
		return "json_array"
	default:
		return "invalid"
	}
}

// SkillParseResult is the detected format plus the cleaned skill list.
type SkillParseResult struct {
	Format SkillFormat
	Skills []string
}

var skillSetSchema = mustLoadSchema(`{
	"type": "array",
	"items": {"type": "string"}
}`)

func mustLoadSchema(schema string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic("validation: invalid built-in schema: " + err.Error())
	}
	return s
}

// DetectSkillFormat reports JSONArray only for a well formed array of strings.
// Anything else starting with "[" is read as comma-separated.
func DetectSkillFormat(raw string) SkillFormat {
	s := strings.TrimSpace(raw)
	if s == "" {
		return SkillFormatInvalid
	}
	if !strings.HasPrefix(s, "[") {
		return SkillFormatCSV
	}
	result, err := skillSetSchema.Validate(gojsonschema.NewStringLoader(s))
	if err != nil || !result.Valid() {
		return SkillFormatCSV
	}
	return SkillFormatJSONArray
}

// ParseSkillSet turns a JSON array or comma-separated string into a non-empty
// list of trimmed skills.
func ParseSkillSet(raw string) (SkillParseResult, error) {
	s := strings.TrimSpace(raw)
	format := DetectSkillFormat(s)

	var segments []string
	switch format {
	case SkillFormatJSONArray:
		if err := json.Unmarshal([]byte(s), &segments); err != nil {
			return SkillParseResult{Format: SkillFormatInvalid}, ErrEmptySkillSet
		}
	case SkillFormatCSV:
		if strings.HasPrefix(s, "[") {
			s = strings.NewReplacer("[", "", "]", "").Replace(s)
		}
		segments = strings.Split(s, ",")
	default:
		return SkillParseResult{Format: SkillFormatInvalid}, ErrEmptySkillSet
	}

	skills := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg = strings.TrimSpace(seg); seg != "" {
			skills = append(skills, seg)
		}
	}
	if len(skills) == 0 {
		return SkillParseResult{Format: SkillFormatInvalid}, ErrEmptySkillSet
	}
	return SkillParseResult{Format: format, Skills: skills}, nil
}
