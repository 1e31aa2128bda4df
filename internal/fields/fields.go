// Package fields derives structured candidate facts from normalized
// resume text using keyword vocabularies and regular expressions.
package fields

// CandidateFacts is everything the field pass could read out of one
// resume. Zero values mean "not found"; extraction is total and never
// errors on odd input.
type CandidateFacts struct {
	Name            string
	Email           string
	Phone           string
	Skills          []string
	ExperienceYears float64
	Education       string
}

// Extractor bundles the vocabulary so callers configure skills once.
type Extractor struct {
	vocab *Vocabulary
}

// NewExtractor builds a field extractor. A nil vocabulary selects the
// built-in skill table.
func NewExtractor(vocab *Vocabulary) *Extractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Extractor{vocab: vocab}
}

// Extract runs every field extractor over the text.
func (e *Extractor) Extract(text string) CandidateFacts {
	return CandidateFacts{
		Name:            ExtractName(text),
		Email:           ExtractEmail(text),
		Phone:           ExtractPhone(text),
		Skills:          ExtractSkills(text, e.vocab),
		ExperienceYears: ExtractExperienceYears(text),
		Education:       ExtractEducation(text),
	}
}
