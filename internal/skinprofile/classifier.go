// Package skinprofile turns skin survey answers into a skin-type label and a
// list of flagged skin problems.
package skinprofile

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// MinQualifyingScore is the lowest total a category needs to be considered.
	MinQualifyingScore = 8
	// SensitiveOverlayMargin is the largest gap between the top category and
	// Sensitive that still yields a composite label.
	SensitiveOverlayMargin = 2

	MinAnswer = 1
	MaxAnswer = 5

	compositeSeparator = " - "
)

var (
	ErrIncompleteAnswers = errors.New("skin type questionnaire is incomplete")
	ErrUnknownQuestion   = errors.New("unknown question code")
	ErrAnswerOutOfRange  = errors.New("answer out of range")
)

// tieBreakOrder resolves exact ties among the top candidates.
var tieBreakOrder = [numSkinTypes]SkinType{Combination, Oily, Dry, Normal, Sensitive}

// SkinTypeAnswers maps a survey question code to a 1-5 rating.
type SkinTypeAnswers map[string]int

// ProblemAnswers maps a problem code to whether the user selected it.
type ProblemAnswers map[string]bool

type Result struct {
	SkinType string   `json:"skin_type"`
	Problems []string `json:"skin_problems"`
}

type Scores [numSkinTypes]int

func (s Scores) Of(t SkinType) int { return s[t] }

// Score sums every answer into each category its question is associated with.
// Missing answers contribute nothing.
func Score(answers SkinTypeAnswers) Scores {
	var scores Scores
	for _, q := range surveyQuestions {
		value := answers[q.Code]
		for _, t := range q.SkinTypes {
			scores[t] += value
		}
	}
	return scores
}

type candidate struct {
	skinType SkinType
	score    int
}

// ClassifySkinType derives the skin-type label. Callers are expected to run
// ValidateSkinTypeAnswers first.
func ClassifySkinType(answers SkinTypeAnswers) string {
	scores := Score(answers)

	candidates := make([]candidate, 0, numSkinTypes)
	for _, t := range AllSkinTypes() {
		if scores[t] >= MinQualifyingScore {
			candidates = append(candidates, candidate{skinType: t, score: scores[t]})
		}
	}
	if len(candidates) == 0 {
		return Normal.String()
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	first := candidates[0]
	if len(candidates) >= 2 {
		second := candidates[1]
		if first.score-second.score <= SensitiveOverlayMargin && second.skinType == Sensitive {
			return first.skinType.String() + compositeSeparator + Sensitive.String()
		}
	}

	tied := 0
	for _, c := range candidates {
		if c.score == first.score {
			tied++
		}
	}
	if tied > 1 {
		for _, t := range tieBreakOrder {
			for _, c := range candidates[:tied] {
				if c.skinType == t {
					return t.String()
				}
			}
		}
	}

	return first.skinType.String()
}

// SelectProblems returns the names of the selected problems in catalog order.
func SelectProblems(answers ProblemAnswers) []string {
	problems := make([]string, 0, len(problemQuestions))
	for _, p := range problemQuestions {
		if answers[p.Code] {
			problems = append(problems, p.Name)
		}
	}
	return problems
}

// Classify runs both classifiers over one survey submission.
func Classify(skinAnswers SkinTypeAnswers, problemAnswers ProblemAnswers) Result {
	return Result{
		SkinType: ClassifySkinType(skinAnswers),
		Problems: SelectProblems(problemAnswers),
	}
}

// ValidateSkinTypeAnswers checks that every question is answered with a value
// in range and that no unknown codes are present.
func ValidateSkinTypeAnswers(answers SkinTypeAnswers) error {
	known := make(map[string]struct{}, len(surveyQuestions))
	for _, q := range surveyQuestions {
		known[q.Code] = struct{}{}
	}
	for code, value := range answers {
		if _, ok := known[code]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownQuestion, code)
		}
		if value < MinAnswer || value > MaxAnswer {
			return fmt.Errorf("%w: %s=%d", ErrAnswerOutOfRange, code, value)
		}
	}
	var missing []string
	for _, q := range surveyQuestions {
		if _, ok := answers[q.Code]; !ok {
			missing = append(missing, q.Code)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteAnswers, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateProblemAnswers rejects unknown problem codes. Absent codes count as
// unselected.
func ValidateProblemAnswers(answers ProblemAnswers) error {
	for code := range answers {
		found := false
		for _, p := range problemQuestions {
			if p.Code == code {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %s", ErrUnknownQuestion, code)
		}
	}
	return nil
}

// IsValidLabel reports whether label could have been produced by
// ClassifySkinType.
func IsValidLabel(label string) bool {
	primary, overlay, composite := strings.Cut(label, compositeSeparator)
	if _, ok := ParseSkinType(primary); !ok {
		return false
	}
	if !composite {
		return true
	}
	return overlay == Sensitive.String() && primary != Sensitive.String()
}
