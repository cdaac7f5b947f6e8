package skinprofile

// SkinType is one of the five skin-type categories scored by the survey.
type SkinType int

const (
	Oily SkinType = iota
	Dry
	Combination
	Normal
	Sensitive

	numSkinTypes
)

var skinTypeNames = [numSkinTypes]string{
	Oily:        "Oily",
	Dry:         "Dry",
	Combination: "Combination",
	Normal:      "Normal",
	Sensitive:   "Sensitive",
}

func (s SkinType) String() string {
	if s < 0 || s >= numSkinTypes {
		return "Unknown"
	}
	return skinTypeNames[s]
}

// AllSkinTypes returns the categories in catalog order.
func AllSkinTypes() []SkinType {
	return []SkinType{Oily, Dry, Combination, Normal, Sensitive}
}

// ParseSkinType maps a category name back to its SkinType.
func ParseSkinType(name string) (SkinType, bool) {
	for i, n := range skinTypeNames {
		if n == name {
			return SkinType(i), true
		}
	}
	return 0, false
}

type SurveyQuestion struct {
	Code      string     `json:"code"`
	Question  string     `json:"question"`
	SkinTypes []SkinType `json:"-"`
}

type ProblemQuestion struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Question string `json:"question"`
}

var surveyQuestions = []SurveyQuestion{
	{Code: "A1", Question: "My face looks shiny during the day without make-up.", SkinTypes: []SkinType{Oily}},
	{Code: "A2", Question: "I feel a greasy or sticky layer under my fingertips.", SkinTypes: []SkinType{Oily}},
	{Code: "A3", Question: "My make-up slides off faster than my friends'.", SkinTypes: []SkinType{Oily}},
	{Code: "A4", Question: "I can clearly see enlarged pores on my cheeks or nose.", SkinTypes: []SkinType{Oily, Combination}},
	{Code: "A5", Question: "After cleansing my skin quickly becomes shiny again.", SkinTypes: []SkinType{Oily}},
	{Code: "B1", Question: "My skin feels tight or rough, especially after washing.", SkinTypes: []SkinType{Dry}},
	{Code: "B2", Question: "My skin flakes (for example around the nose or on the forehead).", SkinTypes: []SkinType{Dry}},
	{Code: "B3", Question: "Cream is absorbed instantly and I still feel the need to apply more.", SkinTypes: []SkinType{Dry}},
	{Code: "B4", Question: "I feel discomfort or burning after contact with water.", SkinTypes: []SkinType{Dry, Sensitive}},
	{Code: "C1", Question: "My T-zone (forehead, nose, chin) is shiny while my cheeks are rather matte.", SkinTypes: []SkinType{Combination}},
	{Code: "C2", Question: "I have oily and very dry areas at the same time.", SkinTypes: []SkinType{Combination}},
	{Code: "C3", Question: "I have to use different creams on different parts of my face.", SkinTypes: []SkinType{Combination}},
	{Code: "D1", Question: "I rarely have blemishes and my skin never feels tight.", SkinTypes: []SkinType{Normal}},
	{Code: "D2", Question: "My skin has an even tone and a soft, smooth surface.", SkinTypes: []SkinType{Normal}},
	{Code: "D3", Question: "I do not notice excessive shine or dryness.", SkinTypes: []SkinType{Normal}},
	{Code: "E1", Question: "My skin reddens easily with touch, temperature changes or new cosmetics.", SkinTypes: []SkinType{Sensitive}},
	{Code: "E2", Question: "My skin often burns or itches after applying products.", SkinTypes: []SkinType{Sensitive}},
	{Code: "E3", Question: "I am prone to redness or visible spider veins.", SkinTypes: []SkinType{Sensitive}},
}

var problemQuestions = []ProblemQuestion{
	{Code: "P1", Name: "Acne", Question: "I have visible pustules, papules or inflammation."},
	{Code: "P2", Name: "Blackheads", Question: "I see black dots or white bumps in my pores."},
	{Code: "P3", Name: "Enlarged pores", Question: "My pores are big enough to see in a mirror from 20 cm."},
	{Code: "P4", Name: "Discoloration", Question: "I have darker spots, sun spots or post-acne marks."},
	{Code: "P5", Name: "Loss of firmness", Question: "My skin seems less taut and the contours are sagging."},
	{Code: "P6", Name: "Wrinkles", Question: "Expression lines, wrinkles or crow's feet are visible."},
	{Code: "P7", Name: "Irritation/redness", Question: "Redness or burning appears easily."},
	{Code: "P8", Name: "Atopic dermatitis/eczema/psoriasis", Question: "A doctor has diagnosed it or I notice symptoms of these conditions."},
	{Code: "P9", Name: "Couperose", Question: "I notice broken capillaries or spider veins."},
	{Code: "P10", Name: "Dark circles/puffiness under the eyes", Question: "I have distinct bluish or brown circles or swelling."},
}

// SurveyQuestions returns a copy of the fixed skin-type questionnaire.
func SurveyQuestions() []SurveyQuestion {
	out := make([]SurveyQuestion, len(surveyQuestions))
	for i, q := range surveyQuestions {
		q.SkinTypes = append([]SkinType(nil), q.SkinTypes...)
		out[i] = q
	}
	return out
}

// ProblemQuestions returns a copy of the fixed skin-problem checklist.
func ProblemQuestions() []ProblemQuestion {
	return append([]ProblemQuestion(nil), problemQuestions...)
}

// IsProblemName reports whether name is the display name of a catalog problem.
func IsProblemName(name string) bool {
	for _, p := range problemQuestions {
		if p.Name == name {
			return true
		}
	}
	return false
}
