package model

// DoctorRecommendation pairs a matched doctor with the reason it was suggested
type DoctorRecommendation struct {
	Doctor       Doctor       `json:"doctor"`
	MatchReason  string       `json:"match_reason"`
	UrgencyLevel UrgencyLevel `json:"urgency_level,omitempty"`
}

// SymptomAnalysis is the structured recommendation returned by the analysis endpoint
type SymptomAnalysis struct {
	Analysis               string                 `json:"analysis"`
	UrgencyLevel           UrgencyLevel           `json:"urgency_level"`
	RecommendedSpecialties []string               `json:"recommended_specialties"`
	RecommendedDoctors     []DoctorRecommendation `json:"recommended_doctors"`
	AdditionalNotes        string                 `json:"additional_notes"`
}
