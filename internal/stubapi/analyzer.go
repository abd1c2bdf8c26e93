package stubapi

import (
	"fmt"
	"strings"

	"github.com/carepoint/hospital-desk/internal/model"
)

// doctorsPerSpecialty caps how many doctors are suggested for each specialty
const doctorsPerSpecialty = 3

type symptomRule struct {
	keywords  []string
	specialty string
	urgency   model.UrgencyLevel
}

// rules stands in for the inference model. Order only matters for the
// listing order of specialties; urgency takes the highest match.
var rules = []symptomRule{
	{[]string{"unconscious", "not breathing", "severe bleeding", "stroke", "seizure"}, "Emergency Medicine", model.UrgencyEmergency},
	{[]string{"chest pain", "palpitation", "heart", "shortness of breath"}, "Cardiology", model.UrgencyHigh},
	{[]string{"rash", "itch", "acne", "skin", "mole"}, "Dermatology", model.UrgencyLow},
	{[]string{"knee", "back pain", "joint", "fracture", "sprain", "shoulder"}, "Orthopedics", model.UrgencyMedium},
	{[]string{"sport", "running", "muscle"}, "Sports Medicine", model.UrgencyLow},
	{[]string{"headache", "migraine", "dizziness", "numbness"}, "Neurology", model.UrgencyMedium},
	{[]string{"fever", "cough", "fatigue", "nausea"}, "Internal Medicine", model.UrgencyMedium},
}

var fallbackSpecialties = []string{"General Medicine", "Internal Medicine"}

const disclaimer = "This is not a diagnosis. Please consult with a healthcare professional for proper diagnosis."

// Analyze matches symptoms against the rule table and suggests doctors from store
func Analyze(store *Store, symptoms string) model.SymptomAnalysis {
	text := strings.ToLower(symptoms)

	var specialties []string
	urgency := model.UrgencyLow
	seen := make(map[string]bool)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if !strings.Contains(text, kw) {
				continue
			}
			if !seen[rule.specialty] {
				seen[rule.specialty] = true
				specialties = append(specialties, rule.specialty)
			}
			if rule.urgency.Rank() > urgency.Rank() {
				urgency = rule.urgency
			}
			break
		}
	}

	if len(specialties) == 0 {
		return fallbackAnalysis(store)
	}

	var doctors []model.DoctorRecommendation
	for _, specialty := range specialties {
		for _, d := range store.DoctorsWithSpecialty(specialty, doctorsPerSpecialty) {
			doctors = append(doctors, model.DoctorRecommendation{
				Doctor:       d,
				MatchReason:  "Specialized in " + specialty,
				UrgencyLevel: urgency,
			})
		}
	}

	notes := disclaimer
	if urgency == model.UrgencyEmergency {
		notes = "Seek emergency care immediately. " + disclaimer
	}
	return model.SymptomAnalysis{
		Analysis: fmt.Sprintf("The described symptoms are most consistent with conditions treated in %s.",
			strings.Join(specialties, ", ")),
		UrgencyLevel:           urgency,
		RecommendedSpecialties: specialties,
		RecommendedDoctors:     nonNil(doctors),
		AdditionalNotes:        notes,
	}
}

func fallbackAnalysis(store *Store) model.SymptomAnalysis {
	var doctors []model.DoctorRecommendation
	for _, specialty := range fallbackSpecialties {
		for _, d := range store.DoctorsWithSpecialty(specialty, doctorsPerSpecialty) {
			doctors = append(doctors, model.DoctorRecommendation{
				Doctor:       d,
				MatchReason:  "General consultation",
				UrgencyLevel: model.UrgencyMedium,
			})
		}
	}
	return model.SymptomAnalysis{
		Analysis:               "Basic symptom analysis. No specific condition could be matched.",
		UrgencyLevel:           model.UrgencyMedium,
		RecommendedSpecialties: append([]string(nil), fallbackSpecialties...),
		RecommendedDoctors:     nonNil(doctors),
		AdditionalNotes:        disclaimer,
	}
}

func nonNil(recs []model.DoctorRecommendation) []model.DoctorRecommendation {
	if recs == nil {
		return []model.DoctorRecommendation{}
	}
	return recs
}
