package data

import (
	"math"
	"math/rand"
)

// Participant is one synthetic trial enrolee used to train the demo models.
type Participant struct {
	Age           float64
	DistanceKm    float64
	MissedVisits  float64
	AdverseEvents float64
	BaselineScore float64
	WeeksEnrolled float64
	Comorbidities float64
	HasCaregiver  float64
	Dropout       int
}

// ParticipantFeatures lists the feature names in Vector order.
var ParticipantFeatures = []string{
	"Age", "Distance to Site (km)", "Missed Visits", "Adverse Events",
	"Baseline Score", "Weeks Enrolled", "Comorbidities", "Has Caregiver",
}

func (p Participant) Vector() []float64 {
	return []float64{
		p.Age, p.DistanceKm, p.MissedVisits, p.AdverseEvents,
		p.BaselineScore, p.WeeksEnrolled, p.Comorbidities, p.HasCaregiver,
	}
}

// GenerateParticipants draws n participants from a fixed generative model.
// The same seed always yields the same cohort.
func GenerateParticipants(n int, seed int64) []Participant {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Participant, n)
	for i := range out {
		p := Participant{
			Age:           math.Round(18 + rng.Float64()*62),
			DistanceKm:    math.Round(rng.ExpFloat64()*25*10) / 10,
			MissedVisits:  float64(poisson(rng, 1.2)),
			AdverseEvents: float64(poisson(rng, 0.6)),
			BaselineScore: math.Round((50+rng.NormFloat64()*12)*10) / 10,
			WeeksEnrolled: float64(1 + rng.Intn(52)),
			Comorbidities: float64(poisson(rng, 0.8)),
		}
		if rng.Float64() < 0.55 {
			p.HasCaregiver = 1
		}

		z := -2.2
		z += 0.55 * p.MissedVisits
		z += 0.45 * p.AdverseEvents
		z += 0.025 * p.DistanceKm
		z += 0.2 * p.Comorbidities
		z -= 0.7 * p.HasCaregiver
		z -= 0.02 * (p.BaselineScore - 50)
		z -= 0.015 * p.WeeksEnrolled
		if p.Age < 25 || p.Age > 70 {
			z += 0.4
		}
		if rng.Float64() < 1/(1+math.Exp(-z)) {
			p.Dropout = 1
		}
		out[i] = p
	}
	return out
}

func poisson(rng *rand.Rand, lambda float64) int {
	l := math.Exp(-lambda)
	k, p := 0, 1.0
	for {
		p *= rng.Float64()
		if p <= l {
			return k
		}
		k++
	}
}
