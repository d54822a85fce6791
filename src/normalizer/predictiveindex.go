package normalizer

import "github.com/strata-hq/teamforge/src/traits"

// predictiveIndexMapper normalizes the four PI behavioral drives. Raw
// fields, each on a 0-100 scale:
//
//	dominance, extraversion, patience, formality
//
// Canonical dimensions are fixed affine combinations of the drives.
// A negative coefficient reads as weight on the inverted drive.
type predictiveIndexMapper struct{}

var piDriveKeys = []string{"dominance", "extraversion", "patience", "formality"}

// Rows: intercept, then one coefficient per drive in piDriveKeys order.
var piBlend = map[string][5]float64{
	"openness":      {0.20, 0.35, 0.15, 0.00, -0.10},
	"conscientious": {0.10, 0.00, 0.00, 0.15, 0.75},
	"extraversion":  {0.00, 0.00, 1.00, 0.00, 0.00},
	"agreeableness": {0.10, -0.30, 0.00, 0.60, 0.00},
	"neuroticism":   {0.65, -0.10, -0.10, -0.25, 0.00},
	"leadership":    {0.05, 0.60, 0.25, -0.10, 0.10},
	"collaboration": {0.15, -0.20, 0.30, 0.45, 0.00},
}

func (predictiveIndexMapper) Framework() traits.Framework { return traits.FrameworkPredictiveIndex }

func (predictiveIndexMapper) Normalize(raw map[string]interface{}) (traits.CanonicalTraitVector, error) {
	drives := make([]float64, len(piDriveKeys))
	for i, key := range piDriveKeys {
		val, err := rawScale(raw, key)
		if err != nil {
			return traits.CanonicalTraitVector{}, err
		}
		drives[i] = val
	}

	blend := func(dim string) float64 {
		row := piBlend[dim]
		out := row[0]
		for i, d := range drives {
			out += row[i+1] * d
		}
		return out
	}

	return traits.CanonicalTraitVector{
		Openness:            blend("openness"),
		Conscientiousness:   blend("conscientious"),
		Extraversion:        blend("extraversion"),
		Agreeableness:       blend("agreeableness"),
		Neuroticism:         blend("neuroticism"),
		LeadershipPotential: blend("leadership"),
		CollaborationIndex:  blend("collaboration"),
	}, nil
}
