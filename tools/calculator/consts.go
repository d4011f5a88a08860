package calculator

import (
	"math"
)

var constParams = map[string]interface{}{
	"pi":      math.Pi,
	"e":       math.E,
	"phi":     math.Phi,
	"sqrt2":   math.Sqrt2,
	"sqrte":   math.SqrtE,
	"sqrtpi":  math.SqrtPi,
	"sqrtphi": math.SqrtPhi,
	"ln2":     math.Ln2,
	"log2e":   math.Log2E,
	"ln10":    math.Ln10,
	"log10e":  math.Log10E,
}
