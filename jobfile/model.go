package jobfile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/integral/integrate"
	"github.com/katalvlaran/integral/models"
)

// Models lists the names accepted in the model attribute.
func Models() []string {
	out := make([]string, 0, len(constructors))
	for k := range constructors {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

var constructors = map[string]func(p map[string]float64) (integrate.Model, error){
	"gauss": func(p map[string]float64) (integrate.Model, error) {
		return models.NewGauss(p["mu"], param(p, "sigma", 1), "x")
	},
	"crystalball": func(p map[string]float64) (integrate.Model, error) {
		return models.NewCrystalBall(p["mean"], param(p, "sigma", 1), param(p, "alpha", 1), param(p, "n", 1), "x")
	},
	"polynomial": func(p map[string]float64) (integrate.Model, error) {
		var coeffs []float64
		for k := 0; ; k++ {
			c, ok := p[fmt.Sprintf("c%d", k)]
			if !ok {
				break
			}
			coeffs = append(coeffs, c)
		}
		return models.NewPolynomial(coeffs, "x")
	},
}

func param(p map[string]float64, name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}

	return def
}

// NewModel builds the job's model from its name and parameters.
func (j *Job) NewModel() (integrate.Model, error) {
	ctor, ok := constructors[strings.ToLower(j.Model)]
	if !ok {
		return nil, fmt.Errorf("job %q: %q (known: %s): %w", j.Name, j.Model, strings.Join(Models(), ", "), ErrUnknownModel)
	}
	m, err := ctor(j.Params)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", j.Name, err)
	}

	return m, nil
}
