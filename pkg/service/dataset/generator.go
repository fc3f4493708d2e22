// Package dataset generates and summarizes weekly surveillance figures.
package dataset

import (
	"math"
	"math/rand"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/epiview/epiview/pkg/domain/model"
)

// Generation bounds matching the reference dataset
const (
	baseCasesStart = 45000.0
	baseCasesEnd   = 19000.0
	caseNoiseSigma = 3000.0
	seasonalAmp    = 0.3
	minCases       = 15000

	fatalityRate    = 0.025
	deathLag        = 2
	deathNoiseSigma = 50.0
	minDeaths       = 200
)

// Generator produces deterministic sample datasets. Two generators with
// the same parameters yield identical figures.
type Generator struct {
	Seed  int64
	Weeks int
	Start time.Time
}

// NewGenerator creates a generator with the reference defaults:
// 18 weeks from 2025-01-01, seed 42
func NewGenerator() *Generator {
	return &Generator{
		Seed:  42,
		Weeks: 18,
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Generate produces the weekly case/death series. Cases decline from a
// high base with seasonal variation and noise; deaths trail cases by
// deathLag weeks at the base fatality rate. Both series are floored so
// counts never drop below plausible minimums.
func (g *Generator) Generate() (*model.Dataset, error) {
	if g.Weeks < 0 {
		return nil, goerr.New("week count must not be negative", goerr.V("weeks", g.Weeks))
	}

	rng := rand.New(rand.NewSource(g.Seed))

	base := linspace(baseCasesStart, baseCasesEnd, g.Weeks)
	phase := linspace(0, 2*math.Pi, g.Weeks)

	cases := make([]int, g.Weeks)
	for i := 0; i < g.Weeks; i++ {
		seasonal := 1 + seasonalAmp*math.Sin(phase[i])
		v := base[i]*seasonal + rng.NormFloat64()*caseNoiseSigma
		cases[i] = int(math.Max(v, minCases))
	}

	deaths := make([]int, g.Weeks)
	for i := 0; i < g.Weeks; i++ {
		// deaths follow cases with a fixed lag; the first weeks wrap to
		// the tail of the series so the output stays fully populated
		lagged := cases[((i-deathLag)%g.Weeks+g.Weeks)%g.Weeks]
		v := float64(lagged)*fatalityRate + rng.NormFloat64()*deathNoiseSigma
		deaths[i] = int(math.Max(v, minDeaths))
	}

	points := make([]model.WeekPoint, g.Weeks)
	for i := 0; i < g.Weeks; i++ {
		date := g.Start.AddDate(0, 0, 7*i)
		points[i] = model.WeekPoint{
			Date:   date,
			Label:  date.Format("Jan 02"),
			Cases:  cases[i],
			Deaths: deaths[i],
		}
	}

	ds := model.NewDataset(g.Seed, points)
	if err := ds.Validate(); err != nil {
		return nil, goerr.Wrap(err, "generated dataset is invalid")
	}
	return ds, nil
}

// linspace returns n evenly spaced values from start to end inclusive
func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
