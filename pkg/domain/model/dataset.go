package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/epiview/epiview/pkg/domain/types"
)

// WeekPoint holds one week of reported figures
type WeekPoint struct {
	Date   time.Time `json:"date"`
	Label  string    `json:"label"`
	Cases  int       `json:"cases"`
	Deaths int       `json:"deaths"`
}

// Dataset is an ordered weekly series of cases and deaths. Points are
// aligned positionally; a dataset is never mutated after creation.
type Dataset struct {
	ID        types.DatasetID `json:"id"`
	Seed      int64           `json:"seed"`
	CreatedAt time.Time       `json:"created_at"`
	Points    []WeekPoint     `json:"points"`
}

// NewDataset creates a dataset with a fresh ID
func NewDataset(seed int64, points []WeekPoint) *Dataset {
	return &Dataset{
		ID:        types.NewDatasetID(),
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
		Points:    points,
	}
}

// Validate checks dataset integrity
func (d *Dataset) Validate() error {
	if d.ID == "" {
		return goerr.New("dataset ID is empty")
	}
	for i, p := range d.Points {
		if p.Label == "" {
			return goerr.New("week label is empty", goerr.V("index", i))
		}
		if p.Cases < 0 {
			return goerr.New("negative case count", goerr.V("index", i), goerr.V("cases", p.Cases))
		}
		if p.Deaths < 0 {
			return goerr.New("negative death count", goerr.V("index", i), goerr.V("deaths", p.Deaths))
		}
	}
	return nil
}

// Labels returns week labels in order
func (d *Dataset) Labels() []string {
	labels := make([]string, len(d.Points))
	for i, p := range d.Points {
		labels[i] = p.Label
	}
	return labels
}

// CaseValues returns case counts in week order
func (d *Dataset) CaseValues() []float64 {
	values := make([]float64, len(d.Points))
	for i, p := range d.Points {
		values[i] = float64(p.Cases)
	}
	return values
}

// DeathValues returns death counts in week order
func (d *Dataset) DeathValues() []float64 {
	values := make([]float64, len(d.Points))
	for i, p := range d.Points {
		values[i] = float64(p.Deaths)
	}
	return values
}

// Clone returns a deep copy
func (d *Dataset) Clone() *Dataset {
	c := *d
	c.Points = make([]WeekPoint, len(d.Points))
	copy(c.Points, d.Points)
	return &c
}
