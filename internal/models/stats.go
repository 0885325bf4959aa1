package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Numeric is a float64 that decodes from either a JSON number or a
// numeric string. Non-numeric strings decode to NaN rather than
// failing the request, matching loose Number() coercion; NaN
// marshals back to JSON null.
type Numeric float64

func (n Numeric) Float64() float64 { return float64(n) }

// IsNaN reports whether the value is the invalid-number marker.
func (n Numeric) IsNaN() bool { return math.IsNaN(float64(n)) }

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*n = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			*n = Numeric(math.NaN())
			return nil
		}
		*n = Numeric(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*n = Numeric(math.NaN())
		return nil
	}
	*n = Numeric(f)
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// Stats is the singleton aggregate-statistics document. CommitsPushed
// is never taken from the client; it is derived from the GitHub
// contributions feed on every upsert.
type Stats struct {
	ID                   string  `bson:"_id,omitempty" json:"-"`
	ProjectsDone         Numeric `bson:"projectsDone" json:"projectsDone"`
	YearsOfExperience    Numeric `bson:"yearsOfExperience" json:"yearsOfExperience"`
	HoursOfCoding        Numeric `bson:"hoursOfCoding" json:"hoursOfCoding"`
	CommitsPushed        Numeric `bson:"commitsPushed" json:"commitsPushed"`
	CupsOfCoffeeConsumed Numeric `bson:"cupsOfCoffeeConsumed" json:"cupsOfCoffeeConsumed"`
}

// StatsInput carries the four client-supplied stats numbers. Fields
// absent from the request body keep their NaN defaults from
// NewStatsInput, the same marker an unparseable string produces.
type StatsInput struct {
	ProjectsDone         Numeric `json:"projectsDone"`
	YearsOfExperience    Numeric `json:"yearsOfExperience"`
	HoursOfCoding        Numeric `json:"hoursOfCoding"`
	CupsOfCoffeeConsumed Numeric `json:"cupsOfCoffeeConsumed"`
}

// NewStatsInput returns a StatsInput with every field set to NaN.
func NewStatsInput() StatsInput {
	nan := Numeric(math.NaN())
	return StatsInput{
		ProjectsDone:         nan,
		YearsOfExperience:    nan,
		HoursOfCoding:        nan,
		CupsOfCoffeeConsumed: nan,
	}
}
