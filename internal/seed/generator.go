// Package seed generates a realistic athletes.json dataset for local
// runs and demos. Output is deterministic for a given seed.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/adurand33/Performance/internal/domain/model"
)

// Generation defaults.
const (
	defaultSeed       = 42
	minRecords        = 4
	recordSpread      = 6
	hundredthsPerSec  = 100
	daysPerMonthLimit = 28
)

var athleteNames = []string{
	"Alice Moreau",
	"Bruno Keller",
	"Carmen Diaz",
	"Daniel Okafor",
	"Elsa Lindqvist",
	"Felix Garnier",
	"Grace Whelan",
	"Hugo Petit",
}

var categories = []string{"Junior", "Senior", "Espoir", "Master"}

var clubs = []string{
	"AC Belmont", "Racing 92", "Stade Rennais Athle", "US Toulouse",
}

var regions = []string{"Bretagne", "Occitanie", "Ile-de-France", "Normandie"}

var locations = []string{"Rennes", "Toulouse", "Paris", "Caen", "Lyon"}

// event couples a label with the realistic range of race seconds.
type event struct {
	label      string
	minSeconds float64
	maxSeconds float64
}

var events = []event{
	{"60m Indoor", 7, 9},
	{"100m", 10.5, 13},
	{"400m", 48, 62},
	{"800m", 105, 140},
	{"1500m", 220, 290},
	{"3000m Steeple", 510, 650},
	{"5000m", 780, 1050},
	{"10000m", 1650, 2100},
	{"5km Road", 800, 1100},
	{"10km Road", 1700, 2200},
	{"20km Road", 3500, 4600},
	{"1/2 Marathon", 3800, 5400},
}

// Generator produces athlete datasets.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator. seed <= 0 selects the default.
func NewGenerator(seed int64) *Generator {
	if seed <= 0 {
		seed = defaultSeed
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // deterministic seed data
}

// Dataset generates records for count athletes (capped at the name
// pool). Times are written in the dataset's mixed free-text formats
// and dates day-first, matching what the parsers expect to handle.
func (g *Generator) Dataset(count int) model.Dataset {
	if count <= 0 || count > len(athleteNames) {
		count = len(athleteNames)
	}
	ds := make(model.Dataset, count)
	for _, name := range athleteNames[:count] {
		n := minRecords + g.rng.Intn(recordSpread)
		records := make([]model.Record, 0, n)
		for i := 0; i < n; i++ {
			ev := events[g.rng.Intn(len(events))]
			seconds := ev.minSeconds + g.rng.Float64()*(ev.maxSeconds-ev.minSeconds)
			records = append(records, model.Record{
				Event:    ev.label,
				Time:     g.formatTime(seconds),
				Category: categories[g.rng.Intn(len(categories))],
				Club:     clubs[g.rng.Intn(len(clubs))],
				Region:   regions[g.rng.Intn(len(regions))],
				Location: locations[g.rng.Intn(len(locations))],
				Date:     g.formatDate(),
			})
		}
		ds[name] = records
	}
	return ds
}

// formatTime writes seconds in the dataset's free-text conventions:
// plain seconds for sprints, M'S"C for middle distances, H h M ' S for
// long road races.
func (g *Generator) formatTime(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%.2f", seconds)
	case seconds < 3600:
		m := int(seconds) / 60
		s := int(seconds) % 60
		c := int(seconds*hundredthsPerSec) % hundredthsPerSec
		return fmt.Sprintf("%d'%02d\"%02d", m, s, c)
	default:
		h := int(seconds) / 3600
		rest := seconds - float64(h*3600)
		m := int(rest) / 60
		s := rest - float64(m*60)
		return fmt.Sprintf("%dh%02d'%05.2f", h, m, s)
	}
}

// formatDate writes a day-first date within the last few seasons.
func (g *Generator) formatDate() string {
	year := 2022 + g.rng.Intn(4)
	month := 1 + g.rng.Intn(12)
	day := 1 + g.rng.Intn(daysPerMonthLimit)
	return fmt.Sprintf("%02d/%02d/%d", day, month, year)
}
