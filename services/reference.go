package services

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"covertrip/models"

	"github.com/robfig/cron/v3"
)

// ReferenceData holds the country and region lookup lists. Loaded from
// static JSON at startup and refreshed nightly; read-only for the
// duration of a wizard session.
type ReferenceData struct {
	mu           sync.RWMutex
	countriesSrc string
	regionsSrc   string
	countries    []models.Country
	regions      []models.Region
}

// NewReferenceData loads the lookup files immediately. Missing files log
// a warning and leave empty lists, they do not stop the server.
func NewReferenceData(countriesPath, regionsPath string) *ReferenceData {
	rd := &ReferenceData{countriesSrc: countriesPath, regionsSrc: regionsPath}
	rd.Reload()
	return rd
}

// Reload re-reads both files. Bad or missing data keeps the previous
// lists untouched.
func (rd *ReferenceData) Reload() {
	if countries, ok := loadJSONFile[models.Country](rd.countriesSrc); ok {
		rd.mu.Lock()
		rd.countries = countries
		rd.mu.Unlock()
		log.Printf("Loaded %d countries from %s", len(countries), rd.countriesSrc)
	}
	if regions, ok := loadJSONFile[models.Region](rd.regionsSrc); ok {
		rd.mu.Lock()
		rd.regions = regions
		rd.mu.Unlock()
		log.Printf("Loaded %d regions from %s", len(regions), rd.regionsSrc)
	}
}

func loadJSONFile[T any](path string) ([]T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: could not load %s: %v", path, err)
		return nil, false
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Warning: could not parse %s: %v", path, err)
		return nil, false
	}
	return items, true
}

// Countries returns the country lookup list.
func (rd *ReferenceData) Countries() []models.Country {
	rd.mu.RLock()
	defer rd.mu.RUnlock()
	return rd.countries
}

// Regions returns the region lookup list.
func (rd *ReferenceData) Regions() []models.Region {
	rd.mu.RLock()
	defer rd.mu.RUnlock()
	return rd.regions
}

// CountryByID finds a country by id.
func (rd *ReferenceData) CountryByID(id int) (models.Country, bool) {
	rd.mu.RLock()
	defer rd.mu.RUnlock()
	for _, c := range rd.countries {
		if c.ID == id {
			return c, true
		}
	}
	return models.Country{}, false
}

// StartReferenceCron refreshes the lookup lists every night at 03:00.
func StartReferenceCron(rd *ReferenceData) {
	c := cron.New()
	c.AddFunc("0 3 * * *", func() {
		log.Println("Refreshing reference data...")
		rd.Reload()
	})
	c.Start()
}
