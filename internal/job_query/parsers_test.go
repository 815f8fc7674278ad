package job_query

import (
	"testing"

	"job_listing/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func TestParseSalaryAmount(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"S/ 1.025,00 · Mensual", 1025, true},
		{"S/ 1.025,50", 1025.5, true},
		{"S/. 2500", 2500, true},
		{"S/2.000", 2000, true},
		{"930", 930, true},
		{"1.250.000,9", 1250000.9, true},
		{"  S/ 3.500,00 · Mensual  ", 3500, true},
		{"A tratar", 0, false},
		{"", 0, false},
		{"S/ 1500.50", 0, false},
		{"S/ 1,025.00", 0, false},
		{"USD 1000", 0, false},
		{"S/ 12.34", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseSalaryAmount(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}

func TestParseExperienceYears(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"1 año", 1, true},
		{"3-5 años", 3, true},
		{"Mínimo 2 años", 2, true},
		{"Sin experiencia", 0, true},
		{"No requiere experiencia", 0, true},
		{"6+ años", 6, true},
		{"", 0, false},
		{"Deseable", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseExperienceYears(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeLocationCode(t *testing.T) {
	assert.Equal(t, models.LocationIca, NormalizeLocationCode(" Ica "))
	assert.Equal(t, models.LocationIca, NormalizeLocationCode("Ícá"))
	assert.Equal(t, models.LocationChincha, NormalizeLocationCode("chincha"))
	assert.Equal(t, "Peru", StripAccents("Perú"))
}

func TestRecordLocationCode(t *testing.T) {
	job := models.JobRecord{Company: models.Company{Location: "Subtanjalla, Ica"}}
	assert.Equal(t, models.LocationIca, RecordLocationCode(job))

	job.LocationCode = "pisco"
	assert.Equal(t, models.LocationPisco, RecordLocationCode(job))

	noComma := models.JobRecord{Company: models.Company{Location: "Chincha"}}
	assert.Equal(t, models.LocationChincha, RecordLocationCode(noComma))
}

func TestBandContains(t *testing.T) {
	low := salaryBands[models.Salary0To1000]
	assert.True(t, low.contains(0))
	assert.True(t, low.contains(1000))
	assert.True(t, low.contains(1000.5))
	assert.False(t, low.contains(1001))

	top := salaryBands[models.Salary3001Plus]
	assert.False(t, top.contains(3000.99))
	assert.True(t, top.contains(3001))
	assert.True(t, top.contains(1e9))
}

// границы опыта входят в оба соседних диапазона: "1 año" и в "0-1", и в "1-3"
func TestExperienceBandsShareBoundaries(t *testing.T) {
	for _, tt := range []struct {
		years int
		in    []models.ExperienceRange
	}{
		{0, []models.ExperienceRange{models.Experience0To1}},
		{1, []models.ExperienceRange{models.Experience0To1, models.Experience1To3}},
		{2, []models.ExperienceRange{models.Experience1To3}},
		{3, []models.ExperienceRange{models.Experience1To3, models.Experience3To5}},
		{5, []models.ExperienceRange{models.Experience3To5, models.Experience5Plus}},
		{12, []models.ExperienceRange{models.Experience5Plus}},
	} {
		var got []models.ExperienceRange
		for _, r := range models.ExperienceRanges {
			if experienceBands[r].contains(float64(tt.years)) {
				got = append(got, r)
			}
		}
		assert.Equal(t, tt.in, got, "%d years", tt.years)
	}
}
