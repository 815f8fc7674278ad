package job_query

import (
	"testing"

	"job_listing/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteria(t *testing.T) {
	t.Run("все фильтры", func(t *testing.T) {
		c, err := ParseCriteria(map[string]string{
			"query":       " ventas ",
			"jobType":     "full_time",
			"salaryRange": "1001-2000",
			"location":    "Ica",
			"experience":  "0-1",
			"date":        "WEEK",
		})
		require.NoError(t, err)
		assert.Equal(t, models.FilterCriteria{
			Query:       "ventas",
			JobType:     models.JobTypeFullTime,
			SalaryRange: models.Salary1001To2000,
			Location:    models.LocationIca,
			Experience:  models.Experience0To1,
			Date:        models.DatePostedWeek,
		}, c)
	})

	t.Run("синоним salary", func(t *testing.T) {
		c, err := ParseCriteria(map[string]string{"salary": "3001+"})
		require.NoError(t, err)
		assert.Equal(t, models.Salary3001Plus, c.SalaryRange)
	})

	t.Run("основной ключ важнее синонима", func(t *testing.T) {
		params := map[string]string{"salary": "0-1000", "salaryRange": "3001+"}
		for i := 0; i < 100; i++ {
			c, err := ParseCriteria(params)
			require.NoError(t, err)
			require.Equal(t, models.Salary3001Plus, c.SalaryRange)
		}

		c, err := ParseCriteria(map[string]string{"salary": "0-1000", "salaryRange": " "})
		require.NoError(t, err)
		assert.Equal(t, models.Salary0To1000, c.SalaryRange)
	})

	t.Run("неизвестные ключи и пустые значения игнорируются", func(t *testing.T) {
		c, err := ParseCriteria(map[string]string{"color": "red", "jobType": "  "})
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("недопустимое значение", func(t *testing.T) {
		_, err := ParseCriteria(map[string]string{"experience": "10-20"})
		require.ErrorIs(t, err, ErrInvalidCriteria)

		var ce *CriteriaError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, models.FilterKeyExperience, ce.Key)
		assert.Equal(t, "10-20", ce.Value)
	})

	t.Run("неизвестная локация", func(t *testing.T) {
		_, err := ParseCriteria(map[string]string{"location": "Lima"})
		assert.ErrorIs(t, err, ErrInvalidCriteria)
	})
}

func TestCanonicalKey(t *testing.T) {
	a := models.FilterCriteria{Query: "Ventas ", Location: "ica"}
	b := models.FilterCriteria{Query: "ventas", Location: models.LocationIca}
	assert.Equal(t, CanonicalKey(a), CanonicalKey(b))

	c := models.FilterCriteria{Query: "ventas", Location: models.LocationPisco}
	assert.NotEqual(t, CanonicalKey(a), CanonicalKey(c))
}
