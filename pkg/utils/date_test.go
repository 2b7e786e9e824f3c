package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2023-05-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("10/05/2023")
	assert.Error(t, err)
}

func TestParsePurchaseDate(t *testing.T) {
	date, err := ParsePurchaseDate("25/12/2021")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, 12, 25, 0, 0, 0, 0, time.UTC), date)

	_, err = ParsePurchaseDate("2021-12-25")
	assert.Error(t, err)

	_, err = ParsePurchaseDate("31/02/2021")
	assert.Error(t, err)
}

func TestMonthEnd(t *testing.T) {
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), MonthEnd(time.Date(2024, 2, 10, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC), MonthEnd(time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateOnly(t *testing.T) {
	local := time.FixedZone("BRT", -3*60*60)
	assert.Equal(t, time.Date(2022, 7, 30, 0, 0, 0, 0, time.UTC), DateOnly(time.Date(2022, 7, 30, 23, 59, 0, 0, local)))
}
