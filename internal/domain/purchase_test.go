package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSet_Fingerprint(t *testing.T) {
	first := sampleRecord()
	second := sampleRecord()
	second.Seller = "Maria"

	assert.Equal(t, RecordSet{first, second}.Fingerprint(), RecordSet{first, second}.Fingerprint())
	assert.NotEqual(t, RecordSet{first, second}.Fingerprint(), RecordSet{second, first}.Fingerprint())
	assert.NotEqual(t, RecordSet{first}.Fingerprint(), RecordSet{first, second}.Fingerprint())
	assert.Equal(t, RecordSet{}.Fingerprint(), RecordSet(nil).Fingerprint())
}

func TestRecordSet_PurchaseDateRange(t *testing.T) {
	minDate, maxDate := RecordSet{}.PurchaseDateRange()
	assert.Nil(t, minDate)
	assert.Nil(t, maxDate)

	early, middle, late := sampleRecord(), sampleRecord(), sampleRecord()
	early.PurchaseDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	middle.PurchaseDate = time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)
	late.PurchaseDate = time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)

	minDate, maxDate = RecordSet{middle, late, early}.PurchaseDateRange()
	require.NotNil(t, minDate)
	require.NotNil(t, maxDate)
	assert.Equal(t, early.PurchaseDate, *minDate)
	assert.Equal(t, late.PurchaseDate, *maxDate)
}
