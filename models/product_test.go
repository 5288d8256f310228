package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSizeEntryComputesDerivedFields(t *testing.T) {
	e := NewSizeEntry("42", 20, 3, 5)

	assert.Equal(t, 17, e.AvailableStock)
	assert.False(t, e.IsLowStock)
	assert.False(t, e.IsOutOfStock)
}

func TestNewSizeEntryLowStock(t *testing.T) {
	e := NewSizeEntry("38", 5, 0, 5)

	assert.True(t, e.IsLowStock)
	assert.False(t, e.IsOutOfStock)
}

func TestNewSizeEntryOutOfStock(t *testing.T) {
	e := NewSizeEntry("44", 0, 0, 5)

	assert.Equal(t, 0, e.AvailableStock)
	assert.True(t, e.IsOutOfStock)
	assert.True(t, e.IsLowStock)
}

func TestNewSizeEntryClampsReserved(t *testing.T) {
	e := NewSizeEntry("40", 2, 9, 5)

	assert.Equal(t, 2, e.ReservedStock)
	assert.Equal(t, 0, e.AvailableStock)
}
