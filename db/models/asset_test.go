package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPureMetalWeight(t *testing.T) {
	asset := &Asset{WeightInGrams: 1000000, PurityInThousandths: 999}
	assert.Equal(t, int64(999000), asset.PureMetalWeight())

	asset = &Asset{WeightInGrams: 100, PurityInThousandths: 1000}
	assert.Equal(t, int64(100), asset.PureMetalWeight())

	// floors, never rounds up
	asset = &Asset{WeightInGrams: 1, PurityInThousandths: 999}
	assert.Equal(t, int64(0), asset.PureMetalWeight())

	asset = &Asset{WeightInGrams: 31103, PurityInThousandths: 916} // a 1000oz bar of crown gold
	assert.Equal(t, int64(28490), asset.PureMetalWeight())
}
