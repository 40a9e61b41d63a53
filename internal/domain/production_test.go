package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProduction_Ranges(t *testing.T) {
	rng := NewRandom(11)
	for _, crop := range CropTypes {
		for _, season := range Seasons {
			for i := 0; i < 100; i++ {
				p, err := GenerateProduction(rng, crop, season)
				require.NoError(t, err)
				assert.Equal(t, crop, p.CropType)
				assert.GreaterOrEqual(t, p.CultivatedArea, 5.0)
				assert.LessOrEqual(t, p.CultivatedArea, 25.0)
				assert.GreaterOrEqual(t, p.ProductQuality, 4.0)
				assert.LessOrEqual(t, p.ProductQuality, 10.0)
				assert.Positive(t, p.HarvestQuantity)
			}
		}
	}
}

func TestGenerateProduction_SeasonModifier(t *testing.T) {
	tests := []struct {
		crop   CropType
		season Season
		want   float64
	}{
		{Cereals, Summer, 3600},
		{Cereals, Autumn, 3600},
		{Cereals, Winter, 2400},
		{Vegetables, Spring, 12000},
		{Fruits, Summer, 9600},
	}
	for _, tt := range tests {
		t.Run(tt.crop.String()+"/"+tt.season.String(), func(t *testing.T) {
			p, err := GenerateProduction(constant(0.5), tt.crop, tt.season)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, p.HarvestQuantity, 1e-6)
			assert.InDelta(t, 15.0, p.CultivatedArea, 1e-9)
			assert.InDelta(t, 7.0, p.ProductQuality, 1e-9)
		})
	}
}

func TestGenerateProduction_InvalidArguments(t *testing.T) {
	_, err := GenerateProduction(NewRandom(1), CropType(0), Summer)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = GenerateProduction(NewRandom(1), Fruits, Season(42))
	require.ErrorIs(t, err, ErrInvalidArgument)
}
