package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateKPIs_Efficiency(t *testing.T) {
	k := CalculateKPIs(constant(0), 3600, 12, 20)
	assert.Equal(t, 300.0, k.ProductivityEfficiency)

	k = CalculateKPIs(constant(0), 1000, 3, 20)
	assert.Equal(t, 333.0, k.ProductivityEfficiency)
}

func TestCalculateKPIs_HeatPenalty(t *testing.T) {
	tests := []struct {
		name        string
		temperature float64
		want        float64
	}{
		{"mild", 22, 8.0},
		{"threshold is not penalized", 30, 8.0},
		{"hot", 30.5, 6.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := CalculateKPIs(constant(0), 1000, 10, tt.temperature)
			assert.Equal(t, tt.want, k.Sustainability)
		})
	}
}

func TestCalculateKPIs_SustainabilityBounds(t *testing.T) {
	rng := NewRandom(21)
	for i := 0; i < 1000; i++ {
		temp := rng.Uniform(0, 40)
		k := CalculateKPIs(rng, 5000, 10, temp)
		assert.GreaterOrEqual(t, k.Sustainability, 1.0)
		assert.LessOrEqual(t, k.Sustainability, 10.0)
		assert.Equal(t, round1(k.Sustainability), k.Sustainability)
	}
}
