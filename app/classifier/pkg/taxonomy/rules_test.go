package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarketDirection_FirstMaxWins(t *testing.T) {
	assert.Equal(t, DirectionBullish, marketDirection([]float64{0.4, 0.4, 0.2}))
	assert.Equal(t, DirectionBearish, marketDirection([]float64{0.2, 0.4, 0.4}))
	assert.Equal(t, DirectionBullish, marketDirection([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3}))
	assert.Equal(t, DirectionNeutral, marketDirection([]float64{0.1, 0.2, 0.7}))
}

func TestImpactStrength_Boundaries(t *testing.T) {
	tests := []struct {
		p    []float64
		want ImpactStrength
	}{
		{[]float64{0.70, 0.20, 0.10}, ImpactHigh},
		{[]float64{0.6999, 0.2001, 0.10}, ImpactMedium},
		{[]float64{0.40, 0.35, 0.25}, ImpactMedium},
		{[]float64{0.3999, 0.3001, 0.30}, ImpactLow},
		{[]float64{0.05, 0.05, 0.90}, ImpactHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, impactStrength(tt.p), "p=%v", tt.p)
	}
}

func TestRiskSignal_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		p    []float64
		want RiskSignal
	}{
		{"neg exactly 0.65 triggers", []float64{0.30, 0.65, 0.05}, LiquidityRisk},
		{"neg 0.6499 does not", []float64{0.30, 0.6499, 0.0501}, NoRisk},
		{"neg 0.75 regulatory", []float64{0.20, 0.75, 0.05}, RegulatoryRisk},
		{"neg 0.7499 liquidity", []float64{0.20, 0.7499, 0.0501}, LiquidityRisk},
		{"neg 0.80 default", []float64{0.10, 0.80, 0.10}, DefaultRisk},
		{"neg 0.7999 regulatory", []float64{0.10, 0.7999, 0.1001}, RegulatoryRisk},
		{"margin exactly 0.20 triggers", []float64{0.45, 0.65, 0}, LiquidityRisk},
		{"margin below 0.20 blocks", []float64{0.46, 0.65, 0}, NoRisk},
		{"operational at bounds", []float64{0.10, 0.40, 0.50}, OperationalRisk},
		{"operational neg below bound", []float64{0.1001, 0.3999, 0.50}, NoRisk},
		{"operational neu below bound", []float64{0.0501, 0.45, 0.4999}, NoRisk},
		{"positive dominant", []float64{0.80, 0.10, 0.10}, NoRisk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, riskSignal(newSentiment(tt.p)))
		})
	}
}

func TestRiskSignal_OperationalNeedsNeutralDirection(t *testing.T) {
	// p_neu 与 p_neg 都满足阈值，但方向由 argmax 决定为 bearish
	s := sentiment{pos: 0, neg: 0.5, neu: 0.5, direction: DirectionBearish}
	assert.Equal(t, NoRisk, riskSignal(s))

	s.direction = DirectionNeutral
	assert.Equal(t, OperationalRisk, riskSignal(s))
}

func TestRiskRules_PriorityOrder(t *testing.T) {
	want := []RiskSignal{DefaultRisk, RegulatoryRisk, LiquidityRisk, OperationalRisk}
	got := make([]RiskSignal, 0, len(riskRules))
	for _, r := range riskRules {
		got = append(got, r.signal)
	}
	assert.Equal(t, want, got)

	// 严重负面同时满足三条规则，只取第一条
	s := newSentiment([]float64{0.05, 0.90, 0.05})
	matched := 0
	for _, r := range riskRules[:3] {
		if r.match(s) {
			matched++
		}
	}
	assert.Equal(t, 3, matched)
	assert.Equal(t, DefaultRisk, riskSignal(s))
}

func TestEventType_FirstMaxWins(t *testing.T) {
	assert.Equal(t, MacroPolicy, eventType([]float64{0.2, 0.2, 0.15, 0.15, 0.15, 0.15}))
	assert.Equal(t, MarketVolatility, eventType([]float64{0.1, 0.1, 0.1, 0.1, 0.3, 0.3}))
	assert.Equal(t, RiskWarning, eventType([]float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.5}))
}
