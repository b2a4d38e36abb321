package taxonomy

import "gonum.org/v1/gonum/floats"

// 启发式阈值，区间下界均为闭区间
const (
	// ImpactHighThreshold max(p) 达到该值为 high
	ImpactHighThreshold = 0.70
	// ImpactMediumThreshold max(p) 达到该值为 medium，否则为 low
	ImpactMediumThreshold = 0.40

	// NegativeDominanceThreshold p_neg 达到该值且领先 p_pos 足够多时进入信用/监管/流动性风险分支
	NegativeDominanceThreshold = 0.65
	// NegativeMarginThreshold p_neg - p_pos 的最小领先幅度
	NegativeMarginThreshold = 0.20
	// DefaultRiskThreshold 负面主导且 p_neg 达到该值为 default_risk
	DefaultRiskThreshold = 0.80
	// RegulatoryRiskThreshold 负面主导且 p_neg 达到该值为 regulatory_risk，否则为 liquidity_risk
	RegulatoryRiskThreshold = 0.75

	// OperationalNeutralThreshold 中性方向下 p_neu 的下限
	OperationalNeutralThreshold = 0.50
	// OperationalNegativeThreshold 中性方向下 p_neg 的下限
	OperationalNegativeThreshold = 0.40
)

// sentiment 是情绪分布 [Positive, Negative, Neutral] 加上已推断的市场方向
type sentiment struct {
	pos, neg, neu float64
	direction     MarketDirection
}

func newSentiment(p []float64) sentiment {
	return sentiment{
		pos:       p[PosPositive],
		neg:       p[PosNegative],
		neu:       p[PosNeutral],
		direction: marketDirection(p),
	}
}

func (s sentiment) negativeDominant() bool {
	return s.neg >= NegativeDominanceThreshold && s.neg-s.pos >= NegativeMarginThreshold
}

type riskRule struct {
	name   string
	match  func(s sentiment) bool
	signal RiskSignal
}

// riskRules 按优先级排列，先命中者生效；都不命中为 NoRisk
var riskRules = [...]riskRule{
	{
		name:   "negative dominant, severe",
		match:  func(s sentiment) bool { return s.negativeDominant() && s.neg >= DefaultRiskThreshold },
		signal: DefaultRisk,
	},
	{
		name:   "negative dominant, elevated",
		match:  func(s sentiment) bool { return s.negativeDominant() && s.neg >= RegulatoryRiskThreshold },
		signal: RegulatoryRisk,
	},
	{
		name:   "negative dominant",
		match:  sentiment.negativeDominant,
		signal: LiquidityRisk,
	},
	{
		name: "neutral with negative undertone",
		match: func(s sentiment) bool {
			return s.direction == DirectionNeutral &&
				s.neu >= OperationalNeutralThreshold &&
				s.neg >= OperationalNegativeThreshold
		},
		signal: OperationalRisk,
	},
}

// marketDirection 取 p 的 argmax，平局时按 bullish, bearish, neutral 顺序先到先得
func marketDirection(p []float64) MarketDirection {
	return marketDirections[floats.MaxIdx(p)]
}

func impactStrength(p []float64) ImpactStrength {
	top := floats.Max(p)
	switch {
	case top >= ImpactHighThreshold:
		return ImpactHigh
	case top >= ImpactMediumThreshold:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

func riskSignal(s sentiment) RiskSignal {
	for _, r := range riskRules {
		if r.match(s) {
			return r.signal
		}
	}
	return NoRisk
}

// eventType 取 q 的 argmax，平局时按固定的事件类型顺序先到先得
func eventType(q []float64) EventType {
	return eventTypes[floats.MaxIdx(q)]
}
