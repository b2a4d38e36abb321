// Package taxonomy 将 FinBERT 三分类情绪 logits 映射到固定的财经分类体系：
// 市场方向、事件类型、影响强度、风险信号，以及事件类型的 Top-k 置信度。
//
// 包内所有标签表与权重矩阵都是进程级只读常量，映射过程是纯函数，可并发调用。
package taxonomy

// 情绪向量的固定位置 [Positive, Negative, Neutral]
const (
	PosPositive = iota
	PosNegative
	PosNeutral

	// SentimentDims 情绪向量长度
	SentimentDims
)

// EventTypeDims 事件类型数量
const EventTypeDims = 6

// MarketDirection 市场方向
type MarketDirection string

const (
	DirectionBullish MarketDirection = "bullish"
	DirectionBearish MarketDirection = "bearish"
	DirectionNeutral MarketDirection = "neutral"
)

// EventType 事件类型
type EventType string

const (
	MacroPolicy      EventType = "macro_policy"
	IndustryTrend    EventType = "industry_trend"
	CompanyAction    EventType = "company_action"
	FinancialReport  EventType = "financial_report"
	MarketVolatility EventType = "market_volatility"
	RiskWarning      EventType = "risk_warning"
)

// ImpactStrength 影响强度
type ImpactStrength string

const (
	ImpactHigh   ImpactStrength = "high"
	ImpactMedium ImpactStrength = "medium"
	ImpactLow    ImpactStrength = "low"
)

// RiskSignal 风险信号
type RiskSignal string

const (
	DefaultRisk     RiskSignal = "default_risk"
	RegulatoryRisk  RiskSignal = "regulatory_risk"
	LiquidityRisk   RiskSignal = "liquidity_risk"
	OperationalRisk RiskSignal = "operational_risk"
	NoRisk          RiskSignal = "none"
)

// 顺序与情绪向量位置一一对应
var marketDirections = [SentimentDims]MarketDirection{DirectionBullish, DirectionBearish, DirectionNeutral}

// 顺序与权重矩阵的列一一对应
var eventTypes = [EventTypeDims]EventType{
	MacroPolicy,
	IndustryTrend,
	CompanyAction,
	FinancialReport,
	MarketVolatility,
	RiskWarning,
}

var impactStrengths = [...]ImpactStrength{ImpactHigh, ImpactMedium, ImpactLow}

var riskSignals = [...]RiskSignal{DefaultRisk, RegulatoryRisk, LiquidityRisk, OperationalRisk, NoRisk}

// MarketDirections 返回按情绪向量位置排列的市场方向标签（副本）
func MarketDirections() [SentimentDims]MarketDirection { return marketDirections }

// EventTypes 返回固定顺序的事件类型标签（副本）
func EventTypes() [EventTypeDims]EventType { return eventTypes }

// ImpactStrengths 返回全部影响强度标签
func ImpactStrengths() []ImpactStrength { return append([]ImpactStrength(nil), impactStrengths[:]...) }

// RiskSignals 返回全部风险信号标签
func RiskSignals() []RiskSignal { return append([]RiskSignal(nil), riskSignals[:]...) }

// Valid 判断是否为合法的市场方向
func (d MarketDirection) Valid() bool {
	for _, v := range marketDirections {
		if v == d {
			return true
		}
	}
	return false
}

// Valid 判断是否为合法的事件类型
func (e EventType) Valid() bool {
	for _, v := range eventTypes {
		if v == e {
			return true
		}
	}
	return false
}

func (s ImpactStrength) Valid() bool {
	for _, v := range impactStrengths {
		if v == s {
			return true
		}
	}
	return false
}

func (r RiskSignal) Valid() bool {
	for _, v := range riskSignals {
		if v == r {
			return true
		}
	}
	return false
}
