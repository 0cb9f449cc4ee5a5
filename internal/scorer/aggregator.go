package scorer

import (
	"context"
	"math"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"resume-iq-go/internal/constants"
	"resume-iq-go/internal/tracing"
	"resume-iq-go/internal/types"
)

// 定义tracer
var tracer = otel.Tracer("scorer")

// 综合得分中各启发式的名称，降级时写入 ScoreBreakdown.Degraded
const (
	HeuristicStructural = "structural"
	HeuristicDepth      = "depth"
	HeuristicPattern    = "pattern"
)

// Saturation 单个启发式的逻辑饱和参数
type Saturation struct {
	Midpoint  float64 // 饱和点 x0
	Steepness float64 // 陡峭度 k
}

// Params 聚合器全部调优参数
// 饱和点与权重是产品决策而非不变式，保留为可配置常量
type Params struct {
	Structural       Saturation // 结构启发式饱和参数
	Depth            Saturation // 深度启发式饱和参数
	Pattern          Saturation // 岗位匹配启发式饱和参数
	StructuralWeight float64    // 结构权重
	DepthWeight      float64    // 深度权重
	PatternWeight    float64    // 岗位匹配权重
}

// DefaultParams 返回默认调优参数
func DefaultParams() Params {
	return Params{
		Structural:       Saturation{Midpoint: constants.StructuralSaturationMidpoint, Steepness: constants.StructuralSaturationSteepness},
		Depth:            Saturation{Midpoint: constants.DepthSaturationMidpoint, Steepness: constants.DepthSaturationSteepness},
		Pattern:          Saturation{Midpoint: constants.PatternSaturationMidpoint, Steepness: constants.PatternSaturationSteepness},
		StructuralWeight: constants.StructuralWeight,
		DepthWeight:      constants.DepthWeight,
		PatternWeight:    constants.PatternWeight,
	}
}

// Aggregator 把三个独立启发式得分合成为一个归一化质量得分
// 每个输入先经过各自的逻辑饱和，再按固定凸组合加权：
// 任何单一启发式在饱和点以上收益递减，无法独自把综合得分推近1.0，
// 而很低的启发式得分会强烈压低综合得分
type Aggregator struct {
	structural StructuralClassifier
	depth      DepthClassifier
	pattern    PatternClassifier
	params     Params
	logger     *zerolog.Logger
}

// AggregatorOption 聚合器的配置选项
type AggregatorOption func(*Aggregator)

// WithParams 覆盖默认调优参数
func WithParams(params Params) AggregatorOption {
	return func(a *Aggregator) {
		a.params = params
	}
}

// WithAggregatorLogger 设置日志记录器
func WithAggregatorLogger(logger *zerolog.Logger) AggregatorOption {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// NewAggregator 创建得分聚合器，三个分类器均以能力形式注入
func NewAggregator(structural StructuralClassifier, depth DepthClassifier, pattern PatternClassifier, opts ...AggregatorOption) *Aggregator {
	nop := zerolog.Nop()
	a := &Aggregator{
		structural: structural,
		depth:      depth,
		pattern:    pattern,
		params:     DefaultParams(),
		logger:     &nop,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Score 计算整批要点的得分明细
// 要点列表为空时全部得分定义为精确的0（不是NaN）
// 分类器失败按该启发式得分为0降级处理并记入 Degraded，绝不中断整份报告
func (a *Aggregator) Score(ctx context.Context, bullets []string, role string) types.ScoreBreakdown {
	breakdown := types.ScoreBreakdown{}
	if len(bullets) == 0 {
		return breakdown
	}

	ctx, span := tracer.Start(ctx, "scorer.Aggregate")
	defer span.End()
	span.SetAttributes(
		attribute.Int("score.bullet_count", len(bullets)),
		attribute.String("score.target_role", role),
	)

	structural, err := a.structural.ClassifyStructural(ctx, bullets)
	breakdown.Structural = a.admit(span, HeuristicStructural, structural, err, &breakdown)

	depth, err := a.depth.ClassifyDepth(ctx, bullets)
	breakdown.Depth = a.admit(span, HeuristicDepth, depth, err, &breakdown)

	pattern, err := a.pattern.ClassifyPattern(ctx, bullets, role)
	breakdown.Pattern = a.admit(span, HeuristicPattern, pattern, err, &breakdown)

	breakdown.FinalScore = a.params.StructuralWeight*logistic(breakdown.Structural, a.params.Structural) +
		a.params.DepthWeight*logistic(breakdown.Depth, a.params.Depth) +
		a.params.PatternWeight*logistic(breakdown.Pattern, a.params.Pattern)

	span.SetAttributes(attribute.Float64("score.final", breakdown.FinalScore))
	return breakdown
}

// admit 校验单个分类器的输出
// 出错或输出非法（NaN/Inf/越界）时按0计并标记降级
func (a *Aggregator) admit(span trace.Span, name string, ratio float64, err error, breakdown *types.ScoreBreakdown) float64 {
	if err != nil {
		tracing.RecordErrorWithInfo(span, err, tracing.ErrorTypeClassifier, attribute.String("heuristic", name))
		a.logger.Warn().Err(err).Str("heuristic", name).Msg("分类器调用失败，该启发式按0计")
		breakdown.Degraded = append(breakdown.Degraded, name)
		return 0
	}
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio < 0 || ratio > 1 {
		a.logger.Warn().Float64("ratio", ratio).Str("heuristic", name).Msg("分类器输出越界，该启发式按0计")
		breakdown.Degraded = append(breakdown.Degraded, name)
		return 0
	}
	return ratio
}

// logistic 逻辑饱和变换 σ(x) = 1 / (1 + e^(−k·(x − x0)))
func logistic(x float64, s Saturation) float64 {
	return 1 / (1 + math.Exp(-s.Steepness*(x-s.Midpoint)))
}
