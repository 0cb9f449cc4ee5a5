package scorer

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试用分类器模拟器：返回预设比例或错误
type MockStructuralClassifier struct {
	Ratio float64
	Err   error
}

func (m *MockStructuralClassifier) ClassifyStructural(ctx context.Context, bullets []string) (float64, error) {
	return m.Ratio, m.Err
}

type MockDepthClassifier struct {
	Ratio float64
	Err   error
}

func (m *MockDepthClassifier) ClassifyDepth(ctx context.Context, bullets []string) (float64, error) {
	return m.Ratio, m.Err
}

type MockPatternClassifier struct {
	Ratio float64
	Err   error
}

func (m *MockPatternClassifier) ClassifyPattern(ctx context.Context, bullets []string, role string) (float64, error) {
	return m.Ratio, m.Err
}

func newMockAggregator(structural, depth, pattern float64) *Aggregator {
	return NewAggregator(
		&MockStructuralClassifier{Ratio: structural},
		&MockDepthClassifier{Ratio: depth},
		&MockPatternClassifier{Ratio: pattern},
	)
}

var testBullets = []string{"Built the ingestion service.", "Led the migration effort."}

// TestScoreEmptyBullets 要点列表为空时所有得分为精确的0
func TestScoreEmptyBullets(t *testing.T) {
	breakdown := newMockAggregator(0.9, 0.9, 0.9).Score(context.Background(), nil, "Backend Developer")

	assert.Zero(t, breakdown.Structural)
	assert.Zero(t, breakdown.Depth)
	assert.Zero(t, breakdown.Pattern)
	assert.Zero(t, breakdown.FinalScore)
	assert.Empty(t, breakdown.Degraded)
}

// TestScoreFinalInUnitInterval 综合得分始终落在 (0,1) 开区间内
func TestScoreFinalInUnitInterval(t *testing.T) {
	for _, ratios := range [][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}, {1, 1, 1}} {
		breakdown := newMockAggregator(ratios[0], ratios[1], ratios[2]).Score(context.Background(), testBullets, "")
		assert.Greater(t, breakdown.FinalScore, 0.0)
		assert.Less(t, breakdown.FinalScore, 1.0)
	}
}

// TestScoreMonotonicity 任一启发式得分提高时综合得分不降低
func TestScoreMonotonicity(t *testing.T) {
	ctx := context.Background()
	low := newMockAggregator(0.2, 0.2, 0.2).Score(ctx, testBullets, "")
	mid := newMockAggregator(0.6, 0.2, 0.2).Score(ctx, testBullets, "")
	high := newMockAggregator(0.6, 0.8, 0.9).Score(ctx, testBullets, "")

	assert.Greater(t, mid.FinalScore, low.FinalScore)
	assert.Greater(t, high.FinalScore, mid.FinalScore)
}

// TestScoreSaturation 饱和点以上的增量收益递减
func TestScoreSaturation(t *testing.T) {
	ctx := context.Background()
	// 结构得分从0.5到0.6（跨越饱和点）的增益
	gainBelow := newMockAggregator(0.6, 0.5, 0.5).Score(ctx, testBullets, "").FinalScore -
		newMockAggregator(0.5, 0.5, 0.5).Score(ctx, testBullets, "").FinalScore
	// 从0.9到1.0（饱和点以上）的增益
	gainAbove := newMockAggregator(1.0, 0.5, 0.5).Score(ctx, testBullets, "").FinalScore -
		newMockAggregator(0.9, 0.5, 0.5).Score(ctx, testBullets, "").FinalScore

	assert.Greater(t, gainBelow, gainAbove)
}

// TestScoreClassifierError 分类器报错时该启发式按0计并记入降级列表，不中断评分
func TestScoreClassifierError(t *testing.T) {
	aggregator := NewAggregator(
		&MockStructuralClassifier{Err: errors.New("model unavailable")},
		&MockDepthClassifier{Ratio: 0.8},
		&MockPatternClassifier{Ratio: 0.6},
	)
	breakdown := aggregator.Score(context.Background(), testBullets, "")

	assert.Zero(t, breakdown.Structural)
	assert.Equal(t, 0.8, breakdown.Depth)
	assert.Equal(t, []string{HeuristicStructural}, breakdown.Degraded)
	assert.Greater(t, breakdown.FinalScore, 0.0)
}

// TestScoreInvalidClassifierOutput NaN/Inf/越界输出按0计并降级
func TestScoreInvalidClassifierOutput(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
	}{
		{"NaN", math.NaN()},
		{"正无穷", math.Inf(1)},
		{"负值", -0.1},
		{"超过1", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregator := NewAggregator(
				&MockStructuralClassifier{Ratio: 0.5},
				&MockDepthClassifier{Ratio: tt.ratio},
				&MockPatternClassifier{Ratio: 0.5},
			)
			breakdown := aggregator.Score(context.Background(), testBullets, "")

			assert.Zero(t, breakdown.Depth)
			assert.Equal(t, []string{HeuristicDepth}, breakdown.Degraded)
			assert.False(t, math.IsNaN(breakdown.FinalScore))
		})
	}
}

// TestScoreWeightedCombination 综合得分等于各饱和值的加权和
func TestScoreWeightedCombination(t *testing.T) {
	params := DefaultParams()
	breakdown := newMockAggregator(0.5, 0.5, 0.5).Score(context.Background(), testBullets, "")

	expected := params.StructuralWeight/(1+math.Exp(-params.Structural.Steepness*(0.5-params.Structural.Midpoint))) +
		params.DepthWeight/(1+math.Exp(-params.Depth.Steepness*(0.5-params.Depth.Midpoint))) +
		params.PatternWeight/(1+math.Exp(-params.Pattern.Steepness*(0.5-params.Pattern.Midpoint)))
	require.InDelta(t, expected, breakdown.FinalScore, 1e-9)
}

// TestScoreCustomParams WithParams 覆盖默认权重
func TestScoreCustomParams(t *testing.T) {
	params := DefaultParams()
	params.StructuralWeight = 1.0
	params.DepthWeight = 0
	params.PatternWeight = 0

	aggregator := NewAggregator(
		&MockStructuralClassifier{Ratio: 1.0},
		&MockDepthClassifier{Ratio: 0},
		&MockPatternClassifier{Ratio: 0},
		WithParams(params),
	)
	breakdown := aggregator.Score(context.Background(), testBullets, "")

	// 仅结构项参与，逼近 σ(1.0)
	expected := 1 / (1 + math.Exp(-params.Structural.Steepness*(1.0-params.Structural.Midpoint)))
	assert.InDelta(t, expected, breakdown.FinalScore, 1e-9)
}
