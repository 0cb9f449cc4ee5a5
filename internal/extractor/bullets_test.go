package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-iq-go/internal/vocab"
)

func newMerger() *BulletMerger {
	return NewBulletMerger(vocab.NewDefault(), 0)
}

// TestMergeMarkerLedAbsorption 标记开启的要点吸收后续全部非标记行直到下一个标记
func TestMergeMarkerLedAbsorption(t *testing.T) {
	lines := []string{
		"• Built a data pipeline that",
		"processes two million events daily.",
		"• Led the platform migration to Kubernetes.",
	}
	merged := newMerger().Merge(lines)

	assert.Equal(t, []string{
		"Built a data pipeline that processes two million events daily.",
		"Led the platform migration to Kubernetes.",
	}, merged)
}

// TestMergeContinuationCues 无标记时按续写判据合并：悬挂连接词、逗号结尾、小写开头
func TestMergeContinuationCues(t *testing.T) {
	merger := newMerger()

	// 行尾悬挂连接词 → 续写
	merged := merger.Merge([]string{
		"Implemented caching layer with",
		"Redis reducing p99 latency by forty percent.",
	})
	assert.Equal(t, []string{
		"Implemented caching layer with Redis reducing p99 latency by forty percent.",
	}, merged)

	// 行尾逗号 → 续写
	merged = merger.Merge([]string{
		"Designed the review workflow,",
		"Covering both staging and production checks.",
	})
	assert.Equal(t, []string{
		"Designed the review workflow, Covering both staging and production checks.",
	}, merged)

	// 完整句子 + 大写开头 → 各自独立
	merged = merger.Merge([]string{
		"Delivered the billing project on schedule.",
		"Managed rollout for all customer regions.",
	})
	assert.Len(t, merged, 2)

	// 无句末标点但大写开头且无悬挂结尾 → 各自独立（合并产物常常没有句号）
	merged = merger.Merge([]string{
		"Built internal tooling",
		"Led migration effort across three teams",
	})
	assert.Len(t, merged, 2)

	// 完整句子但下一行小写开头 → 仍视为续写
	merged = merger.Merge([]string{
		"Improved observability across services.",
		"which cut incident response time in half",
	})
	assert.Equal(t, []string{
		"Improved observability across services. which cut incident response time in half",
	}, merged)
}

// TestMergeIdempotent 对合并结果再次合并不改变输出
func TestMergeIdempotent(t *testing.T) {
	merger := newMerger()
	lines := []string{
		"• Built a data pipeline that",
		"processes two million events daily.",
		"• Led the platform migration effort across teams.",
		"• Reduced infra cost by thirty percent year over year.",
	}
	once := merger.Merge(lines)
	twice := merger.Merge(once)

	assert.Equal(t, once, twice)
}

// TestMergeIdempotentWithoutTerminalPunctuation 无句号的合并产物再次合并也不粘连
func TestMergeIdempotentWithoutTerminalPunctuation(t *testing.T) {
	merger := newMerger()
	lines := []string{
		"• Built internal tooling",
		"• Led migration effort across three teams",
	}
	once := merger.Merge(lines)
	require.Len(t, once, 2)

	twice := merger.Merge(once)
	assert.Equal(t, once, twice)
}

// TestMergeNoiseFilter 低于词数阈值且无强动作动词的要点被丢弃
func TestMergeNoiseFilter(t *testing.T) {
	merger := newMerger()

	// 两个词、无动词 → 噪声
	assert.Empty(t, merger.Merge([]string{"• References available"}))

	// 低于阈值但含强动作动词 → 保留
	assert.Equal(t, []string{"Built internal tooling"}, merger.Merge([]string{"• Built internal tooling"}))

	// 达到词数阈值 → 保留
	assert.Equal(t,
		[]string{"Ownership of quarterly planning process documents"},
		merger.Merge([]string{"• Ownership of quarterly planning process documents"}))
}

// TestMergeStripsMarkers 输出的逻辑要点不携带任何行首标记
func TestMergeStripsMarkers(t *testing.T) {
	merged := newMerger().Merge([]string{
		"- Developed the reporting module for finance.",
		"2. Automated the release checklist with scripts.",
	})
	assert.Equal(t, []string{
		"Developed the reporting module for finance.",
		"Automated the release checklist with scripts.",
	}, merged)
}

// TestMergeEmptyInput 空输入与纯空白行输入
func TestMergeEmptyInput(t *testing.T) {
	merger := newMerger()
	assert.Empty(t, merger.Merge(nil))
	assert.Empty(t, merger.Merge([]string{"", "   "}))
}
