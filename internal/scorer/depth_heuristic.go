package scorer

import (
	"context"
	"strings"

	"resume-iq-go/internal/vocab"
)

// LexiconDepthClassifier 深度启发式的默认实现
// 训练好的深度模型（句向量+分类器）在核心之外，这个替身按
// 技术词命中密度与篇幅近似"是否聚焦方法论"的判定
type LexiconDepthClassifier struct {
	vocab *vocab.Vocabulary

	// 深度判定阈值
	minWords    int // 最少词数
	minTechHits int // 最少技术词命中数
}

// NewLexiconDepthClassifier 创建深度启发式分类器
func NewLexiconDepthClassifier(v *vocab.Vocabulary) *LexiconDepthClassifier {
	return &LexiconDepthClassifier{vocab: v, minWords: 8, minTechHits: 2}
}

// ClassifyDepth 返回整批要点中有技术深度的比例
func (c *LexiconDepthClassifier) ClassifyDepth(ctx context.Context, bullets []string) (float64, error) {
	if len(bullets) == 0 {
		return 0, nil
	}
	count := 0
	for _, bullet := range bullets {
		if c.isDeep(bullet) {
			count++
		}
	}
	return float64(count) / float64(len(bullets)), nil
}

// isDeep 要点篇幅足够且技术词命中数达到阈值
// 单词技能按整词比较，多词技能按子串比较，避免 "r" 这类短词条误命中
func (c *LexiconDepthClassifier) isDeep(bullet string) bool {
	lowered := strings.ToLower(bullet)
	words := strings.Fields(lowered)
	if len(words) < c.minWords {
		return false
	}
	tokens := make(map[string]struct{}, len(words))
	for _, word := range words {
		tokens[strings.Trim(word, ".,;:!?()")] = struct{}{}
	}
	hits := 0
	for _, skill := range c.vocab.Skills() {
		var hit bool
		if strings.Contains(skill, " ") {
			hit = strings.Contains(lowered, skill)
		} else {
			_, hit = tokens[skill]
		}
		if hit {
			hits++
			if hits >= c.minTechHits {
				return true
			}
		}
	}
	return false
}
