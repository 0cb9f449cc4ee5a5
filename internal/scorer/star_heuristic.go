package scorer

import (
	"context"
	"regexp"
	"strings"

	"resume-iq-go/internal/vocab"
)

// resultCuePattern 结果线索：数字、百分比或结果导向动词
var resultCuePattern = regexp.MustCompile(`(?i)\d|%|\b(increas|reduc|improv|achiev|sav|grew|boost|cut|deliver|result)\w*\b`)

// KeywordSTARClassifier 结构启发式的默认实现
// 训练好的STAR分类模型在核心之外，这个确定性替身用
// 动作动词开头 + 可量化结果线索 近似STAR叙事判定，供无模型部署和测试使用
type KeywordSTARClassifier struct {
	vocab *vocab.Vocabulary
}

// NewKeywordSTARClassifier 创建结构启发式分类器
func NewKeywordSTARClassifier(v *vocab.Vocabulary) *KeywordSTARClassifier {
	return &KeywordSTARClassifier{vocab: v}
}

// ClassifyStructural 返回整批要点中STAR形态达标的比例
func (c *KeywordSTARClassifier) ClassifyStructural(ctx context.Context, bullets []string) (float64, error) {
	if len(bullets) == 0 {
		return 0, nil
	}
	count := 0
	for _, bullet := range bullets {
		if c.looksLikeSTAR(bullet) {
			count++
		}
	}
	return float64(count) / float64(len(bullets)), nil
}

// looksLikeSTAR 要点以强动作动词开头且含结果线索
func (c *KeywordSTARClassifier) looksLikeSTAR(bullet string) bool {
	words := strings.Fields(bullet)
	if len(words) == 0 {
		return false
	}
	first := strings.Trim(strings.ToLower(words[0]), ".,;:!?")
	if !c.vocab.IsStrongActionVerb(first) {
		return false
	}
	return resultCuePattern.MatchString(bullet)
}
