package scorer

import (
	"context"
	"math"
	"regexp"
	"strings"

	"resume-iq-go/internal/constants"
	"resume-iq-go/internal/vocab"
)

// punctuationPattern 预处理时去掉的非单词字符
var punctuationPattern = regexp.MustCompile(`[^\w\s]`)

// RolePatternClassifier 岗位关键词匹配分类器
// 按目标岗位的必备/推荐关键词在要点中的覆盖比例打分，
// 必备与推荐按固定权重（0.7/0.3）加权，未知岗位得到空关键词列表而不是错误
type RolePatternClassifier struct{}

// NewRolePatternClassifier 创建岗位匹配分类器
func NewRolePatternClassifier() *RolePatternClassifier {
	return &RolePatternClassifier{}
}

// ClassifyPattern 返回整批要点的平均岗位匹配得分
func (c *RolePatternClassifier) ClassifyPattern(ctx context.Context, bullets []string, role string) (float64, error) {
	if len(bullets) == 0 {
		return 0, nil
	}
	required, recommended := vocab.KeywordsForRole(role)
	if len(required) == 0 && len(recommended) == 0 {
		return 0, nil
	}

	var total float64
	for _, bullet := range bullets {
		total += evaluatePattern(bullet, required, recommended)
	}
	return total / float64(len(bullets)), nil
}

// evaluatePattern 计算单条要点的岗位相关性得分
// 得分基于必备与推荐关键词的命中比例，范围 [0,1]，保留3位小数
func evaluatePattern(bullet string, required, recommended []string) float64 {
	processed := preprocessText(bullet)

	var reqScore, recScore float64
	if len(required) > 0 {
		reqScore = float64(matchKeywords(processed, required)) / float64(len(required))
	}
	if len(recommended) > 0 {
		recScore = float64(matchKeywords(processed, recommended)) / float64(len(recommended))
	}

	score := constants.RequiredKeywordWeight*reqScore + constants.RecommendedKeywordWeight*recScore
	return math.Round(score*1000) / 1000
}

// preprocessText 小写化并去掉标点，便于按词匹配
func preprocessText(text string) string {
	return punctuationPattern.ReplaceAllString(strings.ToLower(text), "")
}

// matchKeywords 统计文本中按词边界命中的关键词个数
// 关键词先做相同的预处理，保证 "node.js" 这类词条也能命中
func matchKeywords(processed string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		keyword = preprocessText(keyword)
		if keyword == "" {
			continue
		}
		pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(keyword) + `\b`)
		if err != nil {
			continue
		}
		if pattern.MatchString(processed) {
			count++
		}
	}
	return count
}
