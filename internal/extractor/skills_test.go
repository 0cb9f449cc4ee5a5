package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-iq-go/internal/vocab"
)

func newSkillExtractor() *SkillExtractor {
	return NewSkillExtractor(vocab.NewDefault(), 0, 0)
}

// TestExtractSkillsOrdering 词表命中按频率降序，同频按字典序
func TestExtractSkillsOrdering(t *testing.T) {
	text := "Python services. Python tooling. Python scripts. Docker builds. Docker images. AWS deploys. AWS accounts."
	skills := newSkillExtractor().Extract(text, nil)

	// python x3, aws x2, docker x2（aws与docker同频，字典序）
	assert.Equal(t, []string{"python", "aws", "docker"}, skills[:3])
}

// TestExtractSkillsMultiWordPhrase 多词技能按子串命中
func TestExtractSkillsMultiWordPhrase(t *testing.T) {
	text := "Applied machine learning to ranking. Shipped machine learning models."
	skills := newSkillExtractor().Extract(text, nil)

	assert.Contains(t, skills, "machine learning")
}

// TestExtractSkillsCandidatePhrases 词表之外、频率至少为2的短语进入候选
func TestExtractSkillsCandidatePhrases(t *testing.T) {
	text := "Tuned snowflake clusters weekly. Migrated snowflake warehouses."
	skills := newSkillExtractor().Extract(text, nil)

	assert.Contains(t, skills, "snowflake")
}

// TestExtractSkillsSingleOccurrenceExcluded 只出现一次的非词表token没有频率信号
func TestExtractSkillsSingleOccurrenceExcluded(t *testing.T) {
	text := "Evaluated memcached once. Nothing else relevant here today."
	skills := newSkillExtractor().Extract(text, nil)

	assert.NotContains(t, skills, "memcached")
}

// TestExtractSkillsCap 输出总数不超过上限
func TestExtractSkillsCap(t *testing.T) {
	text := "python java sql docker redis kafka spark linux"
	skills := NewSkillExtractor(vocab.NewDefault(), 3, 10).Extract(text, nil)

	assert.Len(t, skills, 3)
}

// TestExtractSkillsExtraVocabulary 部署方追加的词表参与第一级命中
func TestExtractSkillsExtraVocabulary(t *testing.T) {
	text := "Provisioned infrastructure with pulumi for three teams."
	skills := newSkillExtractor().Extract(text, []string{"pulumi"})

	assert.Contains(t, skills, "pulumi")
}

// TestExtractSkillsEmptyText 空文本返回空列表
func TestExtractSkillsEmptyText(t *testing.T) {
	skills := newSkillExtractor().Extract("", nil)
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}
