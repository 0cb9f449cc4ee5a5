package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeTextHyphenBreak 验证跨行连字符断词被还原为完整单词
func TestNormalizeTextHyphenBreak(t *testing.T) {
	input := "Led the develop-\nment of a new platform"
	assert.Equal(t, "Led the development of a new platform", NormalizeText(input))
}

// TestNormalizeTextWindowsLineEndings 验证\r\n换行同样被识别
func TestNormalizeTextWindowsLineEndings(t *testing.T) {
	input := "imple-\r\nmented caching"
	assert.Equal(t, "implemented caching", NormalizeText(input))
}

// TestNormalizeTextPreservesContent 验证普通换行与行内连字符原样保留
func TestNormalizeTextPreservesContent(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))

	// 行内连字符不受影响
	input := "state-of-the-art system\nsecond line"
	assert.Equal(t, input, NormalizeText(input))

	// 连字符后跟换行但下一行不是字母片段时不合并
	input = "item -\n- next bullet"
	assert.Equal(t, input, NormalizeText(input))
}

// TestNormalizeTextMultipleBreaks 多处断词在同一文本中都被修复
func TestNormalizeTextMultipleBreaks(t *testing.T) {
	input := "micro-\nservices and contain-\nerization"
	assert.Equal(t, "microservices and containerization", NormalizeText(input))
}
