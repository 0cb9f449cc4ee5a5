package extractor // 文本结构化流水线：规整、联系方式、分段、要点合并、技能抽取

import (
	"regexp"
	"strings"
)

// hyphenBreakPattern 匹配被连字符拆到两行的单词：词片段 + 连字符 + 换行 + 续写片段
var hyphenBreakPattern = regexp.MustCompile(`([A-Za-z]+)-\r?\n([A-Za-z]+)`)

// NormalizeText 修复提取文本中的断词痕迹
// 将跨行连字符拆开的单词合并为一个词，其余换行原样保留
// 总函数：空文本返回空文本，永不失败
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return hyphenBreakPattern.ReplaceAllString(text, "$1$2")
}
