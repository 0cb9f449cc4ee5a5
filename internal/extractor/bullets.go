package extractor

import (
	"strings"

	"resume-iq-go/internal/constants"
	"resume-iq-go/internal/vocab"
)

// continuationConnectors 悬挂连接词：行尾出现时下一行视为续写
var continuationConnectors = map[string]struct{}{
	"and": {}, "or": {}, "with": {}, "to": {}, "for": {}, "of": {},
	"in": {}, "on": {}, "by": {}, "the": {}, "a": {}, "an": {}, "as": {},
}

// BulletMerger 把多行要点碎片合并为单条逻辑要点
type BulletMerger struct {
	vocab    *vocab.Vocabulary
	minWords int // 噪声过滤的最小词数阈值
}

// NewBulletMerger 创建要点合并器
// minWords 小于等于0时退回默认阈值
func NewBulletMerger(v *vocab.Vocabulary, minWords int) *BulletMerger {
	if minWords <= 0 {
		minWords = constants.MinBulletWords
	}
	return &BulletMerger{vocab: v, minWords: minWords}
}

// Merge 合并一个条目的原始要点行并去掉行首要点标记
// 规则：
//   - 要点标记行总是开启新要点
//   - 非标记行若被续写判据接受则并入当前要点；由标记开启的要点会吸收
//     后续全部非标记行直到下一个标记（PDF提取的折行文本绝大多数是续写）
//   - 其余情况开启新要点，绝不静默丢弃内容
//
// 最后丢弃低于词数阈值且不含强动作动词的要点（精确率/召回率取舍）
func (m *BulletMerger) Merge(rawLines []string) []string {
	var merged []string
	var current strings.Builder
	markerLed := false

	flush := func() {
		if current.Len() == 0 {
			return
		}
		bullet := StripBulletMarker(current.String())
		if bullet != "" {
			merged = append(merged, bullet)
		}
		current.Reset()
		markerLed = false
	}

	for _, rawLine := range rawLines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		if IsBulletMarker(line) {
			flush()
			current.WriteString(line)
			markerLed = true
			continue
		}
		if current.Len() > 0 && (markerLed || m.acceptsContinuation(current.String(), line)) {
			current.WriteString(" ")
			current.WriteString(line)
			continue
		}
		flush()
		current.WriteString(line)
	}
	flush()

	return m.filterNoise(merged)
}

// acceptsContinuation 续写判据
// 已积累文本以逗号/冒号/分号或悬挂连接词结尾，或新行以小写字母开头。
// 单纯缺少句末标点不构成续写：合并产物常常没有句号，
// 否则对合并结果再次合并会把相邻要点粘连起来
func (m *BulletMerger) acceptsContinuation(accumulated, line string) bool {
	accumulated = strings.TrimSpace(accumulated)
	if accumulated == "" {
		return false
	}
	last := accumulated[len(accumulated)-1]
	if last == ',' || last == ':' || last == ';' {
		return true
	}
	words := strings.Fields(accumulated)
	lastWord := strings.ToLower(strings.Trim(words[len(words)-1], ".,;:!?"))
	if _, ok := continuationConnectors[lastWord]; ok {
		return true
	}
	first := rune(line[0])
	return first >= 'a' && first <= 'z'
}

// filterNoise 丢弃低信息量要点
func (m *BulletMerger) filterNoise(bullets []string) []string {
	kept := []string{}
	for _, bullet := range bullets {
		words := strings.Fields(bullet)
		if len(words) >= m.minWords {
			kept = append(kept, bullet)
			continue
		}
		hasVerb := false
		for _, word := range words {
			if m.vocab.IsStrongActionVerb(strings.Trim(word, ".,;:!?")) {
				hasVerb = true
				break
			}
		}
		if hasVerb {
			kept = append(kept, bullet)
		}
	}
	return kept
}
