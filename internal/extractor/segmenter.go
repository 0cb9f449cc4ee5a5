package extractor

import (
	"strings"

	"resume-iq-go/internal/types"
)

// OrphanEntryTitle 收容游离内容行的合成条目标题
const OrphanEntryTitle = "Additional Information"

// SectionSegmenter 单遍有限状态扫描器
// 把平铺的行序列组织为 章节→条目→原始要点行 的层级
// 状态由 (当前章节, 当前条目, 上一行是否标题) 构成，歧义一律按文档化的就地规则消解
type SectionSegmenter struct {
	classifier *LineClassifier
}

// NewSectionSegmenter 创建分段器
func NewSectionSegmenter(classifier *LineClassifier) *SectionSegmenter {
	return &SectionSegmenter{classifier: classifier}
}

// Segment 扫描规整后的文本并返回章节树
// 容错优先：章节出现前的内容行被有意丢弃（联系方式另行提取），
// 章节内的游离内容行进入合成的 "Additional Information" 条目，绝不因格式问题报错
func (s *SectionSegmenter) Segment(text string) []*types.Section {
	sections := []*types.Section{}
	if text == "" {
		return sections
	}

	var currentSection *types.Section
	var currentEntry *types.Entry
	afterHeading := false

	closeEntry := func() {
		if currentEntry != nil && currentSection != nil {
			currentSection.Entries = append(currentSection.Entries, currentEntry)
		}
		currentEntry = nil
	}
	closeSection := func() {
		closeEntry()
		if currentSection != nil {
			sections = append(sections, currentSection)
		}
		currentSection = nil
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)

		switch s.classifier.Classify(line) {
		case LineBlank:
			afterHeading = false

		case LineHeading:
			closeSection()
			currentSection = &types.Section{SectionName: line, Entries: []*types.Entry{}}
			afterHeading = true

		default:
			if currentSection == nil {
				// 章节出现之前的前导内容（姓名、联系方式块）直接跳过
				continue
			}
			if afterHeading || s.classifier.IsJobTitle(line) {
				closeEntry()
				currentEntry = &types.Entry{Title: line, Bullets: []string{}}
				afterHeading = false
				continue
			}
			if currentEntry == nil {
				currentEntry = &types.Entry{Title: OrphanEntryTitle, Bullets: []string{}}
			}
			currentEntry.Bullets = append(currentEntry.Bullets, line)
		}
	}

	closeSection()
	return sections
}
