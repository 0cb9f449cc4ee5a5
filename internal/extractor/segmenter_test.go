package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-iq-go/internal/vocab"
)

func newSegmenter() *SectionSegmenter {
	return NewSectionSegmenter(NewLineClassifier(vocab.NewDefault()))
}

// TestSegmentBasicResume 标准的 章节→条目→要点 层级
func TestSegmentBasicResume(t *testing.T) {
	text := `John Doe
john@example.com

Work Experience
Software Engineer at Acme
• Built the ingestion service using Python.
• Led the migration of search to Elasticsearch.

Education
B.S. Computer Science, MIT`

	sections := newSegmenter().Segment(text)
	require.Len(t, sections, 2)

	work := sections[0]
	assert.Equal(t, "Work Experience", work.SectionName)
	require.Len(t, work.Entries, 1)
	assert.Equal(t, "Software Engineer at Acme", work.Entries[0].Title)
	assert.Equal(t, []string{
		"• Built the ingestion service using Python.",
		"• Led the migration of search to Elasticsearch.",
	}, work.Entries[0].Bullets)

	edu := sections[1]
	assert.Equal(t, "Education", edu.SectionName)
	require.Len(t, edu.Entries, 1)
	assert.Equal(t, "B.S. Computer Science, MIT", edu.Entries[0].Title)
	assert.Empty(t, edu.Entries[0].Bullets)
}

// TestSegmentDropsPreSectionLines 第一个章节标题之前的内容行被丢弃
func TestSegmentDropsPreSectionLines(t *testing.T) {
	text := `John Doe
some introductory prose without any heading
more prose`

	sections := newSegmenter().Segment(text)
	assert.Empty(t, sections)
}

// TestSegmentOrphanLines 章节内、任何条目之外的游离行进入合成条目
func TestSegmentOrphanLines(t *testing.T) {
	text := `Skills

python sql docker redis kafka`

	sections := newSegmenter().Segment(text)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Entries, 1)
	assert.Equal(t, OrphanEntryTitle, sections[0].Entries[0].Title)
	assert.Equal(t, []string{"python sql docker redis kafka"}, sections[0].Entries[0].Bullets)
}

// TestSegmentJobTitleStartsNewEntry 职位行在章节中部开启新条目
func TestSegmentJobTitleStartsNewEntry(t *testing.T) {
	text := `Work Experience
Backend Engineer at Initech
• Delivered the billing rewrite on schedule.
Data Engineer at Hooli
• Built nightly ETL jobs for reporting.`

	sections := newSegmenter().Segment(text)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Entries, 2)
	assert.Equal(t, "Backend Engineer at Initech", sections[0].Entries[0].Title)
	assert.Equal(t, "Data Engineer at Hooli", sections[0].Entries[1].Title)
	require.Len(t, sections[0].Entries[1].Bullets, 1)
}

// TestSegmentEmptyText 空文本得到空但非nil的章节列表
func TestSegmentEmptyText(t *testing.T) {
	sections := newSegmenter().Segment("")
	assert.NotNil(t, sections)
	assert.Empty(t, sections)
}

// TestSegmentMoreHeadingsNeverFewerSections 追加一个章节不会减少已识别的章节数
func TestSegmentMoreHeadingsNeverFewerSections(t *testing.T) {
	base := `Work Experience
Engineer at Acme
• Shipped the reporting dashboard.`
	extended := base + "\n\nEducation\nB.S. Mathematics, 2018"

	segmenter := newSegmenter()
	baseSections := segmenter.Segment(base)
	extendedSections := segmenter.Segment(extended)

	assert.GreaterOrEqual(t, len(extendedSections), len(baseSections))
	assert.Len(t, extendedSections, len(baseSections)+1)
}
