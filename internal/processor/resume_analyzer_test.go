package processor

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-iq-go/internal/parser"
	"resume-iq-go/internal/vocab"
)

// 测试用文本提取器模拟器
type MockTextExtractor struct {
	Text string
	Err  error
}

func (m *MockTextExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, map[string]interface{}, error) {
	return m.Text, nil, m.Err
}

func (m *MockTextExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, map[string]interface{}, error) {
	return m.Text, nil, m.Err
}

func (m *MockTextExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, map[string]interface{}, error) {
	return m.Text, nil, m.Err
}

func newTestAnalyzer(opts ...ComponentOpt) *ResumeAnalyzer {
	nop := zerolog.Nop()
	components := NewDefaultComponents(vocab.NewDefault(), &nop, opts...)
	return NewResumeAnalyzer(components, &Settings{}, &nop)
}

const sampleResume = `Jane Doe
jane.doe@gmail.com | github.com/janedoe

Work Experience
Backend Engineer at Acme
• Built the ingestion pipeline with Python and Kafka handling 2M events.
• Reduced p99 query latency by 40% after moving caching to Redis.

Skills
Python SQL Docker experience across production systems`

// TestAnalyzeTextEndToEnd 完整流水线：联系方式、章节、要点、技能、得分一次产出
func TestAnalyzeTextEndToEnd(t *testing.T) {
	report, err := newTestAnalyzer().AnalyzeText(context.Background(), sampleResume, "Backend Developer")
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, []string{"jane.doe@gmail.com"}, report.Contacts.Emails)
	assert.Equal(t, []string{"github.com/janedoe"}, report.Contacts.Links)

	require.NotEmpty(t, report.Sections)
	assert.Equal(t, "Work Experience", report.Sections[0].SectionName)
	require.Len(t, report.Sections[0].Entries, 1)
	entry := report.Sections[0].Entries[0]
	assert.Equal(t, "Backend Engineer at Acme", entry.Title)
	// 合并后的要点不携带行首标记
	require.Len(t, entry.Bullets, 2)
	assert.True(t, strings.HasPrefix(entry.Bullets[0], "Built"))

	assert.Contains(t, report.Skills, "python")

	assert.Greater(t, report.Score.FinalScore, 0.0)
	assert.Less(t, report.Score.FinalScore, 1.0)
	assert.Empty(t, report.Score.Degraded)
}

// TestAnalyzeTextEmptyInput 空输入与纯空白输入得到空但结构完整的报告
func TestAnalyzeTextEmptyInput(t *testing.T) {
	analyzer := newTestAnalyzer()

	for _, input := range []string{"", "   \n\t\n  "} {
		report, err := analyzer.AnalyzeText(context.Background(), input, "Backend Developer")
		require.NoError(t, err)
		require.NotNil(t, report)

		assert.NotNil(t, report.Contacts.Emails)
		assert.NotNil(t, report.Sections)
		assert.NotNil(t, report.Skills)
		assert.Empty(t, report.Sections)
		assert.Zero(t, report.Score.FinalScore)
	}
}

// TestAnalyzeTextNormalizesBeforeExtraction 断词修复发生在所有提取之前
func TestAnalyzeTextNormalizesBeforeExtraction(t *testing.T) {
	text := `Skills

worked extensively with micro-
services and kubernetes clusters in production`

	report, err := newTestAnalyzer().AnalyzeText(context.Background(), text, "")
	require.NoError(t, err)
	assert.Contains(t, report.Skills, "microservices")
}

// TestAnalyzeTextDefaultRole 请求未携带岗位时回退到配置的默认岗位
func TestAnalyzeTextDefaultRole(t *testing.T) {
	nop := zerolog.Nop()
	components := NewDefaultComponents(vocab.NewDefault(), &nop)

	withRole := NewResumeAnalyzer(components, &Settings{DefaultRole: "Backend Developer"}, &nop)
	withoutRole := NewResumeAnalyzer(components, &Settings{}, &nop)

	scored, err := withRole.AnalyzeText(context.Background(), sampleResume, "")
	require.NoError(t, err)
	unscored, err := withoutRole.AnalyzeText(context.Background(), sampleResume, "")
	require.NoError(t, err)

	assert.Greater(t, scored.Score.Pattern, unscored.Score.Pattern)
}

// TestAnalyzeReaderUnsupportedFormat 不支持的类型在核心处理之前被拒绝
func TestAnalyzeReaderUnsupportedFormat(t *testing.T) {
	analyzer := newTestAnalyzer(WithTextExtractor(&MockTextExtractor{Err: parser.ErrUnsupportedFormat}))

	report, err := analyzer.AnalyzeReader(context.Background(), strings.NewReader("x"), "resume.odt", "")
	assert.ErrorIs(t, err, parser.ErrUnsupportedFormat)
	assert.Nil(t, report)
}

// TestAnalyzeReaderExtractionFailureDegrades 提取失败降级为空报告而不是错误
func TestAnalyzeReaderExtractionFailureDegrades(t *testing.T) {
	analyzer := newTestAnalyzer(WithTextExtractor(&MockTextExtractor{Err: errors.New("corrupt file")}))

	report, err := analyzer.AnalyzeReader(context.Background(), strings.NewReader("x"), "resume.pdf", "")
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Empty(t, report.Sections)
	assert.Zero(t, report.Score.FinalScore)
}

// TestAnalyzeReaderNoExtractor 未注入提取器时返回明确错误
func TestAnalyzeReaderNoExtractor(t *testing.T) {
	analyzer := newTestAnalyzer()

	_, err := analyzer.AnalyzeReader(context.Background(), strings.NewReader("x"), "resume.pdf", "")
	assert.ErrorIs(t, err, ErrExtractorNotInit)
}

// TestAnalyzeReaderDelegatesToPipeline 提取成功后与文本入口产出一致的报告
func TestAnalyzeReaderDelegatesToPipeline(t *testing.T) {
	analyzer := newTestAnalyzer(WithTextExtractor(&MockTextExtractor{Text: sampleResume}))

	fromReader, err := analyzer.AnalyzeReader(context.Background(), strings.NewReader("ignored"), "resume.pdf", "Backend Developer")
	require.NoError(t, err)
	fromText, err := analyzer.AnalyzeText(context.Background(), sampleResume, "Backend Developer")
	require.NoError(t, err)

	assert.Equal(t, fromText, fromReader)
}
