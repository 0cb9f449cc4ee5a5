package extractor

import (
	"regexp"
	"strings"
	"unicode"

	"resume-iq-go/internal/constants"
	"resume-iq-go/internal/vocab"
)

// LineClass 单行的分类标签
type LineClass string

const (
	// LineBlank 空行
	LineBlank LineClass = "BLANK"
	// LineHeading 章节标题行
	LineHeading LineClass = "HEADING"
	// LineBulletStart 以要点标记开头的行
	LineBulletStart LineClass = "BULLET_START"
	// LineJobTitle 职位/日期行
	LineJobTitle LineClass = "JOB_TITLE"
	// LinePlain 未被任何规则识别的普通内容行
	LinePlain LineClass = "PLAIN"
)

// 日期表达：显式年份、年份区间、月份+年份、Present/Current、季节+年份
var (
	yearPattern       = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	yearRangePattern  = regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*[-–—~]\s*((19|20)\d{2}|present|current|now)\b`)
	monthYearPattern  = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+(19|20)\d{2}\b`)
	presentPattern    = regexp.MustCompile(`(?i)\b(present|current)\b`)
	seasonYearPattern = regexp.MustCompile(`(?i)\b(spring|summer|fall|autumn|winter)\s+(19|20)\d{2}\b`)
)

// 职位行形态
var (
	titleAtCompanyPattern    = regexp.MustCompile(`^[A-Z][\w .,'’/&+-]* at [A-Z]`)
	titleCommaCompanyPattern = regexp.MustCompile(`^[A-Z][\w .'’/&+-]*,\s*[A-Z]`)
	titleDashCompanyPattern  = regexp.MustCompile(`^[A-Z].*\s[-–—]\s+[A-Z]`)
	companyDotTitlePattern   = regexp.MustCompile(`^[A-Z].*\s[•·]\s+\S`)
	seniorityPrefixPattern   = regexp.MustCompile(`(?i)^(senior|sr\.?|junior|jr\.?|lead|principal|staff|chief|head|associate)\s+\S`)
	roleNounSuffixPattern    = regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|designer|consultant|architect|scientist|specialist|administrator|director|intern|lead)$`)
	teamReferencePattern     = regexp.MustCompile(`(?i)\b(team|department|division|group)\b`)
)

// 要点标记：项目符号字形、-/*/+ 加空白、编号列表、字母列表
var (
	bulletGlyphPattern    = regexp.MustCompile(`^[•▪●○◦‣·➤➢✓❖§]\s*`)
	bulletDashPattern     = regexp.MustCompile(`^[-*+]\s+`)
	numberedListPattern   = regexp.MustCompile(`^\(?\d{1,2}[.)]\s+`)
	letteredListPattern   = regexp.MustCompile(`^\(?[a-zA-Z][.)]\s+`)
)

// classifierRule 一条命名的行分类规则
// 规则按声明顺序求值，先命中者决定分类（文档化的优先级顺序）
type classifierRule struct {
	Name  string                  // 规则名，便于独立测试与调试
	Class LineClass               // 命中后赋予的分类
	Match func(line string) bool  // 纯谓词，对去除首尾空白后的行求值
}

// LineClassifier 按序规则表驱动的行级分类器
// 优先级：空行 > 标题 > 要点标记 > 职位行 > 普通行
// 标题先于职位行检查：同时命中两者的行按标题处理
type LineClassifier struct {
	vocab *vocab.Vocabulary
	rules []classifierRule
}

// NewLineClassifier 创建行分类器并装配规则表
func NewLineClassifier(v *vocab.Vocabulary) *LineClassifier {
	c := &LineClassifier{vocab: v}
	c.rules = []classifierRule{
		{Name: "blank", Class: LineBlank, Match: func(line string) bool { return line == "" }},
		{Name: "heading-vocabulary", Class: LineHeading, Match: c.matchKnownHeading},
		{Name: "heading-all-caps", Class: LineHeading, Match: matchAllCapsHeading},
		{Name: "heading-short-colon", Class: LineHeading, Match: matchShortColonHeading},
		{Name: "bullet-marker", Class: LineBulletStart, Match: IsBulletMarker},
		{Name: "job-title-date", Class: LineJobTitle, Match: matchDateExpression},
		{Name: "job-title-shape", Class: LineJobTitle, Match: matchTitleShape},
	}
	return c
}

// Classify 返回一行的分类标签
func (c *LineClassifier) Classify(line string) LineClass {
	trimmed := strings.TrimSpace(line)
	for _, rule := range c.rules {
		if rule.Match(trimmed) {
			return rule.Class
		}
	}
	return LinePlain
}

// IsHeading 判断一行是否是章节标题
func (c *LineClassifier) IsHeading(line string) bool {
	return c.Classify(line) == LineHeading
}

// IsJobTitle 判断一行是否是职位/日期行
func (c *LineClassifier) IsJobTitle(line string) bool {
	return c.Classify(line) == LineJobTitle
}

// matchKnownHeading 小写后命中已知章节名词表
func (c *LineClassifier) matchKnownHeading(line string) bool {
	return line != "" && c.vocab.IsKnownHeading(line)
}

// matchAllCapsHeading 全大写、长度大于3且至少含一个字母
func matchAllCapsHeading(line string) bool {
	if len(line) <= 3 || line != strings.ToUpper(line) {
		return false
	}
	for _, r := range line {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// matchShortColonHeading 不超过4个词且以冒号结尾
func matchShortColonHeading(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	return len(strings.Fields(line)) <= constants.HeadingMaxColonWords
}

// matchDateExpression 行内含可识别的日期表达
func matchDateExpression(line string) bool {
	return yearRangePattern.MatchString(line) ||
		monthYearPattern.MatchString(line) ||
		seasonYearPattern.MatchString(line) ||
		yearPattern.MatchString(line) ||
		presentPattern.MatchString(line)
}

// matchTitleShape 行命中任一职位行形态
func matchTitleShape(line string) bool {
	return titleAtCompanyPattern.MatchString(line) ||
		titleCommaCompanyPattern.MatchString(line) ||
		titleDashCompanyPattern.MatchString(line) ||
		companyDotTitlePattern.MatchString(line) ||
		seniorityPrefixPattern.MatchString(line) ||
		roleNounSuffixPattern.MatchString(line) ||
		teamReferencePattern.MatchString(line)
}

// IsBulletMarker 判断一行是否以要点标记开头
func IsBulletMarker(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	return bulletGlyphPattern.MatchString(line) ||
		bulletDashPattern.MatchString(line) ||
		numberedListPattern.MatchString(line) ||
		letteredListPattern.MatchString(line)
}

// StripBulletMarker 去掉行首的要点标记文本
func StripBulletMarker(line string) string {
	line = strings.TrimSpace(line)
	for _, pattern := range []*regexp.Regexp{bulletGlyphPattern, bulletDashPattern, numberedListPattern, letteredListPattern} {
		if pattern.MatchString(line) {
			return strings.TrimSpace(pattern.ReplaceAllString(line, ""))
		}
	}
	return line
}
