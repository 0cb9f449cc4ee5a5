package extractor

import (
	"regexp"
	"strings"

	"resume-iq-go/internal/types"
	"resume-iq-go/internal/vocab"
)

var (
	// emailPattern 匹配邮箱形态的token：local-part@domain.tld
	emailPattern = regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`)

	// urlPattern 匹配URL形态的token：带scheme/www前缀的主机名，或裸的 hostname.tld，可带路径
	urlPattern = regexp.MustCompile(`(?i)\b(?:https?://|www\.)?[a-z0-9.-]+\.[a-z]{2,}(?:/[^\s]*)?`)
)

// ContactExtractor 从全文中提取邮箱与外链
type ContactExtractor struct {
	vocab *vocab.Vocabulary
}

// NewContactExtractor 创建联系方式提取器
func NewContactExtractor(v *vocab.Vocabulary) *ContactExtractor {
	return &ContactExtractor{vocab: v}
}

// Extract 返回去重后的邮箱集合与过滤后的外链列表
// 邮箱优先：与邮箱匹配区间重叠的URL候选一律丢弃，保证邮箱绝不会同时出现在链接里
func (e *ContactExtractor) Extract(text string) types.ContactSet {
	contacts := types.ContactSet{Emails: []string{}, Links: []string{}}
	if text == "" {
		return contacts
	}

	emailSpans := emailPattern.FindAllStringIndex(text, -1)
	seenEmails := make(map[string]struct{})
	for _, span := range emailSpans {
		addr := strings.ToLower(text[span[0]:span[1]])
		if _, dup := seenEmails[addr]; dup {
			continue
		}
		seenEmails[addr] = struct{}{}
		contacts.Emails = append(contacts.Emails, addr)
	}

	seenLinks := make(map[string]struct{})
	for _, span := range urlPattern.FindAllStringIndex(text, -1) {
		if overlapsAny(span, emailSpans) {
			continue
		}
		raw := text[span[0]:span[1]]
		if strings.Contains(raw, "@") {
			continue
		}
		if !e.isRecognizedLink(raw) {
			continue
		}
		if e.hasPersonalEmailHost(raw) {
			continue
		}
		// 去重前去掉单个结尾斜杠
		normalized := strings.TrimSuffix(raw, "/")
		if _, dup := seenLinks[normalized]; dup {
			continue
		}
		seenLinks[normalized] = struct{}{}
		contacts.Links = append(contacts.Links, normalized)
	}

	return contacts
}

// isRecognizedLink 判断URL候选是否满足TLD或路径判据
// 满足其一即可：以已知TLD结尾、已知TLD后紧跟路径、或带scheme/www前缀且含路径
func (e *ContactExtractor) isRecognizedLink(raw string) bool {
	lowered := strings.ToLower(raw)
	for _, tld := range e.vocab.TLDs() {
		if strings.HasSuffix(lowered, tld) || strings.Contains(lowered, tld+"/") {
			return true
		}
	}
	if hasURLPrefix(lowered) && strings.Contains(lowered, "/") {
		return true
	}
	return false
}

// hasPersonalEmailHost 判断URL候选的主机部分是否等于或包含个人邮箱服务商域名
func (e *ContactExtractor) hasPersonalEmailHost(raw string) bool {
	host := strings.ToLower(raw)
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	if idx := strings.Index(host, "/"); idx >= 0 {
		host = host[:idx]
	}
	for _, domain := range e.vocab.PersonalEmailDomains() {
		if strings.Contains(host, domain) {
			return true
		}
	}
	return false
}

func hasURLPrefix(lowered string) bool {
	return strings.HasPrefix(lowered, "http://") ||
		strings.HasPrefix(lowered, "https://") ||
		strings.HasPrefix(lowered, "www.")
}

// overlapsAny 判断区间是否与任一区间相交
func overlapsAny(span []int, others [][]int) bool {
	for _, other := range others {
		if span[0] < other[1] && other[0] < span[1] {
			return true
		}
	}
	return false
}
