package vocab // 定义了简历分析所依赖的只读参照词表

import "strings"

// Vocabulary 聚合所有进程级只读词表
// 在启动时构建一次，之后以引用方式传入各组件，任何组件都不得修改其内容
type Vocabulary struct {
	headings     map[string]struct{} // 已知简历章节标题（小写）
	stopWords    map[string]struct{} // 候选技能短语需要排除的停用词
	actionVerbs  map[string]struct{} // 强动作动词（用于低信息量要点过滤）
	skills       []string            // 技术技能词表（保持声明顺序）
	tlds         []string            // 可识别的顶级域名后缀
	emailDomains []string            // 个人邮箱服务商域名
}

// knownHeadings 已知的简历章节标题
// 匹配时统一转为小写并去掉行尾冒号
var knownHeadings = []string{
	"work experience", "professional experience", "experience", "employment",
	"employment history", "work history", "relevant experience",
	"education", "academic background", "academics",
	"skills", "technical skills", "core competencies", "technologies",
	"projects", "personal projects", "academic projects", "selected projects",
	"certifications", "certificates", "licenses",
	"awards", "honors", "honors and awards", "achievements",
	"publications", "research", "research experience",
	"summary", "professional summary", "objective", "career objective", "profile",
	"volunteer experience", "volunteering", "community involvement",
	"leadership", "leadership experience", "activities", "extracurricular activities",
	"languages", "interests", "references", "additional information", "contact",
}

// validTLDs 可识别的顶级域名后缀
var validTLDs = []string{
	".com", ".org", ".net", ".io", ".co", ".co.uk", ".ai", ".edu",
	".gov", ".us", ".uk", ".de", ".fr", ".jp", ".ca", ".au", ".info",
	".dev", ".tech", ".biz", ".online",
}

// personalEmailDomains 个人邮箱服务商域名，出现在链接里时要过滤掉
var personalEmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com"}

// technicalSkills 技术技能词表
// 单词条目按词边界匹配，多词短语按子串匹配
var technicalSkills = []string{
	"python", "java", "javascript", "typescript", "golang", "go", "c++", "c#",
	"rust", "ruby", "php", "swift", "kotlin", "scala", "r", "matlab",
	"sql", "mysql", "postgresql", "sqlite", "mongodb", "redis", "elasticsearch",
	"dynamodb", "cassandra", "oracle", "clickhouse",
	"html", "css", "react", "angular", "vue", "next.js", "node.js", "express",
	"django", "flask", "fastapi", "spring", "spring boot", "rails", "laravel",
	"gin", "grpc", "graphql", "rest api", "restful api", "websocket",
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "git", "github actions",
	"ci/cd", "linux", "bash", "nginx",
	"aws", "azure", "gcp", "google cloud", "lambda", "s3", "ec2",
	"kafka", "rabbitmq", "spark", "hadoop", "airflow", "flink", "etl",
	"tensorflow", "pytorch", "scikit-learn", "keras", "pandas", "numpy",
	"machine learning", "deep learning", "natural language processing",
	"computer vision", "data analysis", "data visualization", "data engineering",
	"microservices", "distributed systems", "system design", "unit testing",
	"agile", "scrum", "object oriented programming",
}

// phraseStopWords 候选短语挖掘时排除的停用词
var phraseStopWords = []string{
	"a", "an", "the", "and", "or", "but", "of", "in", "on", "at", "to", "for",
	"with", "by", "from", "as", "is", "was", "are", "were", "be", "been", "being",
	"has", "have", "had", "do", "does", "did", "will", "would", "can", "could",
	"should", "may", "might", "this", "that", "these", "those", "it", "its",
	"i", "my", "we", "our", "you", "your", "their", "they", "he", "she",
	"not", "no", "all", "any", "each", "more", "most", "other", "some", "such",
	"than", "too", "very", "into", "over", "under", "about", "across", "through",
	"using", "used", "use", "also", "etc", "via", "per", "new",
}

// strongActionVerbs 强动作动词
// 低于最小词数阈值的要点若不含这些动词则视为噪声
var strongActionVerbs = []string{
	"built", "developed", "designed", "implemented", "created", "engineered",
	"architected", "launched", "delivered", "deployed", "migrated", "automated",
	"optimized", "improved", "reduced", "increased", "accelerated", "scaled",
	"streamlined", "refactored", "led", "managed", "directed", "coordinated",
	"mentored", "trained", "analyzed", "researched", "evaluated", "integrated",
	"maintained", "resolved", "achieved", "established", "initiated", "spearheaded",
}

// NewDefault 构建默认词表
func NewDefault() *Vocabulary {
	v := &Vocabulary{
		headings:     make(map[string]struct{}, len(knownHeadings)),
		stopWords:    make(map[string]struct{}, len(phraseStopWords)),
		actionVerbs:  make(map[string]struct{}, len(strongActionVerbs)),
		skills:       technicalSkills,
		tlds:         validTLDs,
		emailDomains: personalEmailDomains,
	}
	for _, h := range knownHeadings {
		v.headings[h] = struct{}{}
	}
	for _, w := range phraseStopWords {
		v.stopWords[w] = struct{}{}
	}
	for _, w := range strongActionVerbs {
		v.actionVerbs[w] = struct{}{}
	}
	return v
}

// IsKnownHeading 判断一行（已去除首尾空白）是否是已知章节标题
// 比较前统一转小写并去掉行尾冒号
func (v *Vocabulary) IsKnownHeading(line string) bool {
	key := strings.ToLower(strings.TrimSpace(line))
	key = strings.TrimSuffix(key, ":")
	key = strings.TrimSpace(key)
	_, ok := v.headings[key]
	return ok
}

// IsStopWord 判断一个小写词是否是停用词
func (v *Vocabulary) IsStopWord(word string) bool {
	_, ok := v.stopWords[word]
	return ok
}

// IsStrongActionVerb 判断一个词是否是强动作动词（大小写不敏感）
func (v *Vocabulary) IsStrongActionVerb(word string) bool {
	_, ok := v.actionVerbs[strings.ToLower(word)]
	return ok
}

// Skills 返回技术技能词表
// 返回的切片是内部数据，调用方不得修改
func (v *Vocabulary) Skills() []string {
	return v.skills
}

// TLDs 返回可识别的顶级域名后缀列表
func (v *Vocabulary) TLDs() []string {
	return v.tlds
}

// PersonalEmailDomains 返回个人邮箱服务商域名列表
func (v *Vocabulary) PersonalEmailDomains() []string {
	return v.emailDomains
}
