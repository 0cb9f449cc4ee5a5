package extractor

import (
	"regexp"
	"sort"
	"strings"

	"resume-iq-go/internal/constants"
	"resume-iq-go/internal/vocab"
)

// tokenPattern 技能匹配用的token：字母数字加 + # . 以覆盖 c++ / c# / node.js 这类技术名
var tokenPattern = regexp.MustCompile(`[a-z0-9+#.]+`)

// SkillExtractor 两级技能抽取：词表精确命中 + 频率排序的候选短语
// 召回优先的启发式，接受一定误报，不追求精确的技能本体
type SkillExtractor struct {
	vocab         *vocab.Vocabulary
	maxSkills     int // 输出总数上限
	maxCandidates int // 候选短语数量上限
}

// NewSkillExtractor 创建技能提取器，上限参数小于等于0时使用默认值
func NewSkillExtractor(v *vocab.Vocabulary, maxSkills, maxCandidates int) *SkillExtractor {
	if maxSkills <= 0 {
		maxSkills = constants.MaxSkills
	}
	if maxCandidates <= 0 {
		maxCandidates = constants.MaxCandidatePhrases
	}
	return &SkillExtractor{vocab: v, maxSkills: maxSkills, maxCandidates: maxCandidates}
}

// Extract 从全文中提取技能列表
// 输出顺序：词表命中在前（按文中频率降序，同频按字典序），
// 随后是频率挖掘的候选短语，总数不超过上限，无重复
func (e *SkillExtractor) Extract(text string, extraVocabulary []string) []string {
	result := []string{}
	if text == "" {
		return result
	}
	lowered := strings.ToLower(text)
	tokens := tokenize(lowered)

	tokenFreq := make(map[string]int, len(tokens))
	for _, token := range tokens {
		tokenFreq[token]++
	}

	// 第一级：词表精确命中
	matched := make(map[string]int)
	vocabulary := append(append([]string{}, e.vocab.Skills()...), extraVocabulary...)
	for _, skill := range vocabulary {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			continue
		}
		if _, seen := matched[skill]; seen {
			continue
		}
		var freq int
		if strings.Contains(skill, " ") {
			// 多词短语按子串计数
			freq = strings.Count(lowered, skill)
		} else {
			freq = tokenFreq[skill]
		}
		if freq > 0 {
			matched[skill] = freq
		}
	}

	matchedList := make([]string, 0, len(matched))
	for skill := range matched {
		matchedList = append(matchedList, skill)
	}
	sort.Slice(matchedList, func(i, j int) bool {
		if matched[matchedList[i]] != matched[matchedList[j]] {
			return matched[matchedList[i]] > matched[matchedList[j]]
		}
		return matchedList[i] < matchedList[j]
	})

	// 第二级：频率排序的候选短语，排除停用词和已命中的内容
	candidates := e.rankCandidatePhrases(tokens, matched)

	for _, skill := range matchedList {
		if len(result) >= e.maxSkills {
			return result
		}
		result = append(result, skill)
	}
	for _, phrase := range candidates {
		if len(result) >= e.maxSkills {
			break
		}
		result = append(result, phrase)
	}
	return result
}

// rankCandidatePhrases 统计至多3词的滑动窗口短语频率并取前若干个
func (e *SkillExtractor) rankCandidatePhrases(tokens []string, matched map[string]int) []string {
	phraseFreq := make(map[string]int)
	for n := 1; n <= constants.MaxPhraseTokens; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			window := tokens[i : i+n]
			if !e.validWindow(window) {
				continue
			}
			phrase := strings.Join(window, " ")
			if e.overlapsMatched(phrase, matched) {
				continue
			}
			phraseFreq[phrase]++
		}
	}

	phrases := make([]string, 0, len(phraseFreq))
	for phrase, freq := range phraseFreq {
		// 只出现一次的短语没有频率信号，不进入候选
		if freq >= constants.MinPhraseFrequency {
			phrases = append(phrases, phrase)
		}
	}
	sort.Slice(phrases, func(i, j int) bool {
		if phraseFreq[phrases[i]] != phraseFreq[phrases[j]] {
			return phraseFreq[phrases[i]] > phraseFreq[phrases[j]]
		}
		return phrases[i] < phrases[j]
	})

	if len(phrases) > e.maxCandidates {
		phrases = phrases[:e.maxCandidates]
	}
	return phrases
}

// validWindow 窗口内不允许停用词、纯数字或过短的token
func (e *SkillExtractor) validWindow(window []string) bool {
	for _, token := range window {
		if len(token) < 2 || e.vocab.IsStopWord(token) || isNumeric(token) {
			return false
		}
	}
	return true
}

// overlapsMatched 候选短语与已命中技能重叠时排除
func (e *SkillExtractor) overlapsMatched(phrase string, matched map[string]int) bool {
	for skill := range matched {
		if phrase == skill || strings.Contains(phrase, skill) || strings.Contains(skill, phrase) {
			return true
		}
	}
	return false
}

// tokenize 切分小写文本并去掉token首尾的句点
func tokenize(lowered string) []string {
	raw := tokenPattern.FindAllString(lowered, -1)
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		token = strings.Trim(token, ".")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func isNumeric(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
