package service

import (
	"regexp"
	"strings"
)

// Disclaimer appended by the wrapper to every answer. The model is not
// allowed to emit its own copy.
const AnswerDisclaimer = "주의: 이 답변은 일반 정보이며 의학적 진단/처방이 아닙니다."

// Sections owned by the deterministic wrapper; model lines starting with
// these markers are stripped.
var disallowedLinePrefixes = []string{"다음 질문 제안:", "주의:"}

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// CleanModelAnswer normalizes hosted-model output: CRLF to LF, wrapper-owned
// section lines removed, runs of blank lines collapsed to a single blank
// line, surrounding whitespace trimmed.
func CleanModelAnswer(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if hasDisallowedPrefix(line) {
			continue
		}
		kept = append(kept, line)
	}

	s = strings.Join(kept, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

func hasDisallowedPrefix(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range disallowedLinePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
