package service

import (
	"fmt"
	"strings"

	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
)

// Keyword sets for the "lowest weight" intent: the question must contain one
// term from each set.
var (
	superlativeTerms = []string{"가장", "제일", "최고로"}
	lowTerms         = []string{"낮", "최저", "최소"}
)

// FallbackAnswerer produces a deterministic answer from a Summary without a
// hosted model. It never fails: missing data renders as 기록 없음 or an
// insufficient-data line. The same (summary, question) pair always yields
// byte-identical output.
type FallbackAnswerer struct {
	selfTerms    []string
	partnerTerms []string
}

// NewFallbackAnswerer takes the self- and partner-indicating keyword sets.
// Display labels from the summary are matched in addition to these.
func NewFallbackAnswerer(selfTerms, partnerTerms []string) *FallbackAnswerer {
	return &FallbackAnswerer{selfTerms: selfTerms, partnerTerms: partnerTerms}
}

// Answer classifies the question and renders the matching report.
func (a *FallbackAnswerer) Answer(summary domain.Summary, question string) string {
	if isLowestWeightQuestion(question) {
		return renderLowestWeight(summary)
	}
	return renderTrendSummary(summary, a.ResolveTarget(summary, question))
}

// ResolveTarget decides whether the question is about me or the partner.
// Partner wins only when a partner-indicating term matches and no
// self-indicating term does; self is the default.
func (a *FallbackAnswerer) ResolveTarget(summary domain.Summary, question string) domain.Person {
	q := strings.ToLower(question)

	partnerHit := containsAny(q, summary.PartnerLabel) || containsAny(q, a.partnerTerms...)
	selfHit := containsAny(q, summary.MeLabel) || containsAny(q, a.selfTerms...)

	if partnerHit && !selfHit {
		return domain.PersonPartner
	}
	return domain.PersonMe
}

func isLowestWeightQuestion(question string) bool {
	q := strings.ToLower(question)
	return containsAny(q, superlativeTerms...) && containsAny(q, lowTerms...)
}

func containsAny(haystack string, terms ...string) bool {
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// renderLowestWeight always reports both people, regardless of the resolved
// target.
func renderLowestWeight(summary domain.Summary) string {
	var sb strings.Builder
	sb.WriteString("한 줄 요약: 기간 내 최저 체중 기록을 확인했어요.\n")
	for _, person := range []domain.Person{domain.PersonMe, domain.PersonPartner} {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", displayLabel(summary, person), lowestLine(summary.UserSeriesFor(person))))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func lowestLine(series []domain.SeriesPoint) string {
	min := MinPoint(series)
	if min == nil {
		return "기록 없음"
	}
	return fmt.Sprintf("%s, %.1fkg", dateutil.FormatWithWeekday(min.Date), min.WeightKg)
}

const trendWindowDays = 14

func renderTrendSummary(summary domain.Summary, target domain.Person) string {
	label := displayLabel(summary, target)
	series := summary.UserSeriesFor(target)
	trend := TrendOverLast(series, trendWindowDays)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("한 줄 요약: %s님의 최근 체중 흐름을 확인했어요.\n", label))
	sb.WriteString(fmt.Sprintf("- 최근 기록 개수: %d개\n", len(series)))
	sb.WriteString(fmt.Sprintf("- 14일 추세: %s\n", trendLine(trend)))
	sb.WriteString(fmt.Sprintf("- 전주 대비: %s", dateutil.FormatDelta(summary.DeltasFor(target).VsWeek)))
	return sb.String()
}

func trendLine(trend *float64) string {
	if trend == nil {
		return "데이터가 부족해요"
	}
	switch {
	case *trend > 0:
		return fmt.Sprintf("상승 (%s)", dateutil.FormatDelta(trend))
	case *trend < 0:
		return fmt.Sprintf("하락 (%s)", dateutil.FormatDelta(trend))
	default:
		return fmt.Sprintf("유지 (%s)", dateutil.FormatDelta(trend))
	}
}

func displayLabel(summary domain.Summary, person domain.Person) string {
	label := summary.LabelFor(person)
	if label != "" {
		return label
	}
	if person == domain.PersonPartner {
		return "상대"
	}
	return "현재 사용자"
}
