package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
)

const askInstruction = "너는 2인 체중 기록 코치다. 제공된 데이터에 근거해 트렌드/패턴 중심으로 설명하라. " +
	"의료적 진단, 치료, 처방은 하지 말고 위험 신호가 보이면 전문가 상담을 권유하라. " +
	"출력 형식: 1) 한 줄 요약 2) 관찰 2~3개 bullet."

// AskPromptBuilder assembles the hosted-model request text: the question,
// the machine-computed facts, and the full summary as structured context.
// The model must answer only from the same facts the fallback engine uses.
type AskPromptBuilder struct{}

// Instruction returns the fixed system instruction for the coach persona.
func (AskPromptBuilder) Instruction() string {
	return askInstruction
}

// BuildAskPrompt renders the user-turn prompt for one question.
func (AskPromptBuilder) BuildAskPrompt(summary domain.Summary, question string) (string, error) {
	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("질문: %s\n\n", question))

	sb.WriteString("=== 계산된 지표 ===\n")
	for _, person := range []domain.Person{domain.PersonMe, domain.PersonPartner} {
		writeFactLines(&sb, summary, person)
	}
	sb.WriteString("\n")

	sb.WriteString("데이터 요약 JSON:\n")
	sb.Write(payload)
	return sb.String(), nil
}

func writeFactLines(sb *strings.Builder, summary domain.Summary, person domain.Person) {
	label := displayLabel(summary, person)
	series := summary.UserSeriesFor(person)
	deltas := summary.DeltasFor(person)

	sb.WriteString(fmt.Sprintf("[%s] 기록 %d개\n", label, len(series)))
	sb.WriteString(fmt.Sprintf("- 전일 대비: %s\n", dateutil.FormatDelta(deltas.VsYesterday)))
	sb.WriteString(fmt.Sprintf("- 전주 대비: %s\n", dateutil.FormatDelta(deltas.VsWeek)))
	sb.WriteString(fmt.Sprintf("- 14일 추세: %s\n", trendLine(TrendOverLast(series, trendWindowDays))))

	if min := MinPoint(series); min != nil {
		sb.WriteString(fmt.Sprintf("- 최저 기록: %s, %.1fkg\n", min.Date, min.WeightKg))
	}
	if swing := MaxRecentSwing(series, 7); swing != nil {
		sb.WriteString(fmt.Sprintf("- 최근 최대 변동: %s, %.1fkg\n", swing.Date, swing.Magnitude))
	}
}
