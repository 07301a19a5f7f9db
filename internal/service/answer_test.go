package service

import (
	"strings"
	"testing"

	"duoscale/internal/domain"
)

var testSelfTerms = []string{"나", "내", "저", "제"}
var testPartnerTerms = []string{"너", "상대", "창희"}

func testAnswerer() *FallbackAnswerer {
	return NewFallbackAnswerer(testSelfTerms, testPartnerTerms)
}

func summaryFixture() domain.Summary {
	summary, err := BuildSummary(sampleRecords(), "2025-01-08", 30, "창창", "창희")
	if err != nil {
		panic(err)
	}
	return summary
}

func TestResolveTargetDefaultsToSelf(t *testing.T) {
	a := testAnswerer()
	summary := summaryFixture()

	if got := a.ResolveTarget(summary, "요즘 추세 어때?"); got != domain.PersonMe {
		t.Fatalf("neutral question should target me, got %s", got)
	}
	if got := a.ResolveTarget(summary, "내 체중 어때?"); got != domain.PersonMe {
		t.Fatalf("self pronoun should target me, got %s", got)
	}
}

func TestResolveTargetPartnerByLabel(t *testing.T) {
	a := testAnswerer()
	summary := summaryFixture()

	if got := a.ResolveTarget(summary, "창희 요즘 어때?"); got != domain.PersonPartner {
		t.Fatalf("partner label should target partner, got %s", got)
	}
	// A self term alongside the partner term pins the target back to me.
	if got := a.ResolveTarget(summary, "창희랑 비교해서 내 몸무게는?"); got != domain.PersonMe {
		t.Fatalf("self term should win, got %s", got)
	}
}

func TestLowestWeightIntentReportsBothPeople(t *testing.T) {
	records := []domain.WeighIn{
		{Date: "2025-01-02", Person: domain.PersonMe, WeightKg: 69.0},
		{Date: "2025-01-03", Person: domain.PersonMe, WeightKg: 68.5},
		{Date: "2025-01-05", Person: domain.PersonMe, WeightKg: 69.2},
	}
	summary, err := BuildSummary(records, "2025-01-08", 30, "창창", "창희")
	if err != nil {
		t.Fatalf("build summary: %v", err)
	}

	got := testAnswerer().Answer(summary, "가장 낮은 몸무게가 언제야")
	if !strings.Contains(got, "2025-01-03") || !strings.Contains(got, "68.5kg") {
		t.Fatalf("expected me minimum in answer, got:\n%s", got)
	}
	if !strings.Contains(got, "창희: 기록 없음") {
		t.Fatalf("expected partner no-record bullet, got:\n%s", got)
	}
}

func TestDefaultIntentTrendSummary(t *testing.T) {
	summary := summaryFixture()
	got := testAnswerer().Answer(summary, "요즘 어때?")

	if !strings.HasPrefix(got, "한 줄 요약: 창창님의") {
		t.Fatalf("expected me-targeted summary line, got:\n%s", got)
	}
	if !strings.Contains(got, "최근 기록 개수: 3개") {
		t.Fatalf("expected record count bullet, got:\n%s", got)
	}
	// 14-day trend: 69.0 vs the clamped first point 70.0 -> down 1.0.
	if !strings.Contains(got, "14일 추세: 하락 (-1.0kg)") {
		t.Fatalf("expected falling trend bullet, got:\n%s", got)
	}
	if !strings.Contains(got, "전주 대비: -1.0kg") {
		t.Fatalf("expected week delta bullet, got:\n%s", got)
	}
}

func TestDefaultIntentAbsentData(t *testing.T) {
	summary, err := BuildSummary(nil, "2025-01-08", 30, "", "")
	if err != nil {
		t.Fatalf("build summary: %v", err)
	}
	got := testAnswerer().Answer(summary, "요즘 어때?")

	if !strings.Contains(got, "현재 사용자님의") {
		t.Fatalf("expected default label, got:\n%s", got)
	}
	if !strings.Contains(got, "14일 추세: 데이터가 부족해요") {
		t.Fatalf("expected insufficient-data trend, got:\n%s", got)
	}
	if !strings.Contains(got, "전주 대비: 기록 없음") {
		t.Fatalf("expected no-record week delta, got:\n%s", got)
	}
}

func TestAnswerIsDeterministic(t *testing.T) {
	a := testAnswerer()
	summary := summaryFixture()
	questions := []string{"요즘 어때?", "가장 낮은 몸무게 언제야?", "창희는 어때?"}
	for _, q := range questions {
		first := a.Answer(summary, q)
		for i := 0; i < 3; i++ {
			if got := a.Answer(summary, q); got != first {
				t.Fatalf("non-deterministic answer for %q:\n%s\nvs\n%s", q, first, got)
			}
		}
	}
}
