package service

import (
	"fmt"

	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
)

// BuildGoalStatus renders a member's goal settings against their latest
// recorded weight.
func BuildGoalStatus(profile domain.Profile, series []domain.SeriesPoint, today string) domain.GoalStatus {
	status := domain.GoalStatus{
		Person:        profile.Person,
		GoalKg:        profile.GoalKg,
		DietStartDate: profile.DietStartDate,
	}
	if len(series) > 0 {
		current := series[len(series)-1].WeightKg
		status.CurrentKg = &current
	}
	status.Message = goalMessage(status.CurrentKg, profile.GoalKg)
	status.DDayMessage = dDayMessage(profile.DietStartDate, today)
	return status
}

func goalMessage(current, goal *float64) string {
	if goal == nil || *goal <= 0 {
		return "목표 체중을 입력하세요."
	}
	if current == nil {
		return "현재 체중 기록이 없어 계산할 수 없어요."
	}
	diff := dateutil.Round1(*current - *goal)
	switch {
	case diff > 0:
		return fmt.Sprintf("현재 기준 %.1fkg 남았어요.", diff)
	case diff < 0:
		return fmt.Sprintf("목표보다 %.1fkg 낮아요.", -diff)
	default:
		return "목표 체중 달성!"
	}
}

func dDayMessage(startDate, today string) string {
	if startDate == "" {
		return "시작일을 입력하면 D-day를 보여줘요."
	}
	start, err := dateutil.ParseISO(startDate)
	if err != nil {
		return "시작일을 입력하면 D-day를 보여줘요."
	}
	end, err := dateutil.ParseISO(today)
	if err != nil {
		return "시작일을 입력하면 D-day를 보여줘요."
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return fmt.Sprintf("시작일까지 %d일 남았어요.", -days)
	}
	return fmt.Sprintf("다이어트 시작 후 %d일째예요.", days+1)
}
