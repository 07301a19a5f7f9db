package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"duoscale/internal/dateutil"
	"duoscale/internal/domain"
	"duoscale/internal/repository"
)

// BuildSummary assembles the structured snapshot for the window ending at
// today. Pure function; no I/O. rangeDays may be any positive integer, the
// 7/30/90 menu is enforced by callers.
func BuildSummary(records []domain.WeighIn, today string, rangeDays int, meLabel, partnerLabel string) (domain.Summary, error) {
	if rangeDays < 1 {
		return domain.Summary{}, fmt.Errorf("range days must be positive, got %d", rangeDays)
	}
	start, err := dateutil.AddDays(today, -(rangeDays - 1))
	if err != nil {
		return domain.Summary{}, err
	}

	meSeries := ProjectSeries(records, domain.PersonMe, start, today)
	partnerSeries := ProjectSeries(records, domain.PersonPartner, start, today)

	return domain.Summary{
		RangeDays:    rangeDays,
		Today:        today,
		MeLabel:      meLabel,
		PartnerLabel: partnerLabel,
		Users: []domain.UserSeries{
			{Label: domain.PersonMe, Series: meSeries},
			{Label: domain.PersonPartner, Series: partnerSeries},
		},
		Deltas: domain.SummaryDeltas{
			Me: domain.DeltaPair{
				VsYesterday: Delta(meSeries, today, 1),
				VsWeek:      Delta(meSeries, today, 7),
			},
			Partner: domain.DeltaPair{
				VsYesterday: Delta(partnerSeries, today, 1),
				VsWeek:      Delta(partnerSeries, today, 7),
			},
		},
	}, nil
}

// SummaryService builds summaries from the weigh-in store.
type SummaryService struct {
	weighIns repository.WeighInRepository
	members  repository.MemberRepository
	logger   *zap.Logger
}

func NewSummaryService(weighIns repository.WeighInRepository, members repository.MemberRepository, logger *zap.Logger) *SummaryService {
	return &SummaryService{weighIns: weighIns, members: members, logger: logger}
}

// BuildForHousehold fetches the household's rows and labels and delegates to
// the pure builder. The full list is fetched (it is small and cacheable);
// the projection restricts to the window.
func (s *SummaryService) BuildForHousehold(ctx context.Context, householdID, today string, rangeDays int) (domain.Summary, error) {
	records, err := s.weighIns.ListByHousehold(ctx, householdID)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("list weigh-ins: %w", err)
	}

	meLabel, partnerLabel, err := s.labels(ctx, householdID)
	if err != nil {
		return domain.Summary{}, err
	}

	return BuildSummary(records, today, rangeDays, meLabel, partnerLabel)
}

func (s *SummaryService) labels(ctx context.Context, householdID string) (string, string, error) {
	members, err := s.members.ListByHousehold(ctx, householdID)
	if err != nil {
		return "", "", fmt.Errorf("list members: %w", err)
	}

	var meLabel, partnerLabel string
	for _, m := range members {
		switch m.Person {
		case domain.PersonMe:
			meLabel = m.DisplayName
		case domain.PersonPartner:
			partnerLabel = m.DisplayName
		}
	}
	return meLabel, partnerLabel, nil
}
