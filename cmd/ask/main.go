package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"duoscale/internal/config"
	"duoscale/internal/dateutil"
	"duoscale/internal/db"
	"duoscale/internal/domain"
	"duoscale/internal/llm"
	"duoscale/internal/repository"
	"duoscale/internal/service"
)

// Interactive terminal Q&A against a household's weigh-in data. With -demo a
// seeded in-memory store is used instead of Postgres.
func main() {
	demo := flag.Bool("demo", false, "use a seeded in-memory store instead of Postgres")
	householdID := flag.String("household", "demo-household", "household id to analyze")
	rangeDays := flag.Int("range", 30, "summary window in days")
	flag.Parse()

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil && !*demo {
		log.Fatal(err)
	}
	if cfg == nil {
		cfg = &config.Config{
			Timezone:        "Asia/Seoul",
			SelfKeywords:    []string{"나", "내", "저", "제"},
			PartnerKeywords: []string{"너", "네", "상대", "창창", "창희"},
		}
	}

	logger := zap.NewExample()
	defer logger.Sync()

	var (
		weighInRepo repository.WeighInRepository
		memberRepo  repository.MemberRepository
	)
	if *demo {
		weighInRepo, memberRepo = seedDemoStore(ctx, *householdID)
	} else {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		weighInRepo = repository.NewPgWeighInRepository(pool)
		memberRepo = repository.NewPgMemberRepository(pool)
	}

	var llmClient llm.Client
	if cfg.LLMEnabled() {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMMaxTokens, logger)
	}

	fallback := service.NewFallbackAnswerer(cfg.SelfKeywords, cfg.PartnerKeywords)
	transcripts := service.NewTranscriptRegistry()
	askSvc := service.NewAskService(llmClient, fallback, transcripts, logger)
	summarySvc := service.NewSummaryService(weighInRepo, memberRepo, logger)

	sessionID := uuid.NewString()
	today := dateutil.Today(cfg.Location())

	fmt.Printf("===== 체중 문답 (%s, 최근 %d일) =====\n", today, *rangeDays)
	fmt.Println("질문을 입력하세요. 빈 줄을 입력하면 종료합니다.")

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		question := strings.TrimSpace(line)
		if question == "" {
			break
		}

		summary, err := summarySvc.BuildForHousehold(ctx, *householdID, today, *rangeDays)
		if err != nil {
			log.Fatalf("build summary: %v", err)
		}

		answer, err := askSvc.Ask(ctx, sessionID, question, &summary)
		if err != nil {
			fmt.Printf("오류: %v\n", err)
			continue
		}
		fmt.Println(answer)
		fmt.Println()
	}

	messages := askSvc.Transcript(sessionID)
	if len(messages) > 0 {
		fmt.Printf("--- 대화 기록 (%d개) ---\n", len(messages))
		for _, m := range messages {
			fmt.Printf("[%s] %s\n", m.Role, firstLine(m.Content))
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func seedDemoStore(ctx context.Context, householdID string) (repository.WeighInRepository, repository.MemberRepository) {
	weighIns := repository.NewInMemoryWeighInRepository()
	members := repository.NewInMemoryMemberRepository()

	members.Put(householdID,
		domain.HouseholdMember{Person: domain.PersonMe, DisplayName: "창창"},
		domain.HouseholdMember{Person: domain.PersonPartner, DisplayName: "창희"},
	)

	today := dateutil.Today(time.FixedZone("KST", 9*60*60))
	seed := []struct {
		daysAgo int
		me      float64
		partner float64
		drank   bool
	}{
		{13, 71.2, 65.0, false},
		{10, 70.8, 64.8, true},
		{7, 70.5, 64.9, false},
		{5, 70.6, 64.5, false},
		{3, 70.1, 64.6, true},
		{1, 69.8, 64.4, false},
		{0, 69.9, 64.2, false},
	}
	for _, s := range seed {
		date, err := dateutil.AddDays(today, -s.daysAgo)
		if err != nil {
			continue
		}
		_ = weighIns.Upsert(ctx, householdID, domain.WeighIn{Date: date, Person: domain.PersonMe, WeightKg: s.me, Drank: s.drank})
		_ = weighIns.Upsert(ctx, householdID, domain.WeighIn{Date: date, Person: domain.PersonPartner, WeightKg: s.partner})
	}
	return weighIns, members
}
