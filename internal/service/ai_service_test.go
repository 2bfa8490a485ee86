package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/dto"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/consts"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/llm"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const bestTimesJSON = `{
  "recommendedTimes": [
    {"hour": 10, "dayOfWeek": 2, "reason": "peak engagement"},
    {"hour": 15, "dayOfWeek": 4, "reason": "secondary peak"}
  ],
  "confidence": "high",
  "insights": "mornings win"
}`

const headlinesJSON = `{
  "headlines": ["H1", "H2", "H3", "H4", "H5"],
  "explanation": "curiosity driven"
}`

func seedPublished(repo *fakePostRepo, n int) {
	base := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		repo.posts = append(repo.posts, publishedPost(base.AddDate(0, 0, i), 1000, 100, 10, 5))
	}
}

func TestPredictBestTimesDefaultsBelowThreshold(t *testing.T) {
	repo := &fakePostRepo{}
	seedPublished(repo, MinHistoryPosts-1)
	model := &fakeModel{response: bestTimesJSON}
	svc := NewAIService(llm.NewClientWithModel(model, "test-model"), repo)

	out, err := svc.PredictBestTimes(context.Background())
	if err != nil {
		t.Fatalf("PredictBestTimes: %v", err)
	}

	if model.calls != 0 {
		t.Errorf("model called %d times, want 0 below threshold", model.calls)
	}
	if out.Confidence != ConfidenceLow {
		t.Errorf("confidence = %q, want %q", out.Confidence, ConfidenceLow)
	}
	if out.Message == "" {
		t.Error("expected default-path message")
	}
	if len(out.RecommendedTimes) != 3 {
		t.Fatalf("got %d recommended times, want 3", len(out.RecommendedTimes))
	}
	want := []llm.RecommendedSlot{
		{Hour: 9, DayOfWeek: 2, Reason: "Default recommendation: Tuesday 9 AM"},
		{Hour: 14, DayOfWeek: 4, Reason: "Default recommendation: Thursday 2 PM"},
		{Hour: 17, DayOfWeek: 6, Reason: "Default recommendation: Saturday 5 PM"},
	}
	for i, slot := range want {
		if out.RecommendedTimes[i] != slot {
			t.Errorf("recommendedTimes[%d] = %+v, want %+v", i, out.RecommendedTimes[i], slot)
		}
	}
}

func TestPredictBestTimesUsesModelAtThreshold(t *testing.T) {
	repo := &fakePostRepo{}
	seedPublished(repo, MinHistoryPosts)
	model := &fakeModel{response: bestTimesJSON}
	svc := NewAIService(llm.NewClientWithModel(model, "test-model"), repo)

	out, err := svc.PredictBestTimes(context.Background())
	if err != nil {
		t.Fatalf("PredictBestTimes: %v", err)
	}

	if model.calls != 1 {
		t.Errorf("model called %d times, want 1", model.calls)
	}
	if out.Confidence != "high" {
		t.Errorf("confidence = %q, want %q", out.Confidence, "high")
	}
	if len(out.RecommendedTimes) != 2 || out.RecommendedTimes[0].Hour != 10 {
		t.Errorf("unexpected recommendedTimes: %+v", out.RecommendedTimes)
	}
}

func TestPredictBestTimesModelFailure(t *testing.T) {
	repo := &fakePostRepo{}
	seedPublished(repo, MinHistoryPosts)
	model := &fakeModel{err: errors.New("upstream timeout")}
	svc := NewAIService(llm.NewClientWithModel(model, "test-model"), repo)

	if _, err := svc.PredictBestTimes(context.Background()); err == nil {
		t.Fatal("expected error when model fails above threshold")
	}
}

func TestPredictBestTimesMalformedReply(t *testing.T) {
	repo := &fakePostRepo{}
	seedPublished(repo, MinHistoryPosts)
	model := &fakeModel{response: "sorry, I cannot help with that"}
	svc := NewAIService(llm.NewClientWithModel(model, "test-model"), repo)

	if _, err := svc.PredictBestTimes(context.Background()); err == nil {
		t.Fatal("expected error for non-JSON model reply")
	}
}

func TestGenerateHeadlines(t *testing.T) {
	model := &fakeModel{response: "```json\n" + headlinesJSON + "\n```"}
	svc := NewAIService(llm.NewClientWithModel(model, "test-model"), &fakePostRepo{})

	out, err := svc.GenerateHeadlines(context.Background(), &dto.HeadlineRequestDTO{
		Content:  "long form article body",
		Category: "technology",
	})
	if err != nil {
		t.Fatalf("GenerateHeadlines: %v", err)
	}
	if len(out.Headlines) != 5 {
		t.Errorf("got %d headlines, want 5", len(out.Headlines))
	}
	if out.Explanation != "curiosity driven" {
		t.Errorf("explanation = %q", out.Explanation)
	}
}

func TestGenerateHeadlinesEmptyContent(t *testing.T) {
	model := &fakeModel{response: headlinesJSON}
	svc := NewAIService(llm.NewClientWithModel(model, "test-model"), &fakePostRepo{})

	_, err := svc.GenerateHeadlines(context.Background(), &dto.HeadlineRequestDTO{Content: "   "})
	if !errors.Is(err, ErrContentRequired) {
		t.Fatalf("err = %v, want ErrContentRequired", err)
	}
	if model.calls != 0 {
		t.Errorf("model called %d times, want 0 for empty content", model.calls)
	}
}

func TestAnalyzePost(t *testing.T) {
	repo := &fakePostRepo{}
	seedPublished(repo, MinHistoryPosts)
	target := &mongo.Post{
		ID:       primitive.NewObjectID(),
		Title:    "needs analysis",
		Content:  "article body",
		Status:   consts.PostStatusDraft,
		Category: "technology",
	}
	repo.posts = append(repo.posts, target)

	// 两次请求共用一个替身：先预测后标题，返回值按约定各自可解析即可
	model := &sequencedModel{responses: []string{bestTimesJSON, headlinesJSON}}
	svc := NewAIService(llm.NewClientWithModel(model, "test-model"), repo)

	out, err := svc.AnalyzePost(context.Background(), target.ID.Hex())
	if err != nil {
		t.Fatalf("AnalyzePost: %v", err)
	}

	if out.BestTimes == nil || out.Headlines == nil || out.Post == nil {
		t.Fatalf("incomplete result: %+v", out)
	}
	if out.Post.AISuggestions == nil {
		t.Fatal("expected aiSuggestions to be written back")
	}
	sug := out.Post.AISuggestions
	if sug.Confidence != "high" {
		t.Errorf("confidence = %q, want %q", sug.Confidence, "high")
	}
	if sug.RecommendedTime == nil || sug.RecommendedTime.Hour != 10 || sug.RecommendedTime.DayOfWeek != 2 {
		t.Errorf("recommendedTime = %+v, want top slot hour=10 dayOfWeek=2", sug.RecommendedTime)
	}
	if len(sug.RecommendedHeadlines) != 5 {
		t.Errorf("got %d headlines in suggestions, want 5", len(sug.RecommendedHeadlines))
	}

	if len(repo.updated) != 1 {
		t.Fatalf("repo updated %d times, want 1", len(repo.updated))
	}
	if repo.updated[0].AISuggestions == nil {
		t.Error("persisted post missing aiSuggestions")
	}
}

func TestAnalyzePostNotFound(t *testing.T) {
	model := &fakeModel{response: bestTimesJSON}
	svc := NewAIService(llm.NewClientWithModel(model, "test-model"), &fakePostRepo{})

	_, err := svc.AnalyzePost(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
	if model.calls != 0 {
		t.Errorf("model called %d times, want 0 for unknown post", model.calls)
	}
}
