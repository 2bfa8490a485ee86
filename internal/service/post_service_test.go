package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/dto"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/consts"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreatePostDefaults(t *testing.T) {
	repo := &fakePostRepo{}
	svc := NewPostService(repo)

	out, err := svc.CreatePost(context.Background(), &dto.PostCreateDTO{
		Title:   "hello",
		Content: "world",
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if out.Status != consts.PostStatusDraft {
		t.Errorf("status = %q, want %q", out.Status, consts.PostStatusDraft)
	}
	if out.Category != consts.DefaultCategory {
		t.Errorf("category = %q, want %q", out.Category, consts.DefaultCategory)
	}
	if out.Tags == nil || len(out.Tags) != 0 {
		t.Errorf("tags = %v, want empty non-nil slice", out.Tags)
	}
	if out.ID == "" || out.ID == primitive.NilObjectID.Hex() {
		t.Errorf("expected backfilled id, got %q", out.ID)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d posts, want 1", len(repo.created))
	}
}

func TestCreatePostComputesEngagementRate(t *testing.T) {
	repo := &fakePostRepo{}
	svc := NewPostService(repo)

	out, err := svc.CreatePost(context.Background(), &dto.PostCreateDTO{
		Title:   "hello",
		Content: "world",
		Status:  consts.PostStatusPublished,
		EngagementMetrics: &dto.EngagementMetricsDTO{
			Views:    1000,
			Likes:    80,
			Shares:   15,
			Comments: 5,
		},
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	// (80+15+5)/1000*100 = 10
	if out.EngagementMetrics.EngagementRate != 10 {
		t.Errorf("engagementRate = %v, want 10", out.EngagementMetrics.EngagementRate)
	}
}

func TestCreatePostZeroViewsRate(t *testing.T) {
	repo := &fakePostRepo{}
	svc := NewPostService(repo)

	out, err := svc.CreatePost(context.Background(), &dto.PostCreateDTO{
		Title:   "hello",
		Content: "world",
		EngagementMetrics: &dto.EngagementMetricsDTO{
			Likes: 50,
		},
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if out.EngagementMetrics.EngagementRate != 0 {
		t.Errorf("engagementRate = %v, want 0 when views == 0", out.EngagementMetrics.EngagementRate)
	}
}

func TestGetPostNotFound(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-a-hex-id"} {
		if _, err := svc.GetPost(context.Background(), id); !errors.Is(err, ErrPostNotFound) {
			t.Errorf("GetPost(%q) err = %v, want ErrPostNotFound", id, err)
		}
	}
}

func TestUpdatePostPartialMerge(t *testing.T) {
	scheduled := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	post := &mongo.Post{
		ID:       primitive.NewObjectID(),
		Title:    "old title",
		Content:  "old content",
		Status:   consts.PostStatusDraft,
		Category: "tech",
		Tags:     []string{"a"},
	}
	repo := &fakePostRepo{posts: []*mongo.Post{post}}
	svc := NewPostService(repo)

	newTitle := "new title"
	newStatus := consts.PostStatusScheduled
	out, err := svc.UpdatePost(context.Background(), post.ID.Hex(), &dto.PostUpdateDTO{
		Title:         &newTitle,
		Status:        &newStatus,
		ScheduledTime: &scheduled,
	})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}

	if out.Title != newTitle {
		t.Errorf("title = %q, want %q", out.Title, newTitle)
	}
	if out.Content != "old content" {
		t.Errorf("content = %q, want untouched", out.Content)
	}
	if out.Status != consts.PostStatusScheduled {
		t.Errorf("status = %q, want scheduled", out.Status)
	}
	if out.ScheduledTime == nil || !out.ScheduledTime.Equal(scheduled) {
		t.Errorf("scheduledTime = %v, want %v", out.ScheduledTime, scheduled)
	}
	if out.Category != "tech" {
		t.Errorf("category = %q, want untouched", out.Category)
	}
}

func TestUpdatePostRecomputesRate(t *testing.T) {
	post := &mongo.Post{
		ID:      primitive.NewObjectID(),
		Title:   "t",
		Content: "c",
		Status:  consts.PostStatusPublished,
		EngagementMetrics: mongo.EngagementMetrics{
			Views: 100, Likes: 10, EngagementRate: 10,
		},
	}
	repo := &fakePostRepo{posts: []*mongo.Post{post}}
	svc := NewPostService(repo)

	out, err := svc.UpdatePost(context.Background(), post.ID.Hex(), &dto.PostUpdateDTO{
		EngagementMetrics: &dto.EngagementMetricsDTO{
			Views: 200, Likes: 20, Shares: 20, Comments: 10,
		},
	})
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	// (20+20+10)/200*100 = 25
	if out.EngagementMetrics.EngagementRate != 25 {
		t.Errorf("engagementRate = %v, want 25", out.EngagementMetrics.EngagementRate)
	}
}

func TestUpdatePostNotFound(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	title := "x"
	_, err := svc.UpdatePost(context.Background(), primitive.NewObjectID().Hex(), &dto.PostUpdateDTO{Title: &title})
	if !errors.Is(err, ErrPostNotFound) {
		t.Errorf("err = %v, want ErrPostNotFound", err)
	}
}

func TestDeletePost(t *testing.T) {
	post := &mongo.Post{ID: primitive.NewObjectID(), Title: "t", Content: "c"}
	repo := &fakePostRepo{posts: []*mongo.Post{post}}
	svc := NewPostService(repo)

	if err := svc.DeletePost(context.Background(), post.ID.Hex()); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	if err := svc.DeletePost(context.Background(), post.ID.Hex()); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("second delete err = %v, want ErrPostNotFound", err)
	}
}

func TestExportScheduledCSV(t *testing.T) {
	at := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	repo := &fakePostRepo{posts: []*mongo.Post{
		{
			ID:            primitive.NewObjectID(),
			Title:         "scheduled one",
			Content:       "body",
			Status:        consts.PostStatusScheduled,
			ScheduledTime: &at,
			Category:      "tech",
			Tags:          []string{"a", "b"},
		},
		{
			ID:      primitive.NewObjectID(),
			Title:   "a draft",
			Content: "body",
			Status:  consts.PostStatusDraft,
		},
	}}
	svc := NewPostService(repo)

	rows, err := svc.ExportScheduledCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportScheduledCSV: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}
	wantHeader := []string{"title", "content", "scheduledTime", "status", "category", "tags"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
	row := rows[1]
	if row[0] != "scheduled one" {
		t.Errorf("title = %q", row[0])
	}
	if row[2] != at.Format(time.RFC3339) {
		t.Errorf("scheduledTime = %q, want RFC3339 %q", row[2], at.Format(time.RFC3339))
	}
	if row[5] != "a,b" {
		t.Errorf("tags = %q, want %q", row[5], "a,b")
	}
}

func TestExportScheduledCSVEmpty(t *testing.T) {
	svc := NewPostService(&fakePostRepo{})

	if _, err := svc.ExportScheduledCSV(context.Background()); !errors.Is(err, ErrNoScheduledPosts) {
		t.Errorf("err = %v, want ErrNoScheduledPosts", err)
	}
}
