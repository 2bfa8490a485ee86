package service

import (
	"context"
	"errors"
	"time"

	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/consts"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/mongo"
	"github.com/tmc/langchaingo/llms"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// fakePostRepo 内存实现，err 非空时所有操作直接失败
type fakePostRepo struct {
	posts []*mongo.Post
	err   error

	created []*mongo.Post
	updated []*mongo.Post
}

func (f *fakePostRepo) Create(_ context.Context, post *mongo.Post) error {
	if f.err != nil {
		return f.err
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	f.posts = append(f.posts, post)
	f.created = append(f.created, post)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (*mongo.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, post := range f.posts {
		if post.ID.Hex() == id {
			return post, nil
		}
	}
	return nil, nil
}

func (f *fakePostRepo) List(_ context.Context) ([]*mongo.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakePostRepo) ListPublished(_ context.Context) ([]*mongo.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*mongo.Post
	for _, post := range f.posts {
		if post.Status == consts.PostStatusPublished && post.PublishedTime != nil {
			out = append(out, post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListScheduled(_ context.Context) ([]*mongo.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*mongo.Post
	for _, post := range f.posts {
		if post.Status == consts.PostStatusScheduled {
			out = append(out, post)
		}
	}
	return out, nil
}

func (f *fakePostRepo) Update(_ context.Context, post *mongo.Post) error {
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.posts {
		if existing.ID == post.ID {
			post.UpdatedAt = time.Now()
			f.posts[i] = post
			f.updated = append(f.updated, post)
			return nil
		}
	}
	return mongodrv.ErrNoDocuments
}

func (f *fakePostRepo) Delete(_ context.Context, id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i, post := range f.posts {
		if post.ID.Hex() == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// fakeModel 固定返回 response 的模型替身，记录调用次数
type fakeModel struct {
	response string
	err      error
	calls    int
}

func (f *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: f.response},
		},
	}, nil
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// sequencedModel 依次返回预设回复，多段模型调用的场景用
type sequencedModel struct {
	responses []string
	calls     int
}

func (f *sequencedModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.calls >= len(f.responses) {
		return nil, errors.New("unexpected extra model call")
	}
	resp := f.responses[f.calls]
	f.calls++
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: resp},
		},
	}, nil
}

func (f *sequencedModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func publishedPost(at time.Time, views, likes, shares, comments int64) *mongo.Post {
	rate := float64(0)
	if views > 0 {
		rate = float64(likes+shares+comments) / float64(views) * 100
	}
	return &mongo.Post{
		ID:            primitive.NewObjectID(),
		Title:         "t",
		Content:       "c",
		Status:        consts.PostStatusPublished,
		PublishedTime: &at,
		EngagementMetrics: mongo.EngagementMetrics{
			Views:          views,
			Likes:          likes,
			Shares:         shares,
			Comments:       comments,
			EngagementRate: rate,
		},
		Category: "general",
		Tags:     []string{},
	}
}
