package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/dto"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/consts"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/mongo"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

// csvHeader 导出列顺序为客户端约定的固定字段集
var csvHeader = []string{"title", "content", "scheduledTime", "status", "category", "tags"}

type PostService interface {
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, postID string) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, postID string, req *dto.PostUpdateDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, postID string) error
	ExportScheduledCSV(ctx context.Context) ([][]string, error)
}

type postServiceImpl struct {
	postRepo mongo.PostRepo
}

func NewPostService(postRepo mongo.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
	}
}

// ListPosts 全部帖子，创建时间倒序
func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return batchToPostDTO(posts)
}

// GetPost 获取单个帖子
func (s *postServiceImpl) GetPost(ctx context.Context, postID string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post)
}

// CreatePost 创建帖子，补默认值并重算互动率
func (s *postServiceImpl) CreatePost(ctx context.Context, req *dto.PostCreateDTO) (*dto.PostDTO, error) {
	post := &mongo.Post{}
	if err := copier.Copy(post, req); err != nil {
		return nil, err
	}

	if post.Status == "" {
		post.Status = consts.PostStatusDraft
	}
	if post.Category == "" {
		post.Category = consts.DefaultCategory
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	computeEngagementRate(&post.EngagementMetrics)

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return toPostDTO(post)
}

// UpdatePost 部分更新：合并到已存文档后整体保存，互动率重算
func (s *postServiceImpl) UpdatePost(ctx context.Context, postID string, req *dto.PostUpdateDTO) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	if req.ScheduledTime != nil {
		post.ScheduledTime = req.ScheduledTime
	}
	if req.PublishedTime != nil {
		post.PublishedTime = req.PublishedTime
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.EngagementMetrics != nil {
		if err := copier.Copy(&post.EngagementMetrics, req.EngagementMetrics); err != nil {
			return nil, err
		}
	}
	computeEngagementRate(&post.EngagementMetrics)

	if err := s.postRepo.Update(ctx, post); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return toPostDTO(post)
}

// DeletePost 删除帖子，未知 ID 返回不存在
func (s *postServiceImpl) DeletePost(ctx context.Context, postID string) error {
	deleted, err := s.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}
	return nil
}

// ExportScheduledCSV 导出待发布帖子，无数据时报错而不是给空文件
func (s *postServiceImpl) ExportScheduledCSV(ctx context.Context) ([][]string, error) {
	posts, err := s.postRepo.ListScheduled(ctx)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, ErrNoScheduledPosts
	}

	rows := make([][]string, 0, len(posts)+1)
	rows = append(rows, csvHeader)
	for _, post := range posts {
		scheduled := ""
		if post.ScheduledTime != nil {
			scheduled = post.ScheduledTime.Format(time.RFC3339)
		}
		rows = append(rows, []string{
			post.Title,
			post.Content,
			scheduled,
			post.Status,
			post.Category,
			strings.Join(post.Tags, ","),
		})
	}

	return rows, nil
}

// computeEngagementRate 每次保存前重算派生互动率
func computeEngagementRate(m *mongo.EngagementMetrics) {
	if m.Views > 0 {
		total := m.Likes + m.Shares + m.Comments
		m.EngagementRate = float64(total) / float64(m.Views) * 100
	} else {
		m.EngagementRate = 0
	}
}

// toPostDTO 将文档模型转换为返回给前端的 DTO
func toPostDTO(post *mongo.Post) (*dto.PostDTO, error) {
	out := &dto.PostDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}
	out.ID = post.ID.Hex()
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out, nil
}

// batchToPostDTO 批量转换辅助
func batchToPostDTO(posts []*mongo.Post) ([]*dto.PostDTO, error) {
	out := make([]*dto.PostDTO, len(posts))
	for i, post := range posts {
		item, err := toPostDTO(post)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
