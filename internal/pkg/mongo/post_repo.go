package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/consts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepo interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	ListPublished(ctx context.Context) ([]*Post, error)
	ListScheduled(ctx context.Context) ([]*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id string) (bool, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection("posts"),
	}
}

// Create 插入帖子并回填生成的 ID
func (s *postRepoImpl) Create(ctx context.Context, post *Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	result, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

// GetByID 按 ID 查询，未找到或 ID 非法返回 (nil, nil)
func (s *postRepoImpl) GetByID(ctx context.Context, id string) (*Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var post Post
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// List 全部帖子，按创建时间倒序
func (s *postRepoImpl) List(ctx context.Context) ([]*Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.find(ctx, bson.M{}, opts)
}

// ListPublished 已发布且带发布时间的帖子，用于分析与预测
func (s *postRepoImpl) ListPublished(ctx context.Context) ([]*Post, error) {
	filter := bson.M{
		"status":         consts.PostStatusPublished,
		"published_time": bson.M{"$ne": nil},
	}
	return s.find(ctx, filter, options.Find())
}

// ListScheduled 待发布帖子，用于 CSV 导出
func (s *postRepoImpl) ListScheduled(ctx context.Context) ([]*Post, error) {
	filter := bson.M{"status": consts.PostStatusScheduled}
	return s.find(ctx, filter, options.Find())
}

// Update 整文档替换，未匹配到返回 mongo.ErrNoDocuments
func (s *postRepoImpl) Update(ctx context.Context, post *Post) error {
	post.UpdatedAt = time.Now()

	result, err := s.col.ReplaceOne(ctx, bson.M{"_id": post.ID}, post)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete 按 ID 删除，返回是否存在
func (s *postRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (s *postRepoImpl) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*Post, error) {
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var posts []*Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}
