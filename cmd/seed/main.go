package main

import (
	"context"
	"fmt"
	log "log/slog"
	"os"
	"time"

	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/api/config"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/consts"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/logger"
	"github.com/sksinha2410/Predictive-Content-Publishing-Scheduler/internal/pkg/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

// 预置示例数据：15 篇带互动数据的已发布帖子、2 篇草稿、2 篇待发布
func main() {
	if err := config.LoadConfig(); err != nil {
		fmt.Println("加载配置失败:", err)
		os.Exit(1)
	}

	logger.InitLogger()

	db, err := mongo.InitMongo(config.Cfg.Mongo)
	if err != nil {
		log.Error("MongoDB连接失败", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	col := db.Collection("posts")
	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		log.Error("清空帖子集合失败", "err", err)
		os.Exit(1)
	}
	log.Info("已清空帖子集合")

	repo := mongo.NewPostRepo(db)
	posts := samplePosts()
	for _, post := range posts {
		if err := repo.Create(ctx, post); err != nil {
			log.Error("写入示例帖子失败", "title", post.Title, "err", err)
			os.Exit(1)
		}
	}

	log.Info("示例数据写入完成", "count", len(posts))
}

func samplePosts() []*mongo.Post {
	now := time.Now()

	posts := []*mongo.Post{
		published("10 Tips for Effective Remote Work",
			"Working remotely has become the new normal for many professionals. Here are 10 essential tips to help you stay productive and maintain work-life balance while working from home...",
			"2024-01-15T09:00:00", "productivity", []string{"remote-work", "productivity", "tips"},
			1500, 145, 23, 18),
		published("The Future of AI in Content Creation",
			"Artificial Intelligence is revolutionizing the way we create and consume content. From automated writing assistants to AI-generated images, the landscape is changing rapidly...",
			"2024-01-17T14:00:00", "technology", []string{"ai", "content-creation", "future"},
			2300, 234, 45, 31),
		published("5 Marketing Strategies That Actually Work",
			"In today's crowded digital landscape, standing out requires more than just good content. Here are five proven marketing strategies that deliver real results...",
			"2024-01-19T10:30:00", "marketing", []string{"marketing", "strategy", "business"},
			1800, 167, 34, 22),
		published("Building Scalable Web Applications",
			"Learn the principles and best practices for building web applications that can handle growth. We'll cover architecture patterns, database optimization, and more...",
			"2024-01-22T15:00:00", "development", []string{"web-development", "scalability", "architecture"},
			1200, 98, 19, 14),
		published("Social Media Trends to Watch in 2024",
			"The social media landscape is constantly evolving. Here are the key trends that will shape how brands and creators engage with their audiences this year...",
			"2024-01-24T11:00:00", "social-media", []string{"social-media", "trends", "2024"},
			2800, 312, 67, 43),
		published("Understanding React Hooks: A Complete Guide",
			"React Hooks have transformed how we write React applications. This comprehensive guide covers useState, useEffect, and custom hooks with practical examples...",
			"2024-01-26T09:30:00", "development", []string{"react", "javascript", "tutorial"},
			3200, 389, 78, 56),
		published("Data Privacy in the Digital Age",
			"As our lives become increasingly digital, protecting personal data has never been more important. Learn about the latest privacy concerns and how to protect yourself...",
			"2024-01-29T13:00:00", "security", []string{"privacy", "security", "data-protection"},
			1950, 201, 41, 28),
		published("Mastering Time Management for Entrepreneurs",
			"Time is the most valuable resource for entrepreneurs. Discover proven techniques to maximize productivity, prioritize tasks, and achieve your business goals...",
			"2024-02-01T08:00:00", "business", []string{"time-management", "entrepreneurship", "productivity"},
			2100, 223, 48, 35),
		published("The Rise of Sustainable Tech",
			"Technology companies are increasingly focusing on sustainability. From green data centers to eco-friendly devices, here's how the industry is evolving...",
			"2024-02-03T16:00:00", "technology", []string{"sustainability", "green-tech", "environment"},
			1670, 154, 29, 21),
		published("Creating Engaging Video Content",
			"Video content dominates social media engagement. Learn the essential techniques for creating videos that capture attention and drive engagement...",
			"2024-02-05T12:00:00", "content-creation", []string{"video", "content", "engagement"},
			2650, 287, 59, 41),
		published("SEO Best Practices for 2024",
			"Search engine optimization continues to evolve. Stay ahead of the curve with these updated SEO strategies that work in today's competitive landscape...",
			"2024-02-07T10:00:00", "seo", []string{"seo", "search-optimization", "digital-marketing"},
			2450, 267, 52, 38),
		published("The Power of Email Marketing",
			"Despite new marketing channels, email remains one of the most effective tools for reaching customers. Learn how to craft compelling email campaigns...",
			"2024-02-09T14:30:00", "marketing", []string{"email-marketing", "campaigns", "conversion"},
			1890, 178, 36, 24),
		published("Building a Personal Brand Online",
			"Your personal brand is your professional reputation in the digital world. Here's a step-by-step guide to building and maintaining a strong online presence...",
			"2024-02-12T09:00:00", "personal-development", []string{"personal-brand", "career", "online-presence"},
			3100, 345, 71, 49),
		published("Cybersecurity Essentials for Small Businesses",
			"Small businesses are increasingly targeted by cyber attacks. Protect your company with these essential cybersecurity measures and best practices...",
			"2024-02-14T11:30:00", "security", []string{"cybersecurity", "small-business", "protection"},
			1730, 162, 31, 19),
		published("The Art of Storytelling in Marketing",
			"Great marketing tells a story. Learn how to craft compelling narratives that resonate with your audience and drive meaningful engagement...",
			"2024-02-16T13:00:00", "marketing", []string{"storytelling", "marketing", "content-strategy"},
			2230, 241, 49, 33),
		{
			Title:    "Upcoming: Cloud Computing Trends",
			Content:  "Exploring the latest trends in cloud computing including serverless architecture, edge computing, and multi-cloud strategies...",
			Status:   consts.PostStatusDraft,
			Category: "technology",
			Tags:     []string{"cloud", "computing", "trends"},
		},
		{
			Title:    "Draft: Mobile App Development Guide",
			Content:  "A comprehensive guide to building modern mobile applications with React Native and Flutter...",
			Status:   consts.PostStatusDraft,
			Category: "development",
			Tags:     []string{"mobile", "app-development", "react-native"},
		},
		scheduled("Scheduled: Digital Transformation in Healthcare",
			"How digital technologies are revolutionizing healthcare delivery and patient outcomes...",
			now.AddDate(0, 0, 7), "healthcare", []string{"digital-transformation", "healthcare", "technology"}),
		scheduled("Scheduled: The Future of E-commerce",
			"Emerging trends and technologies shaping the future of online retail and customer experience...",
			now.AddDate(0, 0, 10), "e-commerce", []string{"e-commerce", "retail", "trends"}),
	}

	return posts
}

func published(title, content, publishedAt, category string, tags []string, views, likes, shares, comments int64) *mongo.Post {
	t, err := time.ParseInLocation("2006-01-02T15:04:05", publishedAt, time.Local)
	if err != nil {
		panic(err)
	}

	metrics := mongo.EngagementMetrics{
		Views:    views,
		Likes:    likes,
		Shares:   shares,
		Comments: comments,
	}
	if views > 0 {
		metrics.EngagementRate = float64(likes+shares+comments) / float64(views) * 100
	}

	return &mongo.Post{
		Title:             title,
		Content:           content,
		Status:            consts.PostStatusPublished,
		PublishedTime:     &t,
		EngagementMetrics: metrics,
		Category:          category,
		Tags:              tags,
	}
}

func scheduled(title, content string, at time.Time, category string, tags []string) *mongo.Post {
	return &mongo.Post{
		Title:         title,
		Content:       content,
		Status:        consts.PostStatusScheduled,
		ScheduledTime: &at,
		Category:      category,
		Tags:          tags,
	}
}
