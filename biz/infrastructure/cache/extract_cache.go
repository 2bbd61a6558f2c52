package cache

import (
	"context"
	"fmt"

	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/config"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/redis"

	"github.com/google/wire"
	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	extractTextCachePrefix = "extract_text"
	extractTextCacheExpire = 3600 // 1小时
)

// IExtractCacheMapper 缓存文件的提取文本, 供AI问答重复引用同一文件时使用
type IExtractCacheMapper interface {
	Get(ctx context.Context, fileID string) (string, error)
	Set(ctx context.Context, fileID string, text string) error
}

type ExtractCacheMapper struct {
	rds *gozero_redis.Redis
}

var ExtractCacheSet = wire.NewSet(
	NewExtractCacheMapper,
	wire.Bind(new(IExtractCacheMapper), new(*ExtractCacheMapper)),
)

func NewExtractCacheMapper(config *config.Config) *ExtractCacheMapper {
	m := &ExtractCacheMapper{}
	if config.Redis != nil {
		m.rds = redis.GetRedis(config)
	}
	return m
}

// Get 缓存未命中时返回error
func (m *ExtractCacheMapper) Get(ctx context.Context, fileID string) (string, error) {
	if m.rds == nil {
		return "", fmt.Errorf("cache disabled")
	}
	cached, err := m.rds.GetCtx(ctx, m.buildCacheKey(fileID))
	if err != nil {
		return "", err
	}
	if cached == "" {
		return "", fmt.Errorf("cache miss")
	}
	return cached, nil
}

func (m *ExtractCacheMapper) Set(ctx context.Context, fileID string, text string) error {
	if m.rds == nil {
		return nil
	}
	return m.rds.SetexCtx(ctx, m.buildCacheKey(fileID), text, extractTextCacheExpire)
}

// buildCacheKey 构造缓存key
func (m *ExtractCacheMapper) buildCacheKey(fileID string) string {
	return fmt.Sprintf("%s:%s", extractTextCachePrefix, fileID)
}
