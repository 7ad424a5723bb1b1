package cache

import (
	"class-hub/biz/application/dto/hub"
	"class-hub/biz/infrastructure/config"
	"class-hub/biz/infrastructure/redis"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	messagePageCachePrefix = "message_page"
	messagePageCacheExpire = 30 // 秒, 消息列表只做短暂缓存
)

type IMessageCacheMapper interface {
	Get(ctx context.Context, classId, channel string, page, limit int64) (*hub.ListMessagesResp, error)
	Set(ctx context.Context, classId, channel string, page, limit int64, data *hub.ListMessagesResp) error
	Delete(ctx context.Context, classId, channel string) error
}

type MessageCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewMessageCacheMapper(config *config.Config) *MessageCacheMapper {
	return &MessageCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取消息分页
func (m *MessageCacheMapper) Get(ctx context.Context, classId, channel string, page, limit int64) (*hub.ListMessagesResp, error) {
	cacheKey := m.buildCacheKey(classId, channel, page, limit)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var result hub.ListMessagesResp
	if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return &result, nil
}

// Set 将消息分页存入缓存
func (m *MessageCacheMapper) Set(ctx context.Context, classId, channel string, page, limit int64, data *hub.ListMessagesResp) error {
	cacheKey := m.buildCacheKey(classId, channel, page, limit)

	resultBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, cacheKey, string(resultBytes), messagePageCacheExpire)
}

// Delete 消息发生变更时使首页缓存失效, 其余分页靠短TTL过期
func (m *MessageCacheMapper) Delete(ctx context.Context, classId, channel string) error {
	cacheKey := m.buildCacheKey(classId, channel, 1, 10)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

// buildCacheKey 构造缓存key
func (m *MessageCacheMapper) buildCacheKey(classId, channel string, page, limit int64) string {
	return fmt.Sprintf("%s:%s:%s:%s:%s", messagePageCachePrefix, classId, channel,
		cast.ToString(page), cast.ToString(limit))
}
