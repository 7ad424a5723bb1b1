package adaptor

import (
	"class-hub/biz/application/dto/basic"
	"class-hub/biz/infrastructure/config"
	"class-hub/biz/infrastructure/util"
	"class-hub/biz/infrastructure/util/log"
	"context"
	"errors"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/zeromicro/go-zero/core/collection"
)

const hertzContext = "hertz_context"

const (
	identityCacheName   = "identity"
	identityCacheExpire = time.Minute
	identityCacheLimit  = 10000
)

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// IdentityResolver 解析请求身份, 解析结果按token做短TTL缓存,
// 缓存归属于持有者而不是包级全局, 便于测试时独立构造
type IdentityResolver struct {
	cache *collection.Cache
}

func NewIdentityResolver() (*IdentityResolver, error) {
	c, err := collection.NewCache(identityCacheExpire,
		collection.WithName(identityCacheName),
		collection.WithLimit(identityCacheLimit))
	if err != nil {
		return nil, err
	}
	return &IdentityResolver{cache: c}, nil
}

// Resolve 从请求中解析用户身份, 失败时返回空的UserMeta
func (r *IdentityResolver) Resolve(ctx context.Context) (user *basic.UserMeta) {
	user = new(basic.UserMeta)
	var err error
	defer func() {
		if err != nil {
			log.CtxInfo(ctx, "resolve user meta fail, err=%v", err)
		}
	}()
	c, err := ExtractContext(ctx)
	if err != nil {
		return
	}
	tokenString := string(c.GetHeader("Authorization"))
	if tokenString == "" {
		err = errors.New("empty authorization header")
		return
	}

	if cached, ok := r.cache.Get(tokenString); ok {
		if meta, ok := cached.(*basic.UserMeta); ok {
			return meta
		}
	}

	token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (interface{}, error) {
		return jwt.ParseECPublicKeyFromPEM([]byte(config.GetConfig().Auth.PublicKey))
	})
	if err != nil {
		return
	}
	if !token.Valid {
		err = errors.New("token is not valid")
		return
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           user,
	})
	if err != nil {
		return
	}
	err = decoder.Decode(map[string]any(token.Claims.(jwt.MapClaims)))
	if err != nil {
		return
	}
	if user.SessionUserId == "" {
		user.SessionUserId = user.UserId
	}
	if user.SessionAppId == 0 {
		user.SessionAppId = user.AppId
	}
	if user.SessionDeviceId == "" {
		user.SessionDeviceId = user.DeviceId
	}

	r.cache.Set(tokenString, user)
	log.CtxInfo(ctx, "userMeta=%s", util.JSONF(user))
	return
}
