package provider

import (
	"class-hub/biz/adaptor"
	"class-hub/biz/application/service"
	"class-hub/biz/infrastructure/cache"
	"class-hub/biz/infrastructure/config"
	"class-hub/biz/infrastructure/repository/class"
	"class-hub/biz/infrastructure/repository/message"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config         *config.Config
	ClassService   service.IClassService
	ChannelService service.IChannelService
	MessageService service.IMessageService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.ClassServiceSet,
	service.ChannelServiceSet,
	service.MessageServiceSet,
	service.MembershipGateSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	adaptor.NewIdentityResolver,
	wire.Bind(new(service.Identity), new(*adaptor.IdentityResolver)),
	class.NewMongoMapper,
	wire.Bind(new(service.ClassStore), new(*class.MongoMapper)),
	message.NewMongoMapper,
	wire.Bind(new(service.MessageStore), new(*message.MongoMapper)),
	cache.NewMessageCacheMapper,
	wire.Bind(new(cache.IMessageCacheMapper), new(*cache.MessageCacheMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
