package message

import (
	"class-hub/biz/infrastructure/config"
	"class-hub/biz/infrastructure/consts"
	"class-hub/biz/infrastructure/util/log"
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixMessageCacheKey = "cache:message"
	MessageCollectionName = "message"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewMessageMongoMapper collection: %s", MessageCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, MessageCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, msg *Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
		msg.CreateTime = time.Now()
		msg.UpdateTime = msg.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, msg)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var msg Message
	err = m.conn.FindOneNoCache(ctx, &msg, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &msg, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindByClassAndChannel 按班级和频道分页查询消息
func (m *MongoMapper) FindByClassAndChannel(ctx context.Context, classID, channel string, page, pageSize int64) ([]*Message, int64, error) {
	var messages []*Message
	filter := bson.M{
		consts.ClassID: classID,
		consts.Channel: channel,
	}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &messages, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// UpdateContent 更新消息内容, 只有内容编辑才会刷新 update_time
func (m *MongoMapper) UpdateContent(ctx context.Context, id string, content string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$set": bson.M{
			"content":         content,
			consts.UpdateTime: time.Now(),
		},
	})
	return err
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}

// DeleteByClassID 删除班级下的全部消息, 班级删除时级联调用
func (m *MongoMapper) DeleteByClassID(ctx context.Context, classID string) error {
	_, err := m.conn.DeleteMany(ctx, bson.M{consts.ClassID: classID})
	return err
}
