package class

import (
	"class-hub/biz/infrastructure/config"
	"class-hub/biz/infrastructure/consts"
	"class-hub/biz/infrastructure/util/log"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"context"
)

const (
	prefixClassCacheKey = "cache:class"
	ClassCollectionName = "class"
)

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper collection: %s", ClassCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, class *Class) error {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
		class.CreateTime = time.Now()
		class.UpdateTime = class.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, class)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindOneByInviteCode 按邀请码查找班级，只命中未过期的邀请码
func (m *MongoMapper) FindOneByInviteCode(ctx context.Context, code string, classId *string, now time.Time) (*Class, error) {
	filter := bson.M{
		consts.InvitationCode: code,
		consts.InvitationExp:  bson.M{consts.GreaterThan: now},
	}
	if classId != nil && *classId != "" {
		oid, err := primitive.ObjectIDFromHex(*classId)
		if err != nil {
			return nil, consts.ErrInvalidObjectId
		}
		filter[consts.ID] = oid
	}

	var c Class
	err := m.conn.FindOneNoCache(ctx, &c, filter)
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindByUser 查找用户作为教师或成员所在的班级
func (m *MongoMapper) FindByUser(ctx context.Context, userId string, page, pageSize int64) ([]*Class, int64, error) {
	var classes []*Class
	filter := bson.M{"$or": bson.A{
		bson.M{consts.Instructor: userId},
		bson.M{consts.Members: userId},
	}}

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return classes, total, nil
}

// AddMember 将用户加入成员列表, $addToSet 保证不重复
func (m *MongoMapper) AddMember(ctx context.Context, id string, userId string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$addToSet": bson.M{consts.Members: userId},
		"$set":      bson.M{consts.UpdateTime: time.Now()},
	})
	return err
}

// RemoveMember 将用户移出成员列表, 用户不在时为空操作
func (m *MongoMapper) RemoveMember(ctx context.Context, id string, userId string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$pull": bson.M{consts.Members: userId},
		"$set":  bson.M{consts.UpdateTime: time.Now()},
	})
	return err
}

// SetInvitation 写入邀请码和过期时间，无条件覆盖旧码
func (m *MongoMapper) SetInvitation(ctx context.Context, id string, code string, expires time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$set": bson.M{
			consts.InvitationCode: code,
			consts.InvitationExp:  expires,
			consts.UpdateTime:     time.Now(),
		},
	})
	return err
}

// ClearInvitation 清除邀请码和过期时间
func (m *MongoMapper) ClearInvitation(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$unset": bson.M{
			consts.InvitationCode: "",
			consts.InvitationExp:  "",
		},
		"$set": bson.M{consts.UpdateTime: time.Now()},
	})
	return err
}

// SetChannels 覆写频道列表, 首次新增自定义频道时会把默认频道一并落库
func (m *MongoMapper) SetChannels(ctx context.Context, id string, channels []string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateOneNoCache(ctx, bson.M{consts.ID: oid}, bson.M{
		"$set": bson.M{
			consts.Channels:   channels,
			consts.UpdateTime: time.Now(),
		},
	})
	return err
}

// ReassignInstructor 变更教师, 以先前读到的教师作为条件做CAS保护,
// 并发的角色变更只有一个会生效
func (m *MongoMapper) ReassignInstructor(ctx context.Context, id string, prevInstructor, newInstructor string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.ID:         oid,
		consts.Instructor: prevInstructor,
	}, bson.M{
		"$set": bson.M{
			consts.Instructor: newInstructor,
			consts.UpdateTime: time.Now(),
		},
		"$addToSet": bson.M{consts.Members: prevInstructor},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrUpdate
	}
	return nil
}

func (m *MongoMapper) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.DeleteOneNoCache(ctx, bson.M{consts.ID: oid})
	return err
}
