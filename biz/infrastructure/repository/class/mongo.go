package class

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/config"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/consts"
	"github.com/mdtousif1712-create/prodigy-ai/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixClassCacheKey = "cache:class"
	ClassCollectionName = "class"
)

type Mapper interface {
	Insert(ctx context.Context, class *Class) error
	FindOne(ctx context.Context, id string) (*Class, error)
	FindOneByCode(ctx context.Context, code string) (*Class, error)
	FindByTeacher(ctx context.Context, teacherID string) ([]*Class, error)
	FindByStudent(ctx context.Context, studentID string) ([]*Class, error)
	AddStudent(ctx context.Context, id, studentID string) error
	RemoveStudent(ctx context.Context, id, studentID string) error
	Delete(ctx context.Context, id string) error
	SearchByTeacher(ctx context.Context, teacherID, keyword string) ([]*Class, error)
	SearchByStudent(ctx context.Context, studentID, keyword string) ([]*Class, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var MapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(Mapper), new(*MongoMapper)),
)

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
	if class.Students == nil {
		class.Students = []string{}
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
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &c, nil
}

func (m *MongoMapper) FindOneByCode(ctx context.Context, code string) (*Class, error) {
	var c Class
	err := m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ClassCode: code,
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

func (m *MongoMapper) FindByTeacher(ctx context.Context, teacherID string) ([]*Class, error) {
	return m.findByFilter(ctx, bson.M{consts.TeacherID: teacherID})
}

// FindByStudent 查询学生已加入的班级
func (m *MongoMapper) FindByStudent(ctx context.Context, studentID string) ([]*Class, error) {
	return m.findByFilter(ctx, bson.M{consts.Students: studentID})
}

func (m *MongoMapper) findByFilter(ctx context.Context, filter bson.M) ([]*Class, error) {
	var classes []*Class
	limit := int64(consts.MaxListLimit)
	err := m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// AddStudent 通过$addToSet保证重复加入不会产生重复成员
func (m *MongoMapper) AddStudent(ctx context.Context, id, studentID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$addToSet": bson.M{consts.Students: studentID},
		"$set":      bson.M{"update_time": time.Now()},
	})
	return err
}

func (m *MongoMapper) RemoveStudent(ctx context.Context, id, studentID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$pull": bson.M{consts.Students: studentID},
		"$set":  bson.M{"update_time": time.Now()},
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

// SearchByTeacher 在教师名下的班级中做大小写不敏感的子串匹配
func (m *MongoMapper) SearchByTeacher(ctx context.Context, teacherID, keyword string) ([]*Class, error) {
	return m.search(ctx, bson.M{consts.TeacherID: teacherID}, keyword)
}

// SearchByStudent 在学生已加入的班级中做大小写不敏感的子串匹配
func (m *MongoMapper) SearchByStudent(ctx context.Context, studentID, keyword string) ([]*Class, error) {
	return m.search(ctx, bson.M{consts.Students: studentID}, keyword)
}

func (m *MongoMapper) search(ctx context.Context, filter bson.M, keyword string) ([]*Class, error) {
	regex := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	filter["$or"] = bson.A{
		bson.M{"name": regex},
		bson.M{"subject": regex},
	}
	var classes []*Class
	limit := int64(consts.MaxSearchResults)
	err := m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Limit: &limit,
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}
