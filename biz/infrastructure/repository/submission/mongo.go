package submission

import (
	"context"
	"errors"
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
	prefixSubmissionCacheKey = "cache:submission"
	SubmissionCollectionName = "submission"
)

type Mapper interface {
	Insert(ctx context.Context, submission *Submission) error
	FindOne(ctx context.Context, id string) (*Submission, error)
	FindByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*Submission, error)
	FindByAssignmentID(ctx context.Context, assignmentID string) ([]*Submission, error)
	FindByAssignmentIDs(ctx context.Context, assignmentIDs []string) ([]*Submission, error)
	FindByStudentID(ctx context.Context, studentID string) ([]*Submission, error)
	FindAll(ctx context.Context) ([]*Submission, error)
	UpdateGrade(ctx context.Context, id string, grade int64, remarks string) error
}

type MongoMapper struct {
	conn *monc.Model
}

var MapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(Mapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewSubmissionMongoMapper collection: %s", SubmissionCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubmissionCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, submission *Submission) error {
	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
		submission.SubmitTime = time.Now()
		submission.UpdateTime = submission.SubmitTime
	}
	if submission.FileIDs == nil {
		submission.FileIDs = []string{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, submission)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Submission
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	if err != nil {
		return nil, consts.ErrNotFound
	}
	return &s, nil
}

// FindByAssignmentAndStudent 用于一人一份提交的唯一性检查
func (m *MongoMapper) FindByAssignmentAndStudent(ctx context.Context, assignmentID, studentID string) (*Submission, error) {
	var s Submission
	err := m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.AssignmentID: assignmentID,
		consts.StudentID:    studentID,
	})
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByAssignmentID(ctx context.Context, assignmentID string) ([]*Submission, error) {
	return m.findByFilter(ctx, bson.M{consts.AssignmentID: assignmentID})
}

func (m *MongoMapper) FindByAssignmentIDs(ctx context.Context, assignmentIDs []string) ([]*Submission, error) {
	return m.findByFilter(ctx, bson.M{consts.AssignmentID: bson.M{"$in": assignmentIDs}})
}

func (m *MongoMapper) FindByStudentID(ctx context.Context, studentID string) ([]*Submission, error) {
	return m.findByFilter(ctx, bson.M{consts.StudentID: studentID})
}

func (m *MongoMapper) FindAll(ctx context.Context) ([]*Submission, error) {
	return m.findByFilter(ctx, bson.M{})
}

func (m *MongoMapper) findByFilter(ctx context.Context, filter bson.M) ([]*Submission, error) {
	var submissions []*Submission
	limit := int64(consts.MaxListLimit * 5)
	err := m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Limit: &limit,
		Sort:  bson.M{"submit_time": 1},
	})
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (m *MongoMapper) UpdateGrade(ctx context.Context, id string, grade int64, remarks string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	_, err = m.conn.UpdateByIDNoCache(ctx, oid, bson.M{
		"$set": bson.M{
			"grade":       grade,
			"remarks":     remarks,
			"update_time": time.Now(),
		},
	})
	return err
}
