package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestModel struct {
	Name string
	Age  int
}

type MockMongoRepo struct {
	mock.Mock
}

func (m *MockMongoRepo) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, document, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockMongoRepo) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(*mongo.SingleResult)
}

func (m *MockMongoRepo) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, filter, update, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockMongoRepo) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.Cursor), args.Error(1)
}

func (m *MockMongoRepo) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreate(t *testing.T) {
	mockRepo := new(MockMongoRepo)
	repo := NewMongoRepository[TestModel](mockRepo)

	doc := TestModel{Name: "abcdef", Age: 25}
	expectedResult := &mongo.InsertOneResult{}

	mockRepo.On("InsertOne", mock.Anything, doc, mock.Anything).Return(expectedResult, nil)

	result, err := repo.Create(context.Background(), doc)

	assert.NoError(t, err)
	assert.Equal(t, expectedResult, result)
	mockRepo.AssertExpectations(t)
}

func TestCreateError(t *testing.T) {
	mockRepo := new(MockMongoRepo)
	repo := NewMongoRepository[TestModel](mockRepo)

	expectedErr := errors.New("insert failed")
	mockRepo.On("InsertOne", mock.Anything, mock.Anything, mock.Anything).Return(nil, expectedErr)

	_, err := repo.Create(context.Background(), TestModel{})

	assert.Equal(t, expectedErr, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateOne(t *testing.T) {
	mockRepo := new(MockMongoRepo)
	repo := NewMongoRepository[TestModel](mockRepo)

	filter := bson.M{"name": "abcdef"}
	update := bson.M{"age": 30}
	expectedResult := &mongo.UpdateResult{}

	mockRepo.On("UpdateOne", mock.Anything, filter, bson.M{"$set": update}, mock.Anything).Return(expectedResult, nil)

	err := repo.UpdateOne(context.Background(), filter, update)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUpdateOneError(t *testing.T) {
	mockRepo := new(MockMongoRepo)
	repo := NewMongoRepository[TestModel](mockRepo)

	expectedErr := errors.New("update failed")
	mockRepo.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, expectedErr)

	err := repo.UpdateOne(context.Background(), bson.M{}, bson.M{})

	assert.Equal(t, expectedErr, err)
	mockRepo.AssertExpectations(t)
}

func TestFind(t *testing.T) {
	mockRepo := new(MockMongoRepo)
	repo := NewMongoRepository[TestModel](mockRepo)

	docs := []interface{}{
		bson.D{{Key: "name", Value: "a"}, {Key: "age", Value: 1}},
		bson.D{{Key: "name", Value: "b"}, {Key: "age", Value: 2}},
	}
	cursor, err := mongo.NewCursorFromDocuments(docs, nil, nil)
	assert.NoError(t, err)

	filter := bson.M{"age": bson.M{"$gt": 0}}
	mockRepo.On("Find", mock.Anything, filter, mock.Anything).Return(cursor, nil)

	results, err := repo.Find(context.Background(), filter)

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestFindError(t *testing.T) {
	mockRepo := new(MockMongoRepo)
	repo := NewMongoRepository[TestModel](mockRepo)

	expectedErr := errors.New("find failed")
	mockRepo.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, expectedErr)

	_, err := repo.Find(context.Background(), bson.M{})

	assert.Equal(t, expectedErr, err)
	mockRepo.AssertExpectations(t)
}

func TestCountDocuments(t *testing.T) {
	mockRepo := new(MockMongoRepo)
	repo := NewMongoRepository[TestModel](mockRepo)

	mockRepo.On("CountDocuments", mock.Anything, mock.Anything, mock.Anything).Return(int64(3), nil)

	count, err := repo.CountDocuments(context.Background(), bson.M{})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	mockRepo.AssertExpectations(t)
}
