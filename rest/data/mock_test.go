package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

type MockConnectorSuite struct {
	suite.Suite
	ctx context.Context
	mc  *MockConnector
}

func TestMockConnectorSuite(t *testing.T) {
	suite.Run(t, new(MockConnectorSuite))
}

func (s *MockConnectorSuite) SetupTest() {
	s.ctx = context.Background()
	s.mc = NewMockConnector()
}

func (s *MockConnectorSuite) TestInsertAndFind() {
	res, err := s.mc.InsertOne(s.ctx, "testdb", "widgets", map[string]any{"name": "one"})
	s.Require().NoError(err)
	s.NotEmpty(res.InsertedID)

	docs, err := s.mc.Find(s.ctx, "testdb", "widgets", nil, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Equal(res.InsertedID, docs[0]["_id"])
	s.Equal("one", docs[0]["name"])
}

func (s *MockConnectorSuite) TestInsertManyPreservesOrder() {
	docs := []any{
		map[string]any{"idx": 0},
		map[string]any{"idx": 1},
		map[string]any{"idx": 2},
	}
	res, err := s.mc.InsertMany(s.ctx, "testdb", "widgets", docs)
	s.Require().NoError(err)
	s.Len(res.InsertedIDs, 3)

	found, err := s.mc.Find(s.ctx, "testdb", "widgets", nil, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(found, 3)
	for i, doc := range found {
		s.Equal(res.InsertedIDs[i], doc["_id"])
	}
}

func (s *MockConnectorSuite) TestFindSkipAndLimit() {
	for i := 0; i < 5; i++ {
		_, err := s.mc.InsertOne(s.ctx, "testdb", "widgets", map[string]any{"idx": i})
		s.Require().NoError(err)
	}

	docs, err := s.mc.Find(s.ctx, "testdb", "widgets", nil, 2, 1)
	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Equal(2, docs[0]["idx"])

	// skip past the end
	docs, err = s.mc.Find(s.ctx, "testdb", "widgets", nil, 10, 0)
	s.Require().NoError(err)
	s.Empty(docs)
}

func (s *MockConnectorSuite) TestFindEqualityFilter() {
	_, err := s.mc.InsertMany(s.ctx, "testdb", "widgets", []any{
		map[string]any{"color": "red"},
		map[string]any{"color": "blue"},
		map[string]any{"color": "red"},
	})
	s.Require().NoError(err)

	docs, err := s.mc.Find(s.ctx, "testdb", "widgets", map[string]any{"color": "red"}, 0, 0)
	s.Require().NoError(err)
	s.Len(docs, 2)
}

func (s *MockConnectorSuite) TestAggregateMatchAndLimit() {
	_, err := s.mc.InsertMany(s.ctx, "testdb", "widgets", []any{
		map[string]any{"color": "red"},
		map[string]any{"color": "red"},
		map[string]any{"color": "blue"},
	})
	s.Require().NoError(err)

	pipeline := []any{
		map[string]any{"$match": map[string]any{"color": "red"}},
		map[string]any{"$limit": float64(1)},
	}
	docs, err := s.mc.Aggregate(s.ctx, "testdb", "widgets", pipeline)
	s.Require().NoError(err)
	s.Len(docs, 1)

	_, err = s.mc.Aggregate(s.ctx, "testdb", "widgets", []any{map[string]any{"$unwind": "$tags"}})
	s.Error(err)
}

func (s *MockConnectorSuite) TestUpdateOne() {
	_, err := s.mc.InsertMany(s.ctx, "testdb", "widgets", []any{
		map[string]any{"color": "red", "size": "s"},
		map[string]any{"color": "red", "size": "m"},
	})
	s.Require().NoError(err)

	res, err := s.mc.UpdateOne(s.ctx, "testdb", "widgets",
		map[string]any{"color": "red"},
		map[string]any{"$set": map[string]any{"size": "l"}})
	s.Require().NoError(err)
	s.Equal(int64(1), res.MatchedCount)
	s.Equal(int64(1), res.ModifiedCount)
	s.Nil(res.UpsertedID)
}

func (s *MockConnectorSuite) TestUpdateZeroMatches() {
	res, err := s.mc.UpdateOne(s.ctx, "testdb", "widgets",
		map[string]any{"color": "green"},
		map[string]any{"$set": map[string]any{"size": "l"}})
	s.Require().NoError(err)
	s.Equal(int64(0), res.MatchedCount)
	s.Equal(int64(0), res.ModifiedCount)
	s.Nil(res.UpsertedID)
}

func (s *MockConnectorSuite) TestUpdateManyCountsModifications() {
	_, err := s.mc.InsertMany(s.ctx, "testdb", "widgets", []any{
		map[string]any{"color": "red", "size": "s"},
		map[string]any{"color": "red", "size": "l"},
	})
	s.Require().NoError(err)

	res, err := s.mc.UpdateMany(s.ctx, "testdb", "widgets",
		map[string]any{"color": "red"},
		map[string]any{"$set": map[string]any{"size": "l"}})
	s.Require().NoError(err)
	s.Equal(int64(2), res.MatchedCount)
	// the second document already had size l
	s.Equal(int64(1), res.ModifiedCount)
}

func (s *MockConnectorSuite) TestDelete() {
	_, err := s.mc.InsertMany(s.ctx, "testdb", "widgets", []any{
		map[string]any{"color": "red"},
		map[string]any{"color": "red"},
		map[string]any{"color": "blue"},
	})
	s.Require().NoError(err)

	one, err := s.mc.DeleteOne(s.ctx, "testdb", "widgets", map[string]any{"color": "red"})
	s.Require().NoError(err)
	s.Equal(int64(1), one.DeletedCount)

	all, err := s.mc.DeleteMany(s.ctx, "testdb", "widgets", nil)
	s.Require().NoError(err)
	s.Equal(int64(2), all.DeletedCount)

	docs, err := s.mc.Find(s.ctx, "testdb", "widgets", nil, 0, 0)
	s.Require().NoError(err)
	s.Empty(docs)
}

func (s *MockConnectorSuite) TestNamespacesAreIsolated() {
	_, err := s.mc.InsertOne(s.ctx, "db1", "widgets", bson.M{"name": "a"})
	s.Require().NoError(err)

	docs, err := s.mc.Find(s.ctx, "db2", "widgets", nil, 0, 0)
	s.Require().NoError(err)
	s.Empty(docs)

	docs, err = s.mc.Find(s.ctx, "db1", "gadgets", nil, 0, 0)
	s.Require().NoError(err)
	s.Empty(docs)
}
