//go:build integration

package redis_test

import (
	"context"
	"testing"

	"github.com/SscSPs/securities_vault/internal/adapters/oracle/redis"
	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	"github.com/SscSPs/securities_vault/pkg/testutil/containers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const asset domain.AssetID = "0x000000000000000000000000000000000000aaaa"

type PriceOracleSuite struct {
	suite.Suite
	redis  *containers.RedisContainer
	oracle *redis.PriceOracle
}

func TestPriceOracleSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PriceOracleSuite))
}

func (s *PriceOracleSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.oracle = redis.NewPriceOracle(s.redis.Client, "price:")
}

func (s *PriceOracleSuite) TearDownSuite() {
	s.redis.Terminate(context.Background())
}

func (s *PriceOracleSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *PriceOracleSuite) TestMissingPrice() {
	_, err := s.oracle.Price(context.Background(), asset)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PriceOracleSuite) TestSetAndGetPrice() {
	ctx := context.Background()
	s.Require().NoError(s.oracle.SetPrice(ctx, asset, decimal.RequireFromString("2.75")))

	price, err := s.oracle.Price(ctx, asset)
	s.Require().NoError(err)
	s.True(price.Equal(decimal.RequireFromString("2.75")))

	raw, err := s.redis.Client.Get(ctx, "price:"+asset.String()).Result()
	s.Require().NoError(err)
	s.Equal("2.75", raw)
}

func (s *PriceOracleSuite) TestRejectsMalformedPrice() {
	ctx := context.Background()
	s.Require().NoError(s.redis.Client.Set(ctx, "price:"+asset.String(), "two", 0).Err())

	_, err := s.oracle.Price(ctx, asset)
	s.ErrorContains(err, "not a decimal")
}

func (s *PriceOracleSuite) TestRejectsNegativePrice() {
	err := s.oracle.SetPrice(context.Background(), asset, decimal.NewFromInt(-1))
	s.ErrorIs(err, apperrors.ErrValidation)
}
