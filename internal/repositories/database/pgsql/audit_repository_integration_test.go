//go:build integration

package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/securities_vault/internal/core/domain"
	portsrepo "github.com/SscSPs/securities_vault/internal/core/ports/repositories"
	"github.com/SscSPs/securities_vault/pkg/database"
	"github.com/SscSPs/securities_vault/pkg/testutil/containers"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	investorA domain.Address = "0x0000000000000000000000000000000000000001"
	investorB domain.Address = "0x0000000000000000000000000000000000000002"
	adminAddr domain.Address = "0x00000000000000000000000000000000000000a1"
	assetAddr domain.AssetID = "0x000000000000000000000000000000000000aaaa"
)

type AuditRepositoryTestSuite struct {
	suite.Suite
	pg   *containers.PostgresContainer
	repo *PgxAuditRepository
	base time.Time
}

func TestAuditRepository(t *testing.T) {
	suite.Run(t, new(AuditRepositoryTestSuite))
}

func (s *AuditRepositoryTestSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	_, err := database.RunMigrations(s.pg.URL, "file://../../../../migrations")
	s.Require().NoError(err)
	s.repo = newPgxAuditRepository(s.pg.Pool).(*PgxAuditRepository)
	s.base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *AuditRepositoryTestSuite) TearDownSuite() {
	s.pg.Terminate(context.Background())
}

func (s *AuditRepositoryTestSuite) SetupTest() {
	_, err := s.pg.Pool.Exec(context.Background(), "TRUNCATE audit_events")
	s.Require().NoError(err)
}

func (s *AuditRepositoryTestSuite) event(seq uint64, action domain.AuditAction, actor domain.Address, accounts ...domain.Address) domain.AuditEvent {
	amount := decimal.NewFromInt(int64(seq) * 10)
	return domain.AuditEvent{
		EventID:   uuid.NewString(),
		Sequence:  seq,
		Action:    action,
		Actor:     actor,
		Accounts:  accounts,
		Asset:     assetAddr,
		Amount:    &amount,
		Timestamp: s.base.Add(time.Duration(seq) * time.Minute),
	}
}

func (s *AuditRepositoryTestSuite) TestAppendAndList() {
	ctx := context.Background()
	deposit := s.event(1, domain.ActionDeposited, investorA, investorA)
	deposit.RunningTotal = deposit.Amount
	forced := s.event(2, domain.ActionForcedTransfer, adminAddr, investorA, investorB)
	forced.Reason = "court order"
	pause := s.event(3, domain.ActionPaused, adminAddr)
	pause.Amount = nil
	pause.Asset = ""

	s.Require().NoError(s.repo.AppendAuditEvents(ctx, []domain.AuditEvent{deposit, forced, pause}))

	events, err := s.repo.ListAuditEventsByAccount(ctx, investorA, 10, nil)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(forced.EventID, events[0].EventID, "newest first")
	s.Equal("court order", events[0].Reason)
	s.Equal([]domain.Address{investorA, investorB}, events[0].Accounts)
	s.True(events[1].RunningTotal.Equal(decimal.NewFromInt(10)))
	s.True(events[1].Timestamp.Equal(deposit.Timestamp))

	adminEvents, err := s.repo.ListAuditEventsByAccount(ctx, adminAddr, 10, nil)
	s.Require().NoError(err)
	s.Require().Len(adminEvents, 2, "actor matches too")
	s.Empty(adminEvents[0].Asset)
	s.Nil(adminEvents[0].Amount)
}

func (s *AuditRepositoryTestSuite) TestAppendIsIdempotent() {
	ctx := context.Background()
	batch := []domain.AuditEvent{s.event(1, domain.ActionDeposited, investorA, investorA)}

	s.Require().NoError(s.repo.AppendAuditEvents(ctx, batch))
	s.Require().NoError(s.repo.AppendAuditEvents(ctx, batch), "redelivery is skipped")

	events, err := s.repo.ListAuditEventsByAccount(ctx, investorA, 10, nil)
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *AuditRepositoryTestSuite) TestListPagesBackwards() {
	ctx := context.Background()
	var batch []domain.AuditEvent
	for seq := uint64(1); seq <= 5; seq++ {
		batch = append(batch, s.event(seq, domain.ActionDeposited, investorB, investorB))
	}
	s.Require().NoError(s.repo.AppendAuditEvents(ctx, batch))

	page, err := s.repo.ListAuditEventsByAccount(ctx, investorB, 2, nil)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal(uint64(5), page[0].Sequence)

	before := cursorOf(page[1])
	page, err = s.repo.ListAuditEventsByAccount(ctx, investorB, 10, &before)
	s.Require().NoError(err)
	s.Require().Len(page, 3)
	s.Equal(uint64(3), page[0].Sequence)
	s.Equal(uint64(1), page[2].Sequence)
}

func (s *AuditRepositoryTestSuite) TestListPagesThroughSharedTimestamp() {
	ctx := context.Background()
	whitelisted := s.event(1, domain.ActionAddressWhitelisted, adminAddr, investorA)
	assigned := s.event(2, domain.ActionPartitionAssigned, adminAddr, investorA)
	assigned.Timestamp = whitelisted.Timestamp
	s.Require().NoError(s.repo.AppendAuditEvents(ctx, []domain.AuditEvent{whitelisted, assigned}))

	page, err := s.repo.ListAuditEventsByAccount(ctx, investorA, 1, nil)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal(assigned.EventID, page[0].EventID)

	before := cursorOf(page[0])
	page, err = s.repo.ListAuditEventsByAccount(ctx, investorA, 1, &before)
	s.Require().NoError(err)
	s.Require().Len(page, 1, "the second event of the same instant is not skipped")
	s.Equal(whitelisted.EventID, page[0].EventID)

	before = cursorOf(page[0])
	page, err = s.repo.ListAuditEventsByAccount(ctx, investorA, 1, &before)
	s.Require().NoError(err)
	s.Empty(page)
}

func cursorOf(event domain.AuditEvent) portsrepo.AuditCursor {
	return portsrepo.AuditCursor{OccurredAt: event.Timestamp, Sequence: event.Sequence, EventID: event.EventID}
}
