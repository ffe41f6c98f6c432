package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
	"github.com/SscSPs/securities_vault/internal/core/services"
	"github.com/stretchr/testify/suite"
)

const prospectusHash = "0x4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"

type DocumentServiceTestSuite struct {
	suite.Suite
	ctx  context.Context
	dep  *deployment
	docs portssvc.DocumentSvcFacade
}

func (s *DocumentServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.dep = newDeployment(s.Require())
	s.docs = services.NewDocumentService(s.dep.ledger, s.dep.access)
}

func TestDocumentServiceSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}

func (s *DocumentServiceTestSuite) TestAddAndOverwrite() {
	doc, err := s.docs.AddDocument(s.ctx, "prospectus", "ipfs://v1", strings.ToUpper(prospectusHash[2:]), admin)
	s.Require().NoError(err)
	s.Equal(prospectusHash, doc.Hash, "hashes are normalised to lower-case 0x hex")
	s.Equal(fixedNow, doc.Timestamp)

	_, err = s.docs.AddDocument(s.ctx, "prospectus", "ipfs://v2", prospectusHash, admin)
	s.Require().NoError(err)
	stored, err := s.docs.GetDocument(s.ctx, "prospectus")
	s.Require().NoError(err)
	s.Equal("ipfs://v2", stored.URI)

	event := s.dep.lastEvent(s.Require())
	s.Equal(domain.ActionDocumentAdded, event.Action)
	s.Equal("ipfs://v2", event.Attributes["uri"])
}

func (s *DocumentServiceTestSuite) TestValidation() {
	_, err := s.docs.AddDocument(s.ctx, "prospectus", "ipfs://v1", prospectusHash, alice)
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	_, err = s.docs.AddDocument(s.ctx, " ", "ipfs://v1", prospectusHash, admin)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.docs.AddDocument(s.ctx, "prospectus", "", prospectusHash, admin)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.docs.AddDocument(s.ctx, "prospectus", "ipfs://v1", "0xabc", admin)
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.docs.AddDocument(s.ctx, "prospectus", "ipfs://v1", "0x"+strings.Repeat("zz", 32), admin)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Empty(s.docs.ListDocuments(s.ctx))
}

func (s *DocumentServiceTestSuite) TestRemoveAndList() {
	for _, name := range []string{"terms", "prospectus"} {
		_, err := s.docs.AddDocument(s.ctx, name, "https://docs.example/"+name, prospectusHash, admin)
		s.Require().NoError(err)
	}

	docs := s.docs.ListDocuments(s.ctx)
	s.Require().Len(docs, 2)
	s.Equal("prospectus", docs[0].Name)

	s.Require().NoError(s.docs.RemoveDocument(s.ctx, "terms", admin))
	_, err := s.docs.GetDocument(s.ctx, "terms")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.docs.RemoveDocument(s.ctx, "terms", admin), apperrors.ErrNotFound)
	s.Equal(domain.ActionDocumentRemoved, s.dep.lastEvent(s.Require()).Action)
}
