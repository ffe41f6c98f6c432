package services

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/SscSPs/securities_vault/internal/core/domain"
	portssvc "github.com/SscSPs/securities_vault/internal/core/ports/services"
)

type documentService struct {
	BaseService
	ledger    *Ledger
	documents map[string]domain.Document
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func NewDocumentService(ledger *Ledger, access portssvc.AccessReaderSvc, opts ...ServiceOption) portssvc.DocumentSvcFacade {
	return &documentService{
		BaseService: newBaseService(access, opts),
		ledger:      ledger,
		documents:   make(map[string]domain.Document),
	}
}

// normalizeHash accepts 32 bytes of hex with or without the 0x prefix.
func normalizeHash(hash string) (string, error) {
	raw := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(hash)), "0x")
	if len(raw) != 64 {
		return "", fmt.Errorf("%w: document hash must be 32 bytes of hex", apperrors.ErrValidation)
	}
	if _, err := hex.DecodeString(raw); err != nil {
		return "", fmt.Errorf("%w: document hash is not hex", apperrors.ErrValidation)
	}
	return "0x" + raw, nil
}

// AddDocument creates or overwrites the record stored under name.
func (s *documentService) AddDocument(ctx context.Context, name, uri, hash string, caller domain.Address) (*domain.Document, error) {
	start := time.Now()
	var doc domain.Document
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleAdmin); err != nil {
			return err
		}
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: document name is required", apperrors.ErrValidation)
		}
		if strings.TrimSpace(uri) == "" {
			return fmt.Errorf("%w: document uri is required", apperrors.ErrValidation)
		}
		normalized, err := normalizeHash(hash)
		if err != nil {
			return err
		}

		doc = domain.Document{Name: name, URI: uri, Hash: normalized, Timestamp: s.ledger.now()}
		previous, existed := s.documents[name]
		s.documents[name] = doc
		uow.onRollback(func() {
			if existed {
				s.documents[name] = previous
				return
			}
			delete(s.documents, name)
		})
		uow.emit(domain.AuditEvent{
			Action:     domain.ActionDocumentAdded,
			Actor:      caller,
			Attributes: map[string]string{"name": name, "uri": uri, "hash": normalized},
			Timestamp:  doc.Timestamp,
		})
		return nil
	})
	if err = s.finish(ctx, "add_document", start, err, slog.String("name", name), slog.String("caller", caller.String())); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *documentService) RemoveDocument(ctx context.Context, name string, caller domain.Address) error {
	start := time.Now()
	_, err := s.ledger.execute(ctx, func(uow *unitOfWork) error {
		if err := s.AuthorizeCaller(ctx, caller, domain.RoleAdmin); err != nil {
			return err
		}
		previous, ok := s.documents[name]
		if !ok {
			return fmt.Errorf("%w: document %q", apperrors.ErrNotFound, name)
		}
		delete(s.documents, name)
		uow.onRollback(func() { s.documents[name] = previous })
		uow.emit(domain.AuditEvent{
			Action:     domain.ActionDocumentRemoved,
			Actor:      caller,
			Attributes: map[string]string{"name": name},
		})
		return nil
	})
	return s.finish(ctx, "remove_document", start, err, slog.String("name", name), slog.String("caller", caller.String()))
}

func (s *documentService) GetDocument(ctx context.Context, name string) (*domain.Document, error) {
	doc, ok := s.documents[name]
	if !ok {
		return nil, fmt.Errorf("%w: document %q", apperrors.ErrNotFound, name)
	}
	return &doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context) []domain.Document {
	docs := make([]domain.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs
}
