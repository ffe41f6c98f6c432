package services

import (
	"context"

	"github.com/SscSPs/securities_vault/internal/core/domain"
)

// DocumentSvcFacade defines the document registry operations
type DocumentSvcFacade interface {
	AddDocument(ctx context.Context, name, uri, hash string, caller domain.Address) (*domain.Document, error)
	RemoveDocument(ctx context.Context, name string, caller domain.Address) error
	GetDocument(ctx context.Context, name string) (*domain.Document, error)
	ListDocuments(ctx context.Context) []domain.Document
}
