package dto

// AddDocumentRequest defines the data needed to record a document.
// Name comes from the path. When Hash is empty it is computed from Content.
type AddDocumentRequest struct {
	URI     string `json:"uri" binding:"required"`
	Hash    string `json:"hash" binding:"required_without=Content"`
	Content string `json:"content"` // Optional raw content, only hashed, never stored
}
