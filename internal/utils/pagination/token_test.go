package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/securities_vault/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeSequenceToken(t *testing.T) {
	token := EncodeSequenceToken(42)
	assert.NotEmpty(t, token, "Token should not be empty")

	sequence, err := DecodeSequenceToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, uint64(42), sequence, "Sequence should match after decode")

	// Large sequence numbers survive the round trip
	big := uint64(1<<63 + 7)
	sequence, err = DecodeSequenceToken(EncodeSequenceToken(big))
	assert.NoError(t, err)
	assert.Equal(t, big, sequence)
}

func TestDecodeSequenceTokenError(t *testing.T) {
	// Test invalid base64
	_, err := DecodeSequenceToken("this is not base64!")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	// Test a history token passed where a sequence token is expected
	_, err = DecodeSequenceToken(EncodeHistoryToken(time.Now(), 3, "e3"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "split", "Error should mention splitting issue")

	// Test non-numeric sequence
	_, err = DecodeSequenceToken(base64.StdEncoding.EncodeToString([]byte("seq|abc")))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "sequence parse")

	// Sequence numbers start at 1
	_, err = DecodeSequenceToken(base64.StdEncoding.EncodeToString([]byte("seq|0")))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestEncodeDecodeHistoryToken(t *testing.T) {
	testDate := time.Date(2023, 5, 15, 10, 4, 5, 123456789, time.UTC)
	token := EncodeHistoryToken(testDate, 17, "6f1c2d0e-0000-4000-8000-000000000001")

	occurredAt, sequence, eventID, err := DecodeHistoryToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, testDate.Equal(occurredAt), "Date should match after decode")
	assert.Equal(t, uint64(17), sequence)
	assert.Equal(t, "6f1c2d0e-0000-4000-8000-000000000001", eventID)
}

func TestDecodeHistoryTokenError(t *testing.T) {
	_, _, _, err := DecodeHistoryToken("%%%")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, _, err = DecodeHistoryToken(EncodeSequenceToken(4))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "split")

	_, _, _, err = DecodeHistoryToken(base64.StdEncoding.EncodeToString([]byte("notadate|1|e1")))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "date parse", "Error should mention date parsing issue")

	_, _, _, err = DecodeHistoryToken(base64.StdEncoding.EncodeToString([]byte(time.Now().Format(time.RFC3339Nano) + "|x|e1")))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "sequence parse")
}
