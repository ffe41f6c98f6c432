package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/securities_vault/internal/apperrors"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

const sequencePrefix = "seq"

// EncodeSequenceToken creates an opaque token pointing just past the event with
// the given sequence number. Listings are newest first, so the next page holds
// the events with a smaller sequence.
func EncodeSequenceToken(sequence uint64) string {
	tokenStr := fmt.Sprintf("%s|%d", sequencePrefix, sequence)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeSequenceToken parses a token created by EncodeSequenceToken.
func DecodeSequenceToken(token string) (uint64, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid pagination token format (base64 decode): %v", apperrors.ErrValidation, err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[0] != sequencePrefix {
		return 0, fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}
	sequence, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil || sequence == 0 {
		return 0, fmt.Errorf("%w: invalid pagination token format (sequence parse)", apperrors.ErrValidation)
	}
	return sequence, nil
}

// EncodeHistoryToken creates a token pointing just past the history event
// identified by its timestamp, sequence and event ID. Several events can share
// a timestamp, so all three fields are needed to resume after one of them.
func EncodeHistoryToken(occurredAt time.Time, sequence uint64, eventID string) string {
	tokenStr := fmt.Sprintf("%s|%d|%s", occurredAt.Format(timeFormat), sequence, eventID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeHistoryToken parses a token created by EncodeHistoryToken.
func DecodeHistoryToken(token string) (time.Time, uint64, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, "", fmt.Errorf("%w: invalid pagination token format (base64 decode): %v", apperrors.ErrValidation, err)
	}

	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return time.Time{}, 0, "", fmt.Errorf("%w: invalid pagination token format (split)", apperrors.ErrValidation)
	}

	occurredAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, "", fmt.Errorf("%w: invalid pagination token format (date parse): %v", apperrors.ErrValidation, err)
	}
	sequence, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, "", fmt.Errorf("%w: invalid pagination token format (sequence parse)", apperrors.ErrValidation)
	}

	return occurredAt, sequence, parts[2], nil
}
