package repository

import (
	"errors"
	"time"

	"estimate_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// versionCondition guards a full-record put: the row must exist, still carry
// the version the caller read, and keep its public token.
const versionCondition = "attribute_exists(#id) AND #version = :expected AND #public_token = :token"

func versionGuard(expected int64, token string) (*string, map[string]string, map[string]types.AttributeValue) {
	return aws.String(versionCondition),
		map[string]string{"#id": "id", "#version": "version", "#public_token": "public_token"},
		map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: formatInt(expected)},
			":token":    &types.AttributeValueMemberS{Value: token},
		}
}

// classifyConditionFailure turns a failed version guard into the repository
// contract: a missing row yields (true, nil) and a stale version yields
// (true, ErrVersionConflict).
func classifyConditionFailure(err error) (bool, error) {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		if len(cfe.Item) == 0 {
			return true, nil
		}
		return true, interfaces.ErrVersionConflict
	}
	return false, err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}
