package service

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
)

// RequestInfo describes the HTTP request that triggered a service call. It
// is copied into the metadata column of every log entry written for it.
type RequestInfo struct {
	RequestID string `json:"request_id,omitempty"`
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

type requestInfoKey struct{}

func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

func RequestInfoFrom(ctx context.Context) (RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(RequestInfo)
	return info, ok
}

func metadataFrom(ctx context.Context) datatypes.JSON {
	info, ok := RequestInfoFrom(ctx)
	if !ok || info == (RequestInfo{}) {
		return nil
	}
	raw, err := json.Marshal(info)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
