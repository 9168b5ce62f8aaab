package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	domainErrors "clerk-user-sync/domain/errors"
)

// Type Clerk 事件类型
type Type string

const (
	TypeUserCreated Type = "user.created"
	TypeUserUpdated Type = "user.updated"
	// TypeUserDeleted 已知但不处理，按 Other 透传
	TypeUserDeleted Type = "user.deleted"
)

// Event 验签后解析出的事件（封闭联合类型）
// 只有 UserCreated / UserUpdated / Other 三种实现
type Event interface {
	Type() Type
	sealed()
}

// UserCreated user.created
type UserCreated struct {
	User UserData
}

// UserUpdated user.updated
type UserUpdated struct {
	User UserData
}

// Other 其他任何事件类型，确认接收但不产生副作用
type Other struct {
	RawType string
}

func (UserCreated) Type() Type { return TypeUserCreated }
func (UserUpdated) Type() Type { return TypeUserUpdated }
func (o Other) Type() Type     { return Type(o.RawType) }

func (UserCreated) sealed() {}
func (UserUpdated) sealed() {}
func (Other) sealed()       {}

// envelope Clerk Webhook 外层结构
type envelope struct {
	Type   string          `json:"type"`
	Object string          `json:"object"`
	Data   json.RawMessage `json:"data"`
}

// Parse 把已验签的原始 body 解析为 Event
// 非法 JSON、缺少 type、用户事件缺少 data 或 data.id 均返回 ErrMalformedPayload
func Parse(body []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrMalformedPayload, err)
	}

	eventType := strings.TrimSpace(env.Type)
	if eventType == "" {
		return nil, fmt.Errorf("%w: missing event type", domainErrors.ErrMalformedPayload)
	}

	switch Type(eventType) {
	case TypeUserCreated:
		user, err := parseUserData(env.Data)
		if err != nil {
			return nil, err
		}
		return UserCreated{User: user}, nil
	case TypeUserUpdated:
		user, err := parseUserData(env.Data)
		if err != nil {
			return nil, err
		}
		return UserUpdated{User: user}, nil
	default:
		// 未知/未来的事件类型不能导致失败
		return Other{RawType: eventType}, nil
	}
}

func parseUserData(raw json.RawMessage) (UserData, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return UserData{}, fmt.Errorf("%w: missing data", domainErrors.ErrMalformedPayload)
	}

	var user UserData
	if err := json.Unmarshal(trimmed, &user); err != nil {
		return UserData{}, fmt.Errorf("%w: %v", domainErrors.ErrMalformedPayload, err)
	}
	if strings.TrimSpace(user.ID) == "" {
		return UserData{}, fmt.Errorf("%w: missing user id", domainErrors.ErrMalformedPayload)
	}
	return user, nil
}
