package controller

// --- 响应结构定义 ---

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse Webhook 确认接收
type SuccessResponse struct {
	Success bool `json:"success"`
}

// UserResponse 用户资料响应结构
type UserResponse struct {
	ID        string  `json:"id"`
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	AvatarURL *string `json:"avatarUrl"`
	Phone     *string `json:"phone"`
	UpdatedAt string  `json:"updatedAt"`
}

// Webhook 错误响应文本（Svix 只看状态码，body 仅用于排查）
const (
	msgMissingHeaders = "Missing svix headers"
	msgVerifyFailed   = "Error verifying webhook"
	msgInvalidPayload = "Invalid webhook payload"
	msgBodyUnreadable = "Unable to read request body"
	msgUserSyncFailed = "User sync failed"
)
