package errors

import "errors"

// ================= 业务领域错误定义 =================
// Webhook 同步链路上的错误统一在此定义，Controller 用 errors.Is 映射为 HTTP 状态码

// ErrMissingSignatureHeaders 缺少 svix-id / svix-timestamp / svix-signature 任一请求头
// 对应 400，不访问数据库
var ErrMissingSignatureHeaders = errors.New("missing svix headers")

// ErrSignatureVerificationFailed 签名不匹配或时间戳超出容忍窗口
// 对应 400，不访问数据库
var ErrSignatureVerificationFailed = errors.New("webhook signature verification failed")

// ErrMalformedPayload 验签通过但 body 不是合法 JSON，或缺少事件必需字段
var ErrMalformedPayload = errors.New("malformed webhook payload")

// ErrStoreWriteFailure upsert 失败，对应 500，由 Clerk/Svix 负责重投
var ErrStoreWriteFailure = errors.New("user store write failed")

// ErrUserNotFound 用户尚未被 Webhook 同步到数据库
var ErrUserNotFound = errors.New("user not found in database")
