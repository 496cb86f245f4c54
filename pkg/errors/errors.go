package errors

import "errors"

func (d Definition) Error() string {
	return d.Message
}

// Definition 表示业务错误码及默认信息。
type Definition struct {
	Code    string
	Message string
}

// 认证相关错误。
var (
	Unauthorized           = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	InvalidCredentials     = Definition{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}
	EmailAlreadyRegistered = Definition{Code: "EMAIL_ALREADY_REGISTERED", Message: "Email already registered"}
	InvalidEmail           = Definition{Code: "INVALID_EMAIL", Message: "Invalid email address"}
	WeakPassword           = Definition{Code: "WEAK_PASSWORD", Message: "Password must be at least 8 characters"}
	OAuthProviderInvalid   = Definition{Code: "OAUTH_PROVIDER_INVALID", Message: "Unsupported OAuth provider"}
	OAuthStateInvalid      = Definition{Code: "OAUTH_STATE_INVALID", Message: "OAuth state expired or invalid"}
	InvalidUserID          = Definition{Code: "INVALID_USER_ID", Message: "Invalid user ID format"}
	UserNotFound           = Definition{Code: "USER_NOT_FOUND", Message: "User not found"}
)

// 提交模块错误。
var (
	InvalidRequest    = Definition{Code: "INVALID_REQUEST", Message: "Invalid request"}
	NameRequired      = Definition{Code: "NAME_REQUIRED", Message: "Name is required"}
	TooManyPhotos     = Definition{Code: "TOO_MANY_PHOTOS", Message: "At most 5 photos per submission"}
	SubmissionFailed  = Definition{Code: "SUBMISSION_FAILED", Message: "Submission failed"}
	UploadFailed      = Definition{Code: "UPLOAD_FAILED", Message: "Media upload failed"}
	UploadKindInvalid = Definition{Code: "UPLOAD_KIND_INVALID", Message: "Upload kind must be photos or selfies"}
)

// 通知模块错误。
var (
	NotificationFailed = Definition{Code: "NOTIFICATION_FAILED", Message: "Notification delivery failed"}
	UserFetchFailed    = Definition{Code: "USER_FETCH_FAILED", Message: "User fetch failed"}
)

// 通用错误。
var (
	TooManyRequests = Definition{Code: "TOO_MANY_REQUESTS", Message: "Too many requests"}
)

// 包内部使用的哨兵错误。
var (
	ErrTokenGeneratorNotInitialized = errors.New("token generator not initialized")
	ErrUnexpectedSigningMethod      = errors.New("unexpected signing method")
	ErrInvalidToken                 = errors.New("invalid token")
	ErrInvalidTokenClaims           = errors.New("invalid token claims")
	ErrInvalidTokenType             = errors.New("invalid token type")
	ErrUserIDNotFound               = errors.New("user id not found in token")
)

// SkipMessageError 消费者遇到已处理消息时返回，直接 ack 不重试
type SkipMessageError struct {
	Reason string
}

func (e *SkipMessageError) Error() string {
	return "skip message: " + e.Reason
}

// Lookup 提供错误码查询能力。
var Lookup = map[string]Definition{
	Unauthorized.Code:           Unauthorized,
	InvalidCredentials.Code:     InvalidCredentials,
	EmailAlreadyRegistered.Code: EmailAlreadyRegistered,
	InvalidEmail.Code:           InvalidEmail,
	WeakPassword.Code:           WeakPassword,
	OAuthProviderInvalid.Code:   OAuthProviderInvalid,
	OAuthStateInvalid.Code:      OAuthStateInvalid,
	InvalidUserID.Code:          InvalidUserID,
	UserNotFound.Code:           UserNotFound,
	InvalidRequest.Code:         InvalidRequest,
	NameRequired.Code:           NameRequired,
	TooManyPhotos.Code:          TooManyPhotos,
	SubmissionFailed.Code:       SubmissionFailed,
	UploadFailed.Code:           UploadFailed,
	UploadKindInvalid.Code:      UploadKindInvalid,
	NotificationFailed.Code:     NotificationFailed,
	UserFetchFailed.Code:        UserFetchFailed,
	TooManyRequests.Code:        TooManyRequests,
}

// Get 根据错误码返回 Definition，若不存在则返回空 Definition。
func Get(code string) Definition {
	if def, ok := Lookup[code]; ok {
		return def
	}
	return Definition{Code: code, Message: "Unexpected error"}
}
