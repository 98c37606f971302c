package constants

// ユーザーロール
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// エラーメッセージ
const (
	ErrBookNotFound      = "Book not found"
	ErrOrderNotFound     = "Order not found"
	ErrUnexpected        = "Unexpected error"
	ErrInvalidID         = "Invalid id"
	ErrInvalidInput      = "Invalid input"
	ErrUsernameTaken     = "Username already exists."
	ErrLoginFailed       = "Invalid username or password."
	ErrStockInsufficient = "Insufficient stock"
)

// セッションクッキー名
const SessionCookie = "bookstore_session"
