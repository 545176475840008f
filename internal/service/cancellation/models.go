package cancellation

// IssuedToken результат выпуска токена отмены
type IssuedToken struct {
	Token     string // Непрозрачный токен, встраиваемый в URL
	CancelURL string // Полная ссылка отмены для письма клиенту
}
