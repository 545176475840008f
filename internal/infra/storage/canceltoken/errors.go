package canceltoken

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен отмены не найден
	ErrTokenNotFound = errors.New("canceltoken.repository: token not found")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("canceltoken.repository: failed to encode record")

	// ErrDecode возвращается при ошибке десериализации записи
	ErrDecode = errors.New("canceltoken.repository: failed to decode record")

	// ErrExec возвращается при ошибке выполнения команды хранилища
	ErrExec = errors.New("canceltoken.repository: failed to execute command")
)
