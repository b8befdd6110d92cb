package ports

import "context"

// RemoteCache — байтовый клиент удалённого кэша (внешняя зависимость).
// Содержимое значений для него непрозрачно — схему знает только кодек.
// Отсутствие ключа — это не ошибка: Get возвращает (nil, false, nil).
// Недоступность/сбой сигнализируются ошибкой, не sentinel-значением.
type RemoteCache interface {
	// Get — вернуть байты по ключу; (bytes, true, nil) при наличии,
	// (nil, false, nil) при отсутствии, (nil, false, err) при сбое.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set — сохранить байты по ключу.
	Set(ctx context.Context, key string, value []byte) error

	// Ping — проверка доступности удалённого кэша.
	Ping(ctx context.Context) error
}
