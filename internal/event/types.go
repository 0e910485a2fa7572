// internal/event/types.go
package event

const (
	GameStarted  EventType = "GameStarted"  // Первый клик снял паузу
	EnemySpawned EventType = "EnemySpawned" // Появился новый враг, Data — types.EntityID
	EnemyContact EventType = "EnemyContact" // Регион врага пересёк регион игрока, Data — types.EntityID
	PlayerCaught EventType = "PlayerCaught" // Игра окончена, отправляется один раз
)
