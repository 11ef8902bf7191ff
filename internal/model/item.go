package model

import "time"

// Item — серверная модель записи инвентаря пользователя.
type Item struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Quantity int    `gorm:"not null" json:"quantity"`
	// Owner — идентификатор пользователя из токена, никогда не берётся из тела запроса
	Owner string `gorm:"not null;index" json:"owner"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
