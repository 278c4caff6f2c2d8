package storage

import (
	"sync"

	"sportsdata/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	once sync.Once
	db   *gorm.DB
)

func GetDb() *gorm.DB {
	once.Do(func() {
		database, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{})
		if err != nil {
			panic(err)
		}

		db = database
	})

	return db
}
