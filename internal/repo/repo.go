// Package repo holds the persistence operations. Every function takes an
// explicit *gorm.DB handle through GormRepo; there is no package state.
package repo

import (
	"gorm.io/gorm"
)

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
