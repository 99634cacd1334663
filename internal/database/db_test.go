package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "innkeep",
		Password: "s3cret",
		DBName:   "innkeep",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=innkeep password=s3cret dbname=innkeep sslmode=require",
		cfg.DSN())
}
