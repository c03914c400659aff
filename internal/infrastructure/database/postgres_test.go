package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConnectionString(t *testing.T) {
	db := NewPostgresDB(&DBConfig{
		Host:     "db",
		Port:     5432,
		Username: "app",
		Password: "secret",
		DBName:   "yamdb",
		SSLMode:  "require",
	})

	assert.Equal(t,
		"postgresql://app:secret@db:5432/yamdb?sslmode=require",
		db.buildConnectionString())
}

func TestBuildConnectionString_NoSSLMode(t *testing.T) {
	db := NewPostgresDB(&DBConfig{
		Host:     "localhost",
		Port:     5432,
		Username: "postgres",
		Password: "",
		DBName:   "yamdb",
	})

	assert.Equal(t,
		"postgresql://postgres:@localhost:5432/yamdb",
		db.buildConnectionString())
}
