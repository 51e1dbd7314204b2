package postgres

import (
	"database/sql"

	"alert-srv/internal/incident/repository"
	"alert-srv/pkg/log"
)

type implRepository struct {
	l  log.Logger
	db *sql.DB
}

// New creates a PostgreSQL-backed incident report repository.
func New(l log.Logger, db *sql.DB) repository.Repository {
	return &implRepository{l: l, db: db}
}
