package database

import (
	"database/sql"
	"encoding/json"
	"time"
)

type Organization struct {
	ID   int64
	Slug string
	Name string
}

type Project struct {
	ID             int64
	OrganizationID int64
	Slug           string
	Name           string
}

type Release struct {
	ID             int64
	OrganizationID int64
	Version        string
	DateAdded      time.Time
}

type Deploy struct {
	ID            int64
	ReleaseID     int64
	EnvironmentID int64
	Name          sql.NullString
	URL           sql.NullString
	DateFinished  time.Time
}

type Environment struct {
	ID             int64
	OrganizationID int64
	Name           string
}

type Activity struct {
	ID        int64
	ProjectID int64
	Type      string
	Data      json.RawMessage
	CreatedAt time.Time
}
