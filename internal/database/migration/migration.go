package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_accounts",
		SQL: `CREATE TABLE IF NOT EXISTS accounts (
  id             TEXT        PRIMARY KEY,
  full_name      TEXT        NOT NULL,
  email          TEXT        NOT NULL UNIQUE,
  contact_number TEXT        NOT NULL,
  roll_no        TEXT        NOT NULL,
  department     TEXT        NOT NULL,
  semester       INT         NOT NULL CHECK (semester BETWEEN 1 AND 8),
  batch          INT         NOT NULL,
  role           TEXT        NOT NULL CHECK (role IN ('student', 'admin')),
  created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_materials",
		SQL: `CREATE TABLE IF NOT EXISTS materials (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title         TEXT        NOT NULL,
  description   TEXT        NOT NULL,
  type          TEXT        NOT NULL CHECK (type IN ('past-paper', 'note', 'lab-manual')),
  department    TEXT        NOT NULL,
  semester      INT         NOT NULL CHECK (semester BETWEEN 1 AND 8),
  subject       TEXT        NOT NULL,
  file_url      TEXT        NOT NULL,
  file_name     TEXT        NOT NULL,
  file_size     BIGINT      NOT NULL CHECK (file_size >= 0),
  file_type     TEXT        NOT NULL,
  uploader_id   TEXT        NOT NULL REFERENCES accounts (id),
  uploader_name TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  status        TEXT        NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected'))
);`,
	},
	{
		Name: "create_index_materials_type_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_materials_type_status ON materials (type, status, created_at DESC);`,
	},
	{
		Name: "create_index_materials_uploader",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_materials_uploader ON materials (uploader_id, created_at DESC);`,
	},
	{
		Name: "create_index_materials_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_materials_status ON materials (status);`,
	},
}

// EnsureMigrated checks if the 'materials' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.materials') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
