package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lenslab-data/cvprimer/internal/scene"
)

// Preset is a saved camera configuration for the scene viewer: where
// the camera sits and what it looks at.
type Preset struct {
	PresetID    string     `json:"preset_id"`
	Name        string     `json:"name"`
	Position    scene.Vec3 `json:"position"`
	Target      scene.Vec3 `json:"target"`
	Description string     `json:"description,omitempty"`
	CreatedAtNs int64      `json:"created_at_ns"`
}

// InsertPreset stores a new preset. If p.PresetID is empty a new UUID
// is generated.
func (db *DB) InsertPreset(p *Preset) error {
	if p.PresetID == "" {
		p.PresetID = uuid.New().String()
	}
	if p.CreatedAtNs == 0 {
		p.CreatedAtNs = time.Now().UnixNano()
	}

	query := `
		INSERT INTO camera_presets (
			preset_id, name, pos_x, pos_y, pos_z,
			target_x, target_y, target_z, description, created_at_ns
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		p.PresetID, p.Name,
		p.Position[0], p.Position[1], p.Position[2],
		p.Target[0], p.Target[1], p.Target[2],
		nullString(p.Description),
		p.CreatedAtNs,
	)
	if err != nil {
		return fmt.Errorf("insert preset: %w", err)
	}
	return nil
}

// GetPreset retrieves a preset by ID.
func (db *DB) GetPreset(presetID string) (*Preset, error) {
	query := `
		SELECT preset_id, name, pos_x, pos_y, pos_z,
		       target_x, target_y, target_z, description, created_at_ns
		FROM camera_presets
		WHERE preset_id = ?
	`

	var p Preset
	var description sql.NullString
	err := db.QueryRow(query, presetID).Scan(
		&p.PresetID, &p.Name,
		&p.Position[0], &p.Position[1], &p.Position[2],
		&p.Target[0], &p.Target[1], &p.Target[2],
		&description, &p.CreatedAtNs,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("preset not found: %s", presetID)
	}
	if err != nil {
		return nil, fmt.Errorf("get preset: %w", err)
	}

	if description.Valid {
		p.Description = description.String
	}
	return &p, nil
}

// ListPresets retrieves all presets, newest first.
func (db *DB) ListPresets() ([]*Preset, error) {
	query := `
		SELECT preset_id, name, pos_x, pos_y, pos_z,
		       target_x, target_y, target_z, description, created_at_ns
		FROM camera_presets
		ORDER BY created_at_ns DESC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var presets []*Preset
	for rows.Next() {
		var p Preset
		var description sql.NullString
		if err := rows.Scan(
			&p.PresetID, &p.Name,
			&p.Position[0], &p.Position[1], &p.Position[2],
			&p.Target[0], &p.Target[1], &p.Target[2],
			&description, &p.CreatedAtNs,
		); err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		if description.Valid {
			p.Description = description.String
		}
		presets = append(presets, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate presets: %w", err)
	}
	return presets, nil
}

// DeletePreset removes a preset by ID. Deleting an unknown ID is an
// error so callers can surface typos.
func (db *DB) DeletePreset(presetID string) error {
	res, err := db.Exec(`DELETE FROM camera_presets WHERE preset_id = ?`, presetID)
	if err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete preset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("preset not found: %s", presetID)
	}
	return nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
