package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/omrozmn/x-ear-sub003/internal/pricing"
	"github.com/omrozmn/x-ear-sub003/internal/repo"
	entsetting "github.com/omrozmn/x-ear-sub003/internal/repo/clinicsetting"
)

// KeySGKSchemes is the settings key holding the configured SGK scheme table.
const KeySGKSchemes = "sgk_schemes"

var ErrSettingNotFound = errors.New("setting not found")

// SchemeTableResult reports which table is in effect. Fallback means the
// built-in legacy table is serving because no table is configured — worth
// surfacing, since it can mask a misconfigured clinic.
type SchemeTableResult struct {
	Table    pricing.SchemeTable `json:"table"`
	Fallback bool                `json:"fallback"`
}

type Service interface {
	Get(ctx context.Context, key string) (map[string]any, error)
	Set(ctx context.Context, key string, value map[string]any) error
	SGKSchemes(ctx context.Context) (*SchemeTableResult, error)
	SetSGKSchemes(ctx context.Context, table pricing.SchemeTable) error
}

type settingsService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &settingsService{db: db}
}

func (s *settingsService) Get(ctx context.Context, key string) (map[string]any, error) {
	row, err := s.db.ClinicSetting.Query().
		Where(entsetting.Key(key)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("get setting %q: %w", key, err)
	}
	return row.Value, nil
}

func (s *settingsService) Set(ctx context.Context, key string, value map[string]any) error {
	err := s.db.ClinicSetting.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(entsetting.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

// SGKSchemes returns the effective subsidy table. The stored JSON is decoded
// through a marshal round-trip so the map[string]any settings value becomes
// typed scheme rules; rows that do not decode are dropped.
func (s *settingsService) SGKSchemes(ctx context.Context) (*SchemeTableResult, error) {
	var configured pricing.SchemeTable

	raw, err := s.Get(ctx, KeySGKSchemes)
	if err != nil && !errors.Is(err, ErrSettingNotFound) {
		return nil, err
	}
	if len(raw) > 0 {
		buf, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("encode sgk schemes: %w", err)
		}
		if err := json.Unmarshal(buf, &configured); err != nil {
			slog.Warn("settings: stored sgk scheme table is malformed, using fallback", "err", err)
			configured = nil
		}
	}

	table, fallback := pricing.EffectiveTable(configured)
	if fallback {
		slog.Warn("settings: no sgk scheme table configured, legacy fallback table in effect")
	}
	return &SchemeTableResult{Table: table, Fallback: fallback}, nil
}

func (s *settingsService) SetSGKSchemes(ctx context.Context, table pricing.SchemeTable) error {
	value := make(map[string]any, len(table))
	for k, rule := range table {
		value[k] = rule
	}
	return s.Set(ctx, KeySGKSchemes, value)
}
