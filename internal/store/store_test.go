package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/iwvelando/solar-forecast/internal/settings"
	"github.com/iwvelando/solar-forecast/internal/tariff"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	return s
}

func TestPutLoadDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.Put(ctx, "fr_electricity_price", "0.31"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Put(ctx, settings.KeyBelgiumProsumerTax, "80"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Put(ctx, settings.KeyBelgiumProsumerTax, "85"); err != nil {
		t.Fatalf("Put() overwrite error = %v", err)
	}

	d, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(d) != 2 {
		t.Fatalf("expected 2 settings, got %v", d)
	}
	if d[settings.KeyFranceElectricityPrice] != "0.31" {
		t.Errorf("key should be upper-cased, got %v", d)
	}
	if got := settings.Resolve(d, settings.KeyBelgiumProsumerTax, 0); got != 85 {
		t.Errorf("Resolve() = %v, expected overwritten value 85", got)
	}

	if err := s.Delete(ctx, settings.KeyBelgiumProsumerTax); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete(ctx, "MISSING"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}

	d, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := d[settings.KeyBelgiumProsumerTax]; ok {
		t.Errorf("deleted key still present: %v", d)
	}
}

func TestPutRejectsEmptyKey(t *testing.T) {
	s := openTestStore(t)
	if err := s.Put(context.Background(), "  ", "1"); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	s := openTestStore(t)
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Errorf("second EnsureSchema() error = %v", err)
	}
}

func TestStoredValuesFeedTariffs(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if err := s.Put(ctx, settings.KeyFranceCostPerKwc, "2000"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Put(ctx, settings.KeyBelgiumInjectionPrice, "not-a-number"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	d, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	got := tariff.FromSettings(d)
	if got.France.CostPerKwc != 2000 {
		t.Errorf("France.CostPerKwc = %v, expected 2000", got.France.CostPerKwc)
	}
	if got.Belgium.InjectionPrice != tariff.Default().Belgium.InjectionPrice {
		t.Errorf("invalid stored value should fall back, got %v", got.Belgium.InjectionPrice)
	}
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()

	d, err := LoadFile(ctx, "")
	if err != nil || len(d) != 0 {
		t.Fatalf("LoadFile(\"\") = %v, %v; expected empty dictionary", d, err)
	}

	path := filepath.Join(t.TempDir(), "settings.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	if err := s.Put(ctx, settings.KeyBatteryLargeCost, "6500"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	_ = s.Close()

	d, err = LoadFile(ctx, path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := settings.Resolve(d, settings.KeyBatteryLargeCost, 0); got != 6500 {
		t.Errorf("Resolve() = %v, expected 6500", got)
	}
}
