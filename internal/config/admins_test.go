package config

import (
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"whitespace_only", "   ", nil, false},
		{"single", "42", []int64{42}, false},
		{"list", "1,2,3", []int64{1, 2, 3}, false},
		{"spaces", " 1 , 2 ,3 ", []int64{1, 2, 3}, false},
		{"empty_tokens_dropped", "1,,2,", []int64{1, 2}, false},
		{"negative_and_zero", "-5,0", []int64{-5, 0}, false},
		{"duplicates_kept", "7,7", []int64{7, 7}, false},
		{"one_bad_discards_all", "1,abc,3", nil, true},
		{"overflow", "99999999999999999999", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDList(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ожидали ошибку для %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("не ожидали ошибку: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("получили %v, ожидали %v", got, tt.want)
			}
		})
	}
}

func TestResolveAdmins(t *testing.T) {
	t.Run("legacy_seeds_empty_primary", func(t *testing.T) {
		unset(t, "PRIMARY_ADMIN_IDS", "SECONDARY_ADMIN_IDS")
		t.Setenv("ADMIN_ID", "42")

		primary, _, legacy := resolveAdmins(zap.NewNop())
		if !reflect.DeepEqual(primary, []int64{42}) {
			t.Fatalf("primary = %v, ожидали [42]", primary)
		}
		if legacy == nil || *legacy != 42 {
			t.Fatalf("legacy = %v, ожидали 42", legacy)
		}
	})

	t.Run("first_primary_seeds_empty_legacy", func(t *testing.T) {
		unset(t, "ADMIN_ID", "SECONDARY_ADMIN_IDS")
		t.Setenv("PRIMARY_ADMIN_IDS", "1,2,3")

		primary, _, legacy := resolveAdmins(zap.NewNop())
		if !reflect.DeepEqual(primary, []int64{1, 2, 3}) {
			t.Fatalf("primary = %v, ожидали [1 2 3]", primary)
		}
		if legacy == nil || *legacy != 1 {
			t.Fatalf("legacy = %v, ожидали 1", legacy)
		}
	})

	t.Run("primary_wins_over_legacy", func(t *testing.T) {
		unset(t, "SECONDARY_ADMIN_IDS")
		t.Setenv("PRIMARY_ADMIN_IDS", "1,2")
		t.Setenv("ADMIN_ID", "99")

		primary, _, legacy := resolveAdmins(zap.NewNop())
		if !reflect.DeepEqual(primary, []int64{1, 2}) {
			t.Fatalf("primary = %v, ожидали [1 2]", primary)
		}
		if legacy == nil || *legacy != 99 {
			t.Fatalf("legacy = %v, ожидали 99", legacy)
		}
	})

	t.Run("bad_primary_list_discarded_with_warning", func(t *testing.T) {
		unset(t, "ADMIN_ID", "SECONDARY_ADMIN_IDS")
		t.Setenv("PRIMARY_ADMIN_IDS", "1,abc,3")

		core, logs := observer.New(zapcore.WarnLevel)
		primary, _, legacy := resolveAdmins(zap.New(core))
		if len(primary) != 0 {
			t.Fatalf("список с мусором должен отбрасываться целиком, получили %v", primary)
		}
		if legacy != nil {
			t.Fatalf("legacy = %v, ожидали nil", *legacy)
		}
		if logs.FilterLevelExact(zapcore.WarnLevel).Len() == 0 {
			t.Fatal("ожидали warning про PRIMARY_ADMIN_IDS")
		}
	})

	t.Run("bad_legacy_logged_as_error", func(t *testing.T) {
		unset(t, "PRIMARY_ADMIN_IDS", "SECONDARY_ADMIN_IDS")
		t.Setenv("ADMIN_ID", "abc")

		core, logs := observer.New(zapcore.WarnLevel)
		primary, _, legacy := resolveAdmins(zap.New(core))
		if len(primary) != 0 || legacy != nil {
			t.Fatalf("ожидали пустой результат, получили primary=%v legacy=%v", primary, legacy)
		}
		if logs.FilterLevelExact(zapcore.ErrorLevel).Len() == 0 {
			t.Fatal("некорректный ADMIN_ID должен логироваться на уровне error")
		}
	})

	t.Run("bad_primary_then_legacy_fallback", func(t *testing.T) {
		unset(t, "SECONDARY_ADMIN_IDS")
		t.Setenv("PRIMARY_ADMIN_IDS", "1,abc")
		t.Setenv("ADMIN_ID", "50")

		primary, _, legacy := resolveAdmins(zap.NewNop())
		if !reflect.DeepEqual(primary, []int64{50}) {
			t.Fatalf("primary = %v, ожидали fallback на [50]", primary)
		}
		if legacy == nil || *legacy != 50 {
			t.Fatalf("legacy = %v, ожидали 50", legacy)
		}
	})

	t.Run("secondary_independent", func(t *testing.T) {
		unset(t, "PRIMARY_ADMIN_IDS", "ADMIN_ID")
		t.Setenv("SECONDARY_ADMIN_IDS", "7, 8")

		_, secondary, _ := resolveAdmins(zap.NewNop())
		if !reflect.DeepEqual(secondary, []int64{7, 8}) {
			t.Fatalf("secondary = %v, ожидали [7 8]", secondary)
		}
	})
}

func TestAdminPredicates(t *testing.T) {
	baseEnv(t)
	t.Setenv("PRIMARY_ADMIN_IDS", "1,2")
	t.Setenv("SECONDARY_ADMIN_IDS", "3")

	cfg, err := Load(zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	if !cfg.IsPrimaryAdmin(1) || !cfg.IsPrimaryAdmin(2) {
		t.Fatal("1 и 2 должны быть primary-админами")
	}
	if cfg.IsPrimaryAdmin(3) || cfg.IsSecondaryAdmin(1) {
		t.Fatal("уровни админки не должны пересекаться")
	}
	if !cfg.IsSecondaryAdmin(3) {
		t.Fatal("3 должен быть secondary-админом")
	}
	for _, id := range []int64{-10, -1, 0, 1, 2, 3, 4, 1 << 40} {
		want := cfg.IsPrimaryAdmin(id) || cfg.IsSecondaryAdmin(id)
		if got := cfg.IsAnyAdmin(id); got != want {
			t.Fatalf("IsAnyAdmin(%d) = %v, ожидали %v", id, got, want)
		}
	}
	if cfg.IsAnyAdmin(0) || cfg.IsAnyAdmin(-1) {
		t.Fatal("незнакомые id не должны считаться админами")
	}
}

func TestAdminPredicates_ZeroConfig(t *testing.T) {
	var cfg Config
	if cfg.IsPrimaryAdmin(1) || cfg.IsSecondaryAdmin(1) || cfg.IsAnyAdmin(1) {
		t.Fatal("нулевой Config не должен никого считать админом")
	}
}
