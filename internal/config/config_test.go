package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.CSVPath != "sales.csv" {
		t.Errorf("CSVPath = %q, want sales.csv", cfg.CSVPath)
	}
	if cfg.GroupChartPath != "sales_by_group.png" {
		t.Errorf("GroupChartPath = %q, want sales_by_group.png", cfg.GroupChartPath)
	}
	if cfg.TimeChartPath != "sales_over_time.png" {
		t.Errorf("TimeChartPath = %q, want sales_over_time.png", cfg.TimeChartPath)
	}
	if cfg.TopGroups != 10 {
		t.Errorf("TopGroups = %d, want 10", cfg.TopGroups)
	}
	if cfg.RecentMonths != 12 {
		t.Errorf("RecentMonths = %d, want 12", cfg.RecentMonths)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SALES_CSV", "q3.csv")
	t.Setenv("TOP_GROUPS", "25")
	t.Setenv("RECENT_MONTHS", "not-a-number")

	cfg := Load()
	if cfg.CSVPath != "q3.csv" {
		t.Errorf("CSVPath = %q, want q3.csv", cfg.CSVPath)
	}
	if cfg.TopGroups != 25 {
		t.Errorf("TopGroups = %d, want 25", cfg.TopGroups)
	}
	if cfg.RecentMonths != 12 {
		t.Errorf("RecentMonths = %d, want fallback 12 on bad value", cfg.RecentMonths)
	}
}
