package cmd

import "testing"

func TestResolveDelimiter(t *testing.T) {
	cases := []struct {
		flag, cfg string
		want      rune
		wantErr   bool
	}{
		{"", "", ',', false},
		{"", ",", ',', false},
		{";", ",", ';', false},
		{"tab", "", '\t', false},
		{"", ";", ';', false},
		{"|", "", 0, true},
	}
	for _, tc := range cases {
		got, err := resolveDelimiter(tc.flag, tc.cfg)
		if tc.wantErr {
			if err == nil {
				t.Errorf("resolveDelimiter(%q, %q): expected error", tc.flag, tc.cfg)
			}
			continue
		}
		if err != nil {
			t.Errorf("resolveDelimiter(%q, %q): %v", tc.flag, tc.cfg, err)
			continue
		}
		if got != tc.want {
			t.Errorf("resolveDelimiter(%q, %q) = %q, want %q", tc.flag, tc.cfg, got, tc.want)
		}
	}
}

func TestBuildAliasTableWithoutConfig(t *testing.T) {
	cfg = nil
	table := buildAliasTable()
	if table == nil {
		t.Fatal("expected a usable default table without loaded config")
	}
	if _, err := table.Resolve([]string{"Sale Amount"}); err != nil {
		t.Fatalf("default table should resolve price: %v", err)
	}
}
