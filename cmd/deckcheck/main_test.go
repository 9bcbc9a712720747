package main

import (
	"os"
	"path/filepath"
	"testing"
)

const testTable = `{
  "elements": [
    {"tag": "Geometry", "children": ["Box"]},
    {"tag": "Box", "fields": [
      {"name": "xMin", "required": true, "grammar": "tuple:real:3"},
      {"name": "xMax", "required": true, "grammar": "tuple:real:3"}
    ]}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	table := writeFile(t, dir, "table.json", testTable)
	valid := writeFile(t, dir, "valid.xml",
		`<Geometry><Box xMin="{0,0,0}" xMax="{1,1,1}"/></Geometry>`)
	invalid := writeFile(t, dir, "invalid.xml",
		`<Geometry><Box xMin="{0,0}"/></Geometry>`)
	validJSON := writeFile(t, dir, "valid.json",
		`{"tag": "Geometry", "children": [{"tag": "Box", "attributes": {"xMin": "{0,0,0}", "xMax": "{1,1,1}"}}]}`)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "no args", args: nil, want: 2},
		{name: "missing schema flag", args: []string{valid}, want: 2},
		{name: "extra args", args: []string{"--schema", table, valid, invalid}, want: 2},
		{name: "valid xml", args: []string{"--schema", table, valid}, want: 0},
		{name: "valid json", args: []string{"--schema", table, validJSON}, want: 0},
		{name: "invalid deck", args: []string{"--schema", table, invalid}, want: 1},
		{name: "unreadable schema", args: []string{"--schema", filepath.Join(dir, "nope.json"), valid}, want: 1},
		{name: "unreadable deck", args: []string{"--schema", table, filepath.Join(dir, "nope.xml")}, want: 1},
		{name: "bad format", args: []string{"--schema", table, "--format", "toml", valid}, want: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := run(tc.args); got != tc.want {
				t.Fatalf("run(%v) = %d, want %d", tc.args, got, tc.want)
			}
		})
	}
}
