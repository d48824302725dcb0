package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestMarkers(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"ok", func(p *Printer) { p.OK("Created %s", "a.png") }, "✓ Created a.png\n"},
		{"fail", func(p *Printer) { p.Fail("Failed to create %s: %v", "b", "boom") }, "✗ Failed to create b: boom\n"},
		{"warn", func(p *Printer) { p.Warn("not critical") }, "⚠ not critical\n"},
		{"line", func(p *Printer) { p.Line("Created %s", "c.png") }, "Created c.png\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(New(&buf))
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestBanner(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	New(&buf).Banner("LDM Logo Variants Generator")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("banner has %d lines, want 3", len(lines))
	}
	if lines[1] != "LDM Logo Variants Generator" {
		t.Errorf("title line = %q", lines[1])
	}
	if lines[0] != lines[2] || strings.Trim(lines[0], "=") != "" {
		t.Errorf("rules = %q / %q", lines[0], lines[2])
	}
}
