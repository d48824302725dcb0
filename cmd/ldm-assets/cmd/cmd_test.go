package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/ldm-project/ldm-assets/internal/logo"
)

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	var buf bytes.Buffer
	VersionCmd.SetOut(&buf)
	VersionCmd.Run(VersionCmd, nil)

	if strings.TrimSpace(buf.String()) != "1.2.3" {
		t.Errorf("version printed %q", buf.String())
	}
}

func TestRunLogoMissingSource(t *testing.T) {
	color.NoColor = true
	tmpDir := t.TempDir()

	logoDir = filepath.Join(tmpDir, "icons")
	logoSource = ""
	defer func() { logoDir, logoSource = "icons", "" }()

	var buf bytes.Buffer
	LogoCmd.SetOut(&buf)
	err := runLogo(LogoCmd)
	if !errors.Is(err, logo.ErrNoVariants) {
		t.Fatalf("runLogo = %v, want ErrNoVariants", err)
	}
	if !strings.Contains(buf.String(), filepath.Join(logoDir, "logo-ldm-opensource.svg")) {
		t.Errorf("default source not derived from --dir:\n%s", buf.String())
	}
}

func TestRunLogoExplicitSource(t *testing.T) {
	color.NoColor = true
	tmpDir := t.TempDir()

	svg := filepath.Join(tmpDir, "artwork.svg")
	content := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="#3498db"/></svg>`
	if err := os.WriteFile(svg, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	logoDir = filepath.Join(tmpDir, "out")
	logoSource = svg
	defer func() { logoDir, logoSource = "icons", "" }()

	var buf bytes.Buffer
	LogoCmd.SetOut(&buf)
	if err := runLogo(LogoCmd); err != nil {
		t.Fatalf("runLogo: %v\n%s", err, buf.String())
	}
	if _, err := os.Stat(filepath.Join(logoDir, "logo-ldm-512.png")); err != nil {
		t.Error(err)
	}
}
