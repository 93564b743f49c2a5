package notify

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestConsole_WritesOneLinePerNotice(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Success("saved")
	c.Error("broke")
	c.Info("hello")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "saved") {
		t.Errorf("success line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "broke") {
		t.Errorf("error line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "hello") {
		t.Errorf("info line = %q", lines[2])
	}
}

func TestNop_Discards(t *testing.T) {
	// Must not panic; Nop is used wherever no front end is attached.
	var n Nop
	n.Success("a")
	n.Error("b")
	n.Info("c")
}
