package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseCmdPrintsNormalizedForm(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCmd(buf)
	cmd.SetArgs([]string{"parse", "1.2.3.4"})
	if err := cmd.Execute(); err != nil || !strings.Contains(buf.String(), "1.2.3.4") {
		t.Fatalf("parse failed: %v output=%s", err, buf.String())
	}
}

func TestParseCmdWildcardsFlag(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCmd(buf)
	cmd.SetArgs([]string{"parse", "--wildcards", "1.2.*.4"})
	if err := cmd.Execute(); err != nil || !strings.Contains(buf.String(), "1.2.*.4") {
		t.Fatalf("parse --wildcards failed: %v output=%s", err, buf.String())
	}
}

func TestMaskCmdAppliesPrefix(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCmd(buf)
	cmd.SetArgs([]string{"mask", "1.2.3.4", "/16"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("mask failed: %v", err)
	}
	if !strings.Contains(buf.String(), "1.2.") {
		t.Fatalf("unexpected mask output: %s", buf.String())
	}
}

func TestSpanCmdPrintsBlocks(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCmd(buf)
	cmd.SetArgs([]string{"span", "1.2.3.4", "1.2.3.7"})
	if err := cmd.Execute(); err != nil || !strings.Contains(buf.String(), "1.2.3.4/30") {
		t.Fatalf("span failed: %v output=%s", err, buf.String())
	}
}

func TestAllocateCmdServesSizes(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCmd(buf)
	cmd.SetArgs([]string{"allocate", "--reserved", "2", "192.168.10.0/24", "50", "30"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	lines := strings.Fields(strings.TrimSpace(buf.String()))
	if len(lines) != 2 {
		t.Fatalf("expected 2 allocated blocks, got %d: %s", len(lines), buf.String())
	}
}

func TestConvertCmdIPv4ToMapped(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCmd(buf)
	cmd.SetArgs([]string{"convert", "1.2.3.4"})
	if err := cmd.Execute(); err != nil || !strings.Contains(buf.String(), "::ffff:1.2.3.4") {
		t.Fatalf("convert failed: %v output=%s", err, buf.String())
	}
}

func TestRootCmdConfigPrefixMode(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCmd(buf)
	cmd.SetArgs([]string{"parse", "1.2.3.4/16"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !strings.Contains(buf.String(), "count: 65536") {
		t.Fatalf("expected default all-subnets prefix mode to expand to a /16 block, got: %s", buf.String())
	}
}
