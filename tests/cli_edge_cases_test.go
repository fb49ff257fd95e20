package tests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildDripBinary(t *testing.T) string {
	t.Helper()
	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("resolve repo root: %v", err)
	}
	binPath := filepath.Join(t.TempDir(), "drip")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build drip binary: %v\n%s", err, string(out))
	}
	return binPath
}

func runDrip(t *testing.T, binPath, dbPath string, args ...string) (string, string, int) {
	t.Helper()
	allArgs := append([]string{"--db", dbPath}, args...)
	cmd := exec.Command(binPath, allArgs...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0
	}
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("run drip command: %v", err)
	}
	return stdout.String(), stderr.String(), exitErr.ExitCode()
}

func initDB(t *testing.T, binPath, dbPath string) {
	t.Helper()
	_, stderr, exit := runDrip(t, binPath, dbPath, "init")
	if exit != 0 {
		t.Fatalf("init db failed: exit=%d stderr=%s", exit, stderr)
	}
}

func TestCLIRejectsNonPositiveAmount(t *testing.T) {
	binPath := buildDripBinary(t)
	dbPath := filepath.Join(t.TempDir(), "drip.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runDrip(t, binPath, dbPath,
		"log", "add",
		"--amount", "-250",
		"--drink", "water",
	)

	if exit == 0 {
		t.Fatalf("expected non-zero exit for negative amount")
	}
	if !strings.Contains(stderr, "amount must be > 0") {
		t.Fatalf("expected validation error in stderr, got: %s", stderr)
	}
}

func TestCLIRejectsTimeWithoutDate(t *testing.T) {
	binPath := buildDripBinary(t)
	dbPath := filepath.Join(t.TempDir(), "drip.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runDrip(t, binPath, dbPath,
		"log", "add",
		"--amount", "250",
		"--time", "08:30",
	)

	if exit == 0 {
		t.Fatalf("expected non-zero exit for --time without --date")
	}
	if !strings.Contains(stderr, "--date is required when --time is set") {
		t.Fatalf("expected date/time error in stderr, got: %s", stderr)
	}
}

func TestCLIRejectsUnknownUnit(t *testing.T) {
	binPath := buildDripBinary(t)
	dbPath := filepath.Join(t.TempDir(), "drip.db")
	initDB(t, binPath, dbPath)

	_, _, exit := runDrip(t, binPath, dbPath,
		"log", "add",
		"--amount", "250",
		"--unit", "gallon",
	)

	if exit == 0 {
		t.Fatalf("expected non-zero exit for unknown unit")
	}
}

func TestCLIDeleteMissingPortion(t *testing.T) {
	binPath := buildDripBinary(t)
	dbPath := filepath.Join(t.TempDir(), "drip.db")
	initDB(t, binPath, dbPath)

	_, stderr, exit := runDrip(t, binPath, dbPath, "log", "delete", "9999")
	if exit == 0 {
		t.Fatalf("expected non-zero exit when deleting missing portion")
	}
	if !strings.Contains(stderr, "not found") {
		t.Fatalf("expected not-found error in stderr, got: %s", stderr)
	}
}

func TestCLIPlanRequiresProfile(t *testing.T) {
	binPath := buildDripBinary(t)
	dbPath := filepath.Join(t.TempDir(), "drip.db")
	initDB(t, binPath, dbPath)

	_, _, exit := runDrip(t, binPath, dbPath, "plan")
	if exit == 0 {
		t.Fatalf("expected non-zero exit for plan without a profile")
	}
}

func TestCLIConfigRejectsUnknownKey(t *testing.T) {
	binPath := buildDripBinary(t)
	dbPath := filepath.Join(t.TempDir(), "drip.db")
	initDB(t, binPath, dbPath)

	_, _, exit := runDrip(t, binPath, dbPath, "config", "set", "color_scheme", "dark")
	if exit == 0 {
		t.Fatalf("expected non-zero exit for unknown config key")
	}
}

func TestCLIInitIsIdempotent(t *testing.T) {
	binPath := buildDripBinary(t)
	dbPath := filepath.Join(t.TempDir(), "drip.db")

	initDB(t, binPath, dbPath)
	initDB(t, binPath, dbPath)

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("expected db file to exist: %v", err)
	}
}
