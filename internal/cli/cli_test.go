package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/propgen/internal/propgen"
)

func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateDefaultPreset(t *testing.T) {
	out, _, err := runCmd(t, GenerateCmd())
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	for _, want := range []string{
		"\t\tprivate int number = 0;\n\t\t[PropertyOrder(0)]\n",
		"private string name = \"\";",
		"private TypeEnum type = TypeEnum.Use;",
		"private int classNumber = 0;",
		"[PropertyOrder(28)]",
		"public int MaxDamage {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "[Category(") {
		t.Error("item preset should not carry a Category annotation")
	}
}

func TestGenerateDropsPreset(t *testing.T) {
	out, _, err := runCmd(t, GenerateCmd(), "drops")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if got := strings.Count(out, "[Category(\"Drops\")]"); got != 24 {
		t.Errorf("expected 24 Category annotations, got %d", got)
	}
	if !strings.Contains(out, "[PropertyOrder(9)]\n\t\t[Category(\"Drops\")]\n\t\tpublic int Drop1 {") {
		t.Error("first drop block not found at order 9")
	}
	if !strings.Contains(out, "[PropertyOrder(32)]") {
		t.Error("last drop block not found at order 32")
	}
}

func TestGenerateFlagOverrides(t *testing.T) {
	out, _, err := runCmd(t, GenerateCmd(), "start", "--start", "5", "--group", "Position")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "[PropertyOrder(5)]\n\t\t[Category(\"Position\")]\n\t\tpublic int StartMap {") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "private int id = 0;") {
		t.Errorf("expected id backing field:\n%s", out)
	}
}

func TestGenerateFieldsFlag(t *testing.T) {
	out, _, err := runCmd(t, GenerateCmd(), "--fields", "number,name:string", "--start", "1")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "[PropertyOrder(1)]\n\t\tpublic int Number {") {
		t.Errorf("expected Number at order 1:\n%s", out)
	}
	if !strings.Contains(out, "private string name = \"\";\n\t\t[PropertyOrder(2)]") {
		t.Errorf("expected name at order 2:\n%s", out)
	}
}

func TestGenerateForcedInt(t *testing.T) {
	out, _, err := runCmd(t, GenerateCmd(), "--fields", "name:string", "--infer=false")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "private int name = 0;") {
		t.Errorf("expected forced int field:\n%s", out)
	}
}

func TestGenerateUnknownType(t *testing.T) {
	out, _, err := runCmd(t, GenerateCmd(), "--fields", "number,weight:float")
	if err == nil {
		t.Fatal("expected unknown type error")
	}

	var ute *propgen.UnknownTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("error = %v, want *UnknownTypeError in chain", err)
	}
	if !strings.Contains(out, "public int Number {") {
		t.Errorf("expected blocks before the failure on stdout:\n%s", out)
	}
}

func TestGenerateUnknownPreset(t *testing.T) {
	_, _, err := runCmd(t, GenerateCmd(), "spawn")
	if err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestGenerateVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := runCmd(t, GenerateCmd(), "start", "-v")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(errOut, "rendered declaration") {
		t.Errorf("expected debug log on stderr, got %q", errOut)
	}
	if strings.Contains(out, "level=") {
		t.Error("log output leaked into stdout")
	}
}

func TestPresetsList(t *testing.T) {
	out, _, err := runCmd(t, PresetsCmd())
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, want := range []string{"item", "drops", "start", "group: Drops", "fields: 24, start: 9"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPresetsYAML(t *testing.T) {
	out, _, err := runCmd(t, PresetsCmd(), "--yaml")
	if err != nil {
		t.Fatalf("presets --yaml failed: %v", err)
	}

	var decoded []propgen.Preset
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(decoded))
	}
	if decoded[1].Options.GroupLabel != "Drops" {
		t.Errorf("expected drops group label, got %q", decoded[1].Options.GroupLabel)
	}
	if decoded[0].Fields[1].Type != propgen.TypeString {
		t.Errorf("expected item name field typed string, got %q", decoded[0].Fields[1].Type)
	}
}

func TestTypesList(t *testing.T) {
	out, _, err := runCmd(t, TypesCmd())
	if err != nil {
		t.Fatalf("types failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 types, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "SexEnum") || !strings.HasSuffix(lines[0], "SexEnum.All") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "string") || !strings.HasSuffix(lines[3], `""`) {
		t.Errorf("unexpected last line %q", lines[3])
	}
}

func TestConfigFromFlags(t *testing.T) {
	cmd := GenerateCmd()
	if err := cmd.ParseFlags([]string{"--fields", "number,name:string", "-v", "--start", "3"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	cfg, err := configFromFlags(cmd, []string{"drops"})
	if err != nil {
		t.Fatalf("configFromFlags failed: %v", err)
	}
	if cfg.Preset != "drops" {
		t.Errorf("expected preset drops, got %q", cfg.Preset)
	}
	if cfg.Fields != "number,name:string" {
		t.Errorf("expected fields flag, got %q", cfg.Fields)
	}
	if !cfg.Verbose {
		t.Error("expected verbose from -v")
	}
	if cfg.StartOrder == nil || *cfg.StartOrder != 3 {
		t.Errorf("expected start override 3, got %v", cfg.StartOrder)
	}
	if cfg.GroupLabel != nil || cfg.InferType != nil {
		t.Error("unset flags should not override the preset")
	}
}
