package sysutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSetLogLevel_AllVariants(t *testing.T) {
	orig := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(orig) })

	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"  DeBuG  ", zerolog.DebugLevel}, // case + trim
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel}, // empty -> info
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel}, // alias
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"unknown", zerolog.InfoLevel}, // default
	}

	for _, tc := range cases {
		SetLogLevel(tc.in)
		if got := zerolog.GlobalLevel(); got != tc.want {
			t.Fatalf("SetLogLevel(%q) -> %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	trues := []string{"1", "true", "TRUE", " yes ", "Y", "on", "On"}
	falses := []string{"", "0", "false", "no", "off", "n", "  ", "random"}

	for _, v := range trues {
		if !IsTruthy(v) {
			t.Fatalf("IsTruthy(%q) = false; want true", v)
		}
	}
	for _, v := range falses {
		if IsTruthy(v) {
			t.Fatalf("IsTruthy(%q) = true; want false", v)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	// no args -> ""
	if got := FirstNonEmpty(); got != "" {
		t.Fatalf("FirstNonEmpty() = %q; want \"\"", got)
	}
	// only empties -> ""
	if got := FirstNonEmpty(" ", "\t", "\n"); got != "" {
		t.Fatalf("FirstNonEmpty(empties) = %q; want \"\"", got)
	}
	// picks first non-empty (preserves original spacing)
	if got := FirstNonEmpty("   ", "  hello  ", "world"); got != "  hello  " {
		t.Fatalf("FirstNonEmpty(...) = %q; want %q", got, "  hello  ")
	}
	// first already non-empty
	if got := FirstNonEmpty("alpha", "beta"); got != "alpha" {
		t.Fatalf("FirstNonEmpty(...) = %q; want %q", got, "alpha")
	}
}

func TestParseLevel_DoesNotTouchGlobal(t *testing.T) {
	orig := zerolog.GlobalLevel()
	if got := ParseLevel("error"); got != zerolog.ErrorLevel {
		t.Fatalf("ParseLevel(error) = %v", got)
	}
	if zerolog.GlobalLevel() != orig {
		t.Fatalf("ParseLevel must not change the global level")
	}
}

func TestNewLogger_JSONCarriesServiceAndVersion(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(&buf, "ecommerce-api", "v1.4.0", false)
	lg.Info().Msg("started")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if line["service"] != "ecommerce-api" || line["version"] != "v1.4.0" || line["message"] != "started" {
		t.Fatalf("unexpected fields: %v", line)
	}
	if _, ok := line["time"]; !ok {
		t.Fatalf("expected timestamp field: %v", line)
	}
}

func TestNewLogger_PrettyIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(&buf, "svc", "dev", true)
	lg.Warn().Msg("hello")

	out := buf.String()
	if strings.HasPrefix(out, "{") || !strings.Contains(out, "hello") || !strings.Contains(out, "WRN") {
		t.Fatalf("expected console output, got %q", out)
	}
}

func TestVersion_Precedence(t *testing.T) {
	t.Setenv("APP_VERSION", "")
	if got := Version(""); got != "dev" {
		t.Fatalf("Version() = %q; want dev", got)
	}
	t.Setenv("APP_VERSION", "v2.0.0")
	if got := Version(""); got != "v2.0.0" {
		t.Fatalf("Version() = %q; want env value", got)
	}
	if got := Version("v3.1.0"); got != "v3.1.0" {
		t.Fatalf("Version() = %q; want build value", got)
	}
}
