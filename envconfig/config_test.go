// config_test.go - Tests fuer die Environment-Konfiguration
package envconfig

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHost(t *testing.T) {
	cases := map[string]struct {
		value  string
		expect string
	}{
		"empty":               {"", "127.0.0.1:11480"},
		"only address":        {"1.2.3.4", "1.2.3.4:11480"},
		"only port":           {":1234", ":1234"},
		"address and port":    {"1.2.3.4:1234", "1.2.3.4:1234"},
		"hostname":            {"example.com", "example.com:11480"},
		"hostname and port":   {"example.com:1234", "example.com:1234"},
		"zero port":           {":0", ":0"},
		"too large port":      {":66000", ":11480"},
		"too small port":      {":-1", ":11480"},
		"ipv6 localhost":      {"[::1]", "[::1]:11480"},
		"ipv6 with port":      {"[::1]:1337", "[::1]:1337"},
		"extra quotes":        {"\"1.2.3.4\"", "1.2.3.4:11480"},
		"extra space+quotes":  {" \" 1.2.3.4 \" ", "1.2.3.4:11480"},
		"http scheme default": {"http://1.2.3.4", "1.2.3.4:80"},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("MCU_HOST", tt.value)
			if host := Host(); host.Host != tt.expect {
				t.Errorf("%s: erwartet %s, erhalten %s", name, tt.expect, host.Host)
			}
		})
	}
}

func TestHeaderGuard(t *testing.T) {
	if got := HeaderGuard(); got != "BITNETMCU_MODEL_H" {
		t.Errorf("Default-Guard: erhalten %q", got)
	}

	t.Setenv("MCU_HEADER_GUARD", "MY_MODEL_H")
	if got := HeaderGuard(); got != "MY_MODEL_H" {
		t.Errorf("erwartet MY_MODEL_H, erhalten %q", got)
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"t":     slog.LevelDebug,
		"1":     slog.LevelDebug,
		"2":     slog.Level(-8),
		"x":     slog.LevelInfo,
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("MCU_DEBUG", k)
			if i := LogLevel(); i != v {
				t.Errorf("%s: erwartet %d, erhalten %d", k, v, i)
			}
		})
	}
}

func TestNumParallel(t *testing.T) {
	cases := map[string]int{
		"":    runtime.GOMAXPROCS(0),
		"0":   runtime.GOMAXPROCS(0),
		"3":   3,
		"abc": runtime.GOMAXPROCS(0),
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("MCU_NUM_PARALLEL", k)
			if n := NumParallel(); n != v {
				t.Errorf("%s: erwartet %d, erhalten %d", k, v, n)
			}
		})
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{
		"":       false,
		"true":   true,
		"false":  false,
		"1":      true,
		"0":      false,
		"random": true,
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("MCU_NO_DATE", k)
			if b := NoDate(); b != v {
				t.Errorf("%s: erwartet %t, erhalten %t", k, v, b)
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Setenv("MCU_TEST_VALUE", "  'quoted'  ")
	if got := String("MCU_TEST_VALUE")(); got != "quoted" {
		t.Errorf("erwartet quoted, erhalten %q", got)
	}

	t.Setenv("MCU_HEADER_GUARD", ` "QUOTED_H" `)
	if got := HeaderGuard(); got != "QUOTED_H" {
		t.Errorf("erwartet QUOTED_H, erhalten %q", got)
	}
}

func TestValues(t *testing.T) {
	t.Setenv("MCU_HEADER_GUARD", "G_H")
	t.Setenv("MCU_MAX_BODY", "1024")

	got := Values()
	want := map[string]string{
		"MCU_HEADER_GUARD": "G_H",
		"MCU_MAX_BODY":     "1024",
	}
	for k := range got {
		if _, ok := want[k]; !ok {
			delete(got, k)
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}
