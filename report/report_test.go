package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/taktdev/takt/bench"
)

func sampleResult() *bench.Result {
	return &bench.Result{
		Command:    "sleep 0.1",
		Iterations: 50,
		MeanMs:     104.321,
		StdDevMs:   2.5,
		MinMs:      101.0,
		MaxMs:      112.75,
		MedianMs:   104.0,
		P95Ms:      110.0,
		P99Ms:      112.0,
	}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, sampleResult(), PlainPalette()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Benchmark: sleep 0.1",
		"μ=104.321 ms",
		"σ=2.500 ms",
		"↓ 101.000 ms",
		"↑ 112.750 ms",
		"λ=10 ops/s",
		"(50 iters)",
		"med=104.000 ms",
		"p95=110.000 ms",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer

	if err := Generate(&buf, nil, PlainPalette()); err == nil {
		t.Error("expected error for nil result")
	}
	if err := Generate(&buf, &bench.Result{}, PlainPalette()); err == nil {
		t.Error("expected error for zero-sample result")
	}
}

func TestGenerateJSON(t *testing.T) {
	res := sampleResult()

	var buf bytes.Buffer
	if err := GenerateJSON(&buf, res); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, key := range []string{
		"command", "mean_ms", "std_dev_ms", "min_ms", "max_ms",
		"ops_per_sec", "iterations",
	} {
		if _, ok := parsed[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}

	if parsed["command"] != "sleep 0.1" {
		t.Errorf("command = %v, want sleep 0.1", parsed["command"])
	}
	if parsed["iterations"] != float64(50) {
		t.Errorf("iterations = %v, want 50", parsed["iterations"])
	}
}

func TestGenerateJSONFixedPrecision(t *testing.T) {
	res := &bench.Result{
		Command:    "true",
		Iterations: 10,
		MeanMs:     100.0,
		StdDevMs:   0.12345,
		MinMs:      99.9999,
		MaxMs:      100.5,
	}

	var buf bytes.Buffer
	if err := GenerateJSON(&buf, res); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	output := buf.String()

	tests := []string{
		`"mean_ms": 100.000`,
		`"std_dev_ms": 0.123`,
		`"min_ms": 100.000`,
		`"max_ms": 100.500`,
		`"ops_per_sec": 10`,
	}

	for _, want := range tests {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestGenerateJSONZeroMean(t *testing.T) {
	res := &bench.Result{Command: "x", Iterations: 1}

	var buf bytes.Buffer
	if err := GenerateJSON(&buf, res); err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}

	if !strings.Contains(buf.String(), `"ops_per_sec": 0`) {
		t.Errorf("ops_per_sec for zero mean should render 0:\n%s", buf.String())
	}
}

func TestFixed(t *testing.T) {
	tests := []struct {
		value float64
		prec  int
		want  string
	}{
		{1.23456, 3, "1.235"},
		{100, 3, "100.000"},
		{0, 3, "0.000"},
		{10, 0, "10"},
		{9.6, 0, "10"},
	}

	for _, tt := range tests {
		got := string(fixed(tt.value, tt.prec))
		if got != tt.want {
			t.Errorf("fixed(%v, %d) = %q, want %q", tt.value, tt.prec, got, tt.want)
		}
	}
}
