package clog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestCoreFeatures tests core clog functionality: config, levels, fields, namespace, rotation
func TestCoreFeatures(t *testing.T) {
	t.Run("Environment Defaults", testEnvDefaults)
	t.Run("Config Validation", testConfigValidation)
	t.Run("Log Levels", testLogLevels)
	t.Run("Hierarchical Namespace", testNamespace)
	t.Run("File Rotation", testRotation)
}

// captureStdout 捕获 fn 执行期间写到标准输出的内容
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

// testEnvDefaults verifies GetDefaultConfig
func testEnvDefaults(t *testing.T) {
	dev := GetDefaultConfig("development")
	if dev.Level != "debug" || dev.Format != "console" || !dev.EnableColor {
		t.Errorf("Dev config mismatch: %+v", dev)
	}

	prod := GetDefaultConfig("production")
	if prod.Level != "info" || prod.Format != "json" || prod.EnableColor {
		t.Errorf("Prod config mismatch: %+v", prod)
	}
}

// testConfigValidation verifies Validate rejects bad configs
func testConfigValidation(t *testing.T) {
	cases := []*Config{
		{Level: "verbose", Format: "json", Output: "stdout"},
		{Level: "info", Format: "xml", Output: "stdout"},
		{Level: "info", Format: "json", Output: ""},
		{Level: "info", Format: "json", Output: "stdout", Rotation: &RotationConfig{MaxSize: -1}},
	}

	for _, config := range cases {
		if _, err := New(context.Background(), config); err == nil {
			t.Errorf("expected validation error for %+v", config)
		}
	}
}

// testLogLevels captures output for all levels
func testLogLevels(t *testing.T) {
	output := captureStdout(t, func() {
		config := &Config{Level: "debug", Format: "console", Output: "stdout"}
		if err := Init(context.Background(), config); err != nil {
			t.Fatal(err)
		}

		Debug("debug msg", String("k", "v"))
		Info("info msg")
		Warn("warn msg")
		Error("error msg")

		// Fatal 使用 mock 的退出函数，避免测试进程退出
		exitCalled := false
		SetExitFunc(func(code int) {
			exitCalled = true
		})
		defer SetExitFunc(os.Exit)

		Fatal("fatal msg")

		if !exitCalled {
			t.Error("Fatal did not call exit function")
		}
	})

	for _, msg := range []string{"debug msg", "info msg", "warn msg", "error msg", "fatal msg"} {
		if !strings.Contains(output, msg) {
			t.Errorf("missing %q in output: %s", msg, output)
		}
	}
}

// testNamespace verifies hierarchical namespace chaining
func testNamespace(t *testing.T) {
	output := captureStdout(t, func() {
		config := &Config{Level: "debug", Format: "json", Output: "stdout", AddSource: false}
		logger, err := New(context.Background(), config, WithNamespace("svc"))
		if err != nil {
			t.Fatal(err)
		}

		logger.Namespace("pool").Info("namespaced msg", Int("n", 1))
	})

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(output)), &entry); err != nil {
		t.Fatalf("invalid json output %q: %v", output, err)
	}

	if entry["namespace"] != "svc.pool" {
		t.Errorf("namespace = %v, want svc.pool", entry["namespace"])
	}
	if entry["msg"] != "namespaced msg" {
		t.Errorf("msg = %v", entry["msg"])
	}
}

// testRotation verifies file output with rotation config
func testRotation(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "test.log")

	config := &Config{
		Level:  "info",
		Format: "json",
		Output: logFile,
		Rotation: &RotationConfig{
			MaxSize:    1,
			MaxBackups: 2,
			MaxAge:     1,
		},
	}

	logger, err := New(context.Background(), config)
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("rotation msg", String("k", "v"))

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "rotation msg") {
		t.Errorf("log file missing entry: %s", data)
	}
}
