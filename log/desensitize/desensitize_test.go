package desensitize

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

const scalar = "7a7480972a756b1f117faadd23f9af00bdb309d3553e47b3b5d7f2756df620b3"

func TestBuiltinRules(t *testing.T) {
	hook := NewHook()
	hook.AddBuiltin(BuiltinRules()...)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "private key field",
			input:    `{"private_key":"` + scalar + `"}`,
			expected: `{"private_key":"******"}`,
		},
		{
			name:     "spaced field",
			input:    `{"mac_key" : "abc"}`,
			expected: `{"mac_key":"******"}`,
		},
		{
			name:     "escaped quote in value",
			input:    `{"secret":"a\"b","x":1}`,
			expected: `{"secret":"******","x":1}`,
		},
		{
			name:     "bare scalar in message",
			input:    `{"message":"key ` + scalar + ` leaked"}`,
			expected: `{"message":"key [REDACTED] leaked"}`,
		},
		{
			name:     "compressed public key untouched",
			input:    `{"pub":"027d28f9951ce46538951e3697c62588a87f1f1f295de4a14fdd4c780fc52cfe69"}`,
			expected: `{"pub":"027d28f9951ce46538951e3697c62588a87f1f1f295de4a14fdd4c780fc52cfe69"}`,
		},
		{
			name:     "no sensitive data",
			input:    `{"op":"encrypt","result":"ok"}`,
			expected: `{"op":"encrypt","result":"ok"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := hook.Desensitize(tc.input); got != tc.expected {
				t.Errorf("Expected: %s, Got: %s", tc.expected, got)
			}
		})
	}
}

func TestRuleManagement(t *testing.T) {
	hook := NewHook()
	if err := hook.AddContentRule("digits", `\d+`, "#"); err != nil {
		t.Fatal(err)
	}
	if err := hook.AddFieldRule("token", "token", "x"); err != nil {
		t.Fatal(err)
	}

	if hook.RuleCount() != 2 {
		t.Fatalf("RuleCount = %d", hook.RuleCount())
	}
	if names := strings.Join(hook.GetRules(), ","); names != "digits,token" {
		t.Errorf("GetRules = %s", names)
	}

	rule, ok := hook.GetRule("digits")
	if !ok {
		t.Fatal("rule not found")
	}
	rule.SetEnabled(false)
	if got := hook.Desensitize("a1"); got != "a1" {
		t.Errorf("disabled rule applied: %s", got)
	}
	rule.SetEnabled(true)
	if got := hook.Desensitize("a1"); got != "a#" {
		t.Errorf("enabled rule not applied: %s", got)
	}

	// replacing keeps the position
	if err := hook.AddContentRule("digits", `\d`, "*"); err != nil {
		t.Fatal(err)
	}
	if names := strings.Join(hook.GetRules(), ","); names != "digits,token" {
		t.Errorf("GetRules after replace = %s", names)
	}

	if !hook.RemoveRule("digits") || hook.RemoveRule("digits") {
		t.Error("RemoveRule should succeed exactly once")
	}
	if hook.RuleCount() != 1 {
		t.Errorf("RuleCount = %d", hook.RuleCount())
	}
}

func TestInvalidRules(t *testing.T) {
	if _, err := NewContentRule("", "x", ""); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewContentRule("bad", "(", ""); err == nil {
		t.Error("expected error for invalid pattern")
	}
	if _, err := NewFieldRule("f", "", ""); err == nil {
		t.Error("expected error for empty field name")
	}
}

func TestWriter(t *testing.T) {
	hook := NewHook()
	hook.AddBuiltin(BuiltinRules()...)

	var buf bytes.Buffer
	w := NewWriter(&buf, hook)

	line := []byte(`{"private_key":"` + scalar + `"}` + "\n")
	n, err := w.Write(line)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(line) {
		t.Errorf("Write returned %d, want %d", n, len(line))
	}
	if strings.Contains(buf.String(), scalar) {
		t.Errorf("scalar reached the sink: %s", buf.String())
	}
}

func TestConcurrentDesensitize(t *testing.T) {
	hook := NewHook()
	hook.AddBuiltin(BuiltinRules()...)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				hook.AddRule(MustNewContentRule("extra", "zzz", "y"))
				return
			}
			_ = hook.Desensitize(scalar)
		}()
	}
	wg.Wait()
}
