package cmd

import (
	"errors"
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"snapshot", "click", "focus", "type", "ask", "annotate", "status", "serve"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestExactArgs(t *testing.T) {
	check := exactArgs(1)

	if err := check(clickCmd, []string{"Save"}); err != nil {
		t.Errorf("one arg should pass: %v", err)
	}
	err := check(clickCmd, nil)
	if err == nil {
		t.Fatal("zero args should fail")
	}
	var ue usageError
	if !errors.As(err, &ue) {
		t.Errorf("arg mismatch should be a usage error, got %T", err)
	}
}

func TestMinArgs(t *testing.T) {
	check := minArgs(1)

	if err := check(askCmd, []string{"open", "the", "file"}); err != nil {
		t.Errorf("three args should pass: %v", err)
	}
	err := check(askCmd, nil)
	if err == nil {
		t.Fatal("zero args should fail")
	}
	var ue usageError
	if !errors.As(err, &ue) {
		t.Errorf("arg mismatch should be a usage error, got %T", err)
	}
}

func TestUsageErrorWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := usageError{cause}
	if err.Error() != "boom" {
		t.Errorf("message = %q", err.Error())
	}
}
