package debug

import "testing"

func TestReload(t *testing.T) {
	t.Cleanup(Reload)
	t.Setenv("OBJPATCH_DEBUG_APPLY", "true")
	t.Setenv("OBJPATCH_DEBUG_BUILD", "nope")
	Reload()
	if !Apply() {
		t.Error("Apply() = false with OBJPATCH_DEBUG_APPLY=true")
	}
	if Build() {
		t.Error("Build() = true for an unparsable value")
	}
	if Extract() || Diff() {
		t.Error("unset switches are on")
	}
}

func TestJSONString(t *testing.T) {
	if got := jsonString(map[string]int{"a": 1}); got != `{"a":1}` {
		t.Errorf("jsonString() = %s", got)
	}
}
