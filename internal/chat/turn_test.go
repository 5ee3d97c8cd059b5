package chat

import "testing"

func TestTail(t *testing.T) {
	turns := []Turn{
		{Role: RoleChild, Content: "a"},
		{Role: RoleCoach, Content: "b"},
		{Role: RoleChild, Content: "c"},
	}

	tests := []struct {
		n    int
		want int
	}{
		{0, 3},
		{2, 2},
		{3, 3},
		{10, 3},
	}
	for _, tt := range tests {
		got := Tail(turns, tt.n)
		if len(got) != tt.want {
			t.Errorf("Tail(%d) len = %d, want %d", tt.n, len(got), tt.want)
		}
	}

	if got := Tail(turns, 1); got[0].Content != "c" {
		t.Errorf("Tail(1) = %q, want last turn", got[0].Content)
	}
}

func TestTruncate_CountsRunes(t *testing.T) {
	s := "你好小朋友"
	if got := Truncate(s, 2); got != "你好" {
		t.Errorf("Truncate = %q, want %q", got, "你好")
	}
	if got := Truncate(s, 10); got != s {
		t.Errorf("Truncate over length = %q, want unchanged", got)
	}
	if got := Truncate("hello", 0); got != "hello" {
		t.Errorf("Truncate(0) = %q, want unchanged", got)
	}
}
