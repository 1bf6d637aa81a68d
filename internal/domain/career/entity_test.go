package career

import "testing"

func TestSkillsOverlap(t *testing.T) {
	cases := []struct {
		name string
		a, b []string
		want bool
	}{
		{"shared skill", []string{"Python", "SQL"}, []string{"AWS", "Python"}, true},
		{"disjoint", []string{"Python"}, []string{"React"}, false},
		{"empty left", nil, []string{"Python"}, false},
		{"empty right", []string{"Python"}, nil, false},
		{"both empty", nil, nil, false},
		{"case sensitive", []string{"python"}, []string{"Python"}, false},
	}
	for _, tc := range cases {
		if got := SkillsOverlap(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: SkillsOverlap(%v, %v) = %v, want %v", tc.name, tc.a, tc.b, got, tc.want)
		}
	}
}
