package fold

import (
	"reflect"
	"testing"
)

func Test_MountainProfile(t *testing.T) {
	tests := []struct {
		name       string
		dotBracket string
		heights    []int
		wantErr    bool
	}{
		{
			"hairpin",
			"(((....)))",
			[]int{1, 2, 3, 3, 3, 3, 3, 2, 1, 0},
			false,
		},
		{
			"all unpaired",
			"....",
			[]int{0, 0, 0, 0},
			false,
		},
		{
			"two stems",
			"(....)(....)",
			[]int{1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 0},
			false,
		},
		{
			"empty",
			"",
			[]int{},
			false,
		},
		{
			"unbalanced close",
			".)(",
			nil,
			true,
		},
		{
			"close before open",
			"))((",
			nil,
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MountainProfile(tt.dotBracket)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MountainProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			want := make([]MountainPoint, len(tt.heights))
			for i, h := range tt.heights {
				want[i] = MountainPoint{Position: i, Height: h}
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("MountainProfile() = %v, want %v", got, want)
			}
		})
	}
}

// a predicted structure always yields a valid, non-negative profile
// that ends back at zero
func Test_MountainProfile_fromPredict(t *testing.T) {
	for _, rna := range []string{"GGGAAAUCCC", "AAAAUUUU", "GCGCUUCGGCGCAA", "AAAA"} {
		s := Predict(rna)

		profile, err := MountainProfile(s.DotBracket)
		if err != nil {
			t.Fatalf("MountainProfile(%q) error = %v", s.DotBracket, err)
		}
		if len(profile) != len(rna) {
			t.Errorf("%q: profile has %d points, want %d", rna, len(profile), len(rna))
		}

		for _, p := range profile {
			if p.Height < 0 {
				t.Errorf("%q: negative height at %d", rna, p.Position)
			}
		}
		if len(profile) > 0 && profile[len(profile)-1].Height != 0 {
			t.Errorf("%q: profile ends at %d, want 0", rna, profile[len(profile)-1].Height)
		}
	}
}
