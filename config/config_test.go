package config

import (
	"strings"
	"testing"
)

func TestConfig_BoundFold(t *testing.T) {
	type fields struct {
		Fold FoldConfig
	}
	type args struct {
		rna string
	}

	tests := []struct {
		name    string
		fields  fields
		args    args
		want    string
		wantCut bool
	}{
		{
			"under the cap",
			fields{FoldConfig{MaxLength: 200}},
			args{"GGGAAAUCCC"},
			"GGGAAAUCCC",
			false,
		},
		{
			"exactly the cap",
			fields{FoldConfig{MaxLength: 10}},
			args{"GGGAAAUCCC"},
			"GGGAAAUCCC",
			false,
		},
		{
			"over the cap",
			fields{FoldConfig{MaxLength: 4}},
			args{"GGGAAAUCCC"},
			"GGGA",
			true,
		},
		{
			"zero cap disables the bound",
			fields{FoldConfig{MaxLength: 0}},
			args{strings.Repeat("A", 500)},
			strings.Repeat("A", 500),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{
				Fold: tt.fields.Fold,
			}
			got, cut := c.BoundFold(tt.args.rna)
			if got != tt.want {
				t.Errorf("Config.BoundFold() = %v, want %v", got, tt.want)
			}
			if cut != tt.wantCut {
				t.Errorf("Config.BoundFold() cut = %v, want %v", cut, tt.wantCut)
			}
		})
	}
}
